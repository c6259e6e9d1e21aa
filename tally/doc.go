// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally aggregates vote store records into counts and percentages.

Counts enumerates a poll's records and groups them by the answer id
embedded in each record name; Total sums the groups. Percentages maps
every defined answer to 100*count/total, or 0 for every answer when the
poll has no votes.

The tally is derived state: it holds nothing, caches nothing, and is
exactly as fresh as the directory listing it was computed from.
*/
package tally
