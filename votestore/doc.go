// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package votestore persists votes as one file per (poll, user) pair.

# Storage Layout

	<root>/
	  <pollID>/
	    <userID>_<answerID>.txt   one vote; name is the relation
	    <userID>.lock             per-user write lock
	    .pending-*                in-flight writes, never listed

The answer id is encoded in the record's name, not its contents, so
tallying is a directory listing and never opens a file. Record contents
hold a human-readable timestamp for operators; nothing reads it back.

# Invariant

At most one vote per (poll, user) pair. Save replaces the previous vote
by deleting it and creating the new record; both steps run while
holding an exclusive OS file lock on <userID>.lock, and the new record
arrives via temp-file-plus-rename. An operation abandoned at any point
leaves either the old state or the new state on disk, never both and
never a half-written record.

# Concurrency

Writers for the same (poll, user) serialize on the file lock with
OS-blocking semantics; contention is only ever among one user's own
duplicate requests, so the wait is bounded. Writers for different users
touch different files and proceed in parallel. List and UserVote read
without locks: they see every write that durably completed before the
read began (read-committed, not a point-in-time snapshot).

# Errors

  - ErrInvalidID: an id is empty or unusable as a file name component
  - ErrWriteFailure: directory/record creation or removal failed; the
    vote is not counted and the caller decides whether to retry

Identifier validation rejects path separators and traversal sequences,
so a hostile poll or answer id can never escape the data directory.
*/
package votestore
