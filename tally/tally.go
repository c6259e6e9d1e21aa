// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/votestore"
)

// Counts groups a poll's committed votes by answer id.
func Counts(store *votestore.Store, pollID string) (map[string]int, error) {
	votes, err := store.List(pollID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, v := range votes {
		counts[v.AnswerID]++
	}
	return counts, nil
}

// Total sums a count map.
func Total(counts map[string]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// Percentages derives 100*count/total per answer. Every answer the
// poll defines gets an entry, including answers nobody picked. With no
// votes at all every answer reads 0 rather than dividing by zero.
// Values are plain float64 division; they need not sum to exactly 100.
func Percentages(poll *models.Poll, counts map[string]int, total int) map[string]float64 {
	percentages := make(map[string]float64, len(poll.Answers))
	for _, a := range poll.Answers {
		if total > 0 {
			percentages[a.ID] = float64(counts[a.ID]) / float64(total) * 100
		} else {
			percentages[a.ID] = 0
		}
	}
	return percentages
}
