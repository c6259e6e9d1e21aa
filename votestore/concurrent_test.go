// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votestore

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
)

// TestConcurrentSaves_SameUser verifies that simultaneous vote changes
// from one user (multiple tabs) settle on exactly one recorded vote —
// any of the submitted answers, but never zero and never two.
func TestConcurrentSaves_SameUser(t *testing.T) {
	store := New(t.TempDir())
	user := uuid.NewString()

	const numWriters = 20
	answers := make([]string, numWriters)
	for i := range answers {
		answers[i] = fmt.Sprintf("answer%d", i)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := store.Save("race", user, answers[idx]); err == nil {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numWriters {
		t.Errorf("expected %d successful saves, got %d", numWriters, successCount.Load())
	}

	votes, err := store.List("race")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("expected exactly 1 vote after %d concurrent saves, got %d", numWriters, len(votes))
	}
	if votes[0].UserID != user {
		t.Errorf("unexpected user in record: %s", votes[0].UserID)
	}

	// The surviving vote must agree with UserVote
	answer, ok, err := store.UserVote("race", user)
	if err != nil || !ok {
		t.Fatalf("UserVote after race: ok=%v err=%v", ok, err)
	}
	if answer != votes[0].AnswerID {
		t.Errorf("UserVote %q disagrees with List %q", answer, votes[0].AnswerID)
	}
}

// TestConcurrentSaves_DifferentUsers verifies that independent voters
// never interfere: every vote lands and the tally is exact.
func TestConcurrentSaves_DifferentUsers(t *testing.T) {
	store := New(t.TempDir())

	const numVoters = 30
	users := make([]string, numVoters)
	for i := range users {
		users[i] = uuid.NewString()
	}

	var wg sync.WaitGroup
	errs := make(chan error, numVoters)

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			answer := "pizza"
			if idx%3 == 0 {
				answer = "sushi"
			}
			if err := store.Save("lunch", users[idx], answer); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent save failed: %v", err)
	}

	votes, err := store.List("lunch")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(votes) != numVoters {
		t.Errorf("expected %d votes, got %d", numVoters, len(votes))
	}
}

// TestConcurrentSaveAndRemove hammers one pair with interleaved saves
// and removes; afterwards the store must hold zero or one record,
// never two.
func TestConcurrentSaveAndRemove(t *testing.T) {
	store := New(t.TempDir())
	user := uuid.NewString()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			_ = store.Save("churn", user, fmt.Sprintf("a%d", idx))
		}(i)
		go func() {
			defer wg.Done()
			_ = store.Remove("churn", user)
		}()
	}
	wg.Wait()

	votes, err := store.List("churn")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(votes) > 1 {
		t.Fatalf("invariant broken: %d simultaneous votes for one user: %+v", len(votes), votes)
	}
}

// TestConcurrentListDuringWrites checks that lock-free reads stay
// well-formed while writers churn: a listing may catch any committed
// subset, but never a duplicate user and never a malformed record.
func TestConcurrentListDuringWrites(t *testing.T) {
	store := New(t.TempDir())

	const numVoters = 10
	users := make([]string, numVoters)
	for i := range users {
		users[i] = uuid.NewString()
	}

	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for round := 0; round < 5; round++ {
			for _, u := range users {
				_ = store.Save("busy", u, fmt.Sprintf("r%d", round))
			}
		}
		close(done)
	}()

	for {
		votes, err := store.List("busy")
		if err != nil {
			t.Fatalf("List failed mid-write: %v", err)
		}
		seen := make(map[string]bool, len(votes))
		for _, v := range votes {
			if v.UserID == "" || v.AnswerID == "" {
				t.Fatalf("malformed record observed: %+v", v)
			}
			if seen[v.UserID] {
				t.Fatalf("two simultaneous votes for user %s", v.UserID)
			}
			seen[v.UserID] = true
		}
		select {
		case <-done:
			wg.Wait()
			// After the dust settles every voter has exactly one vote
			votes, err := store.List("busy")
			if err != nil {
				t.Fatal(err)
			}
			if len(votes) != numVoters {
				t.Errorf("expected %d settled votes, got %d", numVoters, len(votes))
			}
			return
		default:
		}
	}
}
