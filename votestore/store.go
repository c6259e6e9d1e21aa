// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/danielhkuo/pollbooth/models"
)

var (
	ErrInvalidID    = errors.New("invalid identifier")
	ErrWriteFailure = errors.New("vote record write failed")
)

const (
	recordExt  = ".txt"
	lockExt    = ".lock"
	timeLayout = "2006-01-02 15:04:05"
)

// Store maps (pollID, userID) -> answerID on disk. Each poll gets one
// directory under root; each vote is one file named
// <userID>_<answerID>.txt. The answer lives in the file name, so
// counting never reads file contents, and changing a vote is a
// delete-plus-create rather than an in-place edit.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

// validID rejects anything that cannot safely become part of a file
// name: empty strings, path separators, traversal, hidden-file
// prefixes. User ids additionally must not contain the underscore that
// separates the two halves of a record name.
func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return false
	}
	if strings.HasPrefix(id, ".") {
		return false
	}
	return true
}

func validUserID(id string) bool {
	return validID(id) && !strings.Contains(id, "_")
}

func (s *Store) pollDir(pollID string) string {
	return filepath.Join(s.root, pollID)
}

func (s *Store) lockPath(pollID, userID string) string {
	return filepath.Join(s.pollDir(pollID), userID+lockExt)
}

func recordName(userID, answerID string) string {
	return userID + "_" + answerID + recordExt
}

// UserVote returns the user's current answer for a poll, or ok=false if
// the user has no vote. A poll with no directory simply has no votes.
func (s *Store) UserVote(pollID, userID string) (answerID string, ok bool, err error) {
	if !validID(pollID) || !validUserID(userID) {
		return "", false, ErrInvalidID
	}

	entries, err := os.ReadDir(s.pollDir(pollID))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read poll dir: %w", err)
	}

	prefix := userID + "_"
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, recordExt) {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			answer := strings.TrimSuffix(name[len(prefix):], recordExt)
			if answer == "" {
				continue
			}
			return answer, true, nil
		}
	}
	return "", false, nil
}

// Save records the user's vote, replacing any previous vote for the
// same poll. The remove-then-create sequence runs under an exclusive
// OS file lock scoped to the (poll, user) pair, and the new record
// lands via rename, so a concurrent reader sees the old vote, no vote,
// or the new vote — never two votes for one user, and never a partial
// record.
func (s *Store) Save(pollID, userID, answerID string) error {
	if !validID(pollID) || !validUserID(userID) || !validID(answerID) {
		return ErrInvalidID
	}

	dir := s.pollDir(pollID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create poll dir: %v", ErrWriteFailure, err)
	}

	fl := flock.New(s.lockPath(pollID, userID))
	if err := fl.Lock(); err != nil {
		return fmt.Errorf("%w: acquire lock: %v", ErrWriteFailure, err)
	}
	defer fl.Unlock()

	if err := s.removeLocked(dir, userID); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".pending-*")
	if err != nil {
		return fmt.Errorf("%w: create record: %v", ErrWriteFailure, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.WriteString(time.Now().Format(timeLayout) + "\n")
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write record: %v", ErrWriteFailure, errors.Join(werr, cerr))
	}

	if err := os.Rename(tmpName, filepath.Join(dir, recordName(userID, answerID))); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: commit record: %v", ErrWriteFailure, err)
	}
	return nil
}

// Remove deletes the user's vote for a poll. Removing a vote that does
// not exist is not an error.
func (s *Store) Remove(pollID, userID string) error {
	if !validID(pollID) || !validUserID(userID) {
		return ErrInvalidID
	}

	dir := s.pollDir(pollID)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	fl := flock.New(s.lockPath(pollID, userID))
	if err := fl.Lock(); err != nil {
		return fmt.Errorf("%w: acquire lock: %v", ErrWriteFailure, err)
	}
	defer fl.Unlock()

	return s.removeLocked(dir, userID)
}

// removeLocked deletes every record for the user. Caller holds the
// user's lock.
func (s *Store) removeLocked(dir, userID string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read poll dir: %v", ErrWriteFailure, err)
	}

	prefix := userID + "_"
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, recordExt) || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: remove record: %v", ErrWriteFailure, err)
		}
	}
	return nil
}

// List enumerates every durably committed vote for a poll. Lock files
// and in-flight temp files never show up: records end in .txt and temp
// files start with a dot.
func (s *Store) List(pollID string) ([]models.VoteRecord, error) {
	if !validID(pollID) {
		return nil, ErrInvalidID
	}

	entries, err := os.ReadDir(s.pollDir(pollID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read poll dir: %w", err)
	}

	var votes []models.VoteRecord
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, recordExt) {
			continue
		}
		user, answer, found := strings.Cut(strings.TrimSuffix(name, recordExt), "_")
		if !found || user == "" || answer == "" {
			continue
		}
		votes = append(votes, models.VoteRecord{UserID: user, AnswerID: answer})
	}
	return votes, nil
}
