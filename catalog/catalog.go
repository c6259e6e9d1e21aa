// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/danielhkuo/pollbooth/models"
)

var (
	ErrConfigMissing = errors.New("poll configuration missing or unreadable")
	ErrConfigParse   = errors.New("poll configuration malformed")
)

// Loader reads the poll configuration file. Every Load reads the file
// again, so operators can toggle the active flag or edit poll text
// without restarting the server.
type Loader struct {
	Path string
}

func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Load reads and parses the configuration file. It never caches.
func (l *Loader) Load() (*models.PollConfig, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigMissing, l.Path)
	}

	var cfg models.PollConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// Poll is a convenience lookup that loads the configuration and finds
// one poll. A missing poll is not an error, a broken config file is.
func (l *Loader) Poll(pollID string) (*models.Poll, error) {
	cfg, err := l.Load()
	if err != nil {
		return nil, err
	}
	poll, ok := cfg.Poll(pollID)
	if !ok {
		return nil, nil
	}
	return poll, nil
}

// Active reports whether new votes may currently be cast. Any config
// error reads as inactive.
func (l *Loader) Active() bool {
	cfg, err := l.Load()
	if err != nil {
		return false
	}
	return cfg.Active
}
