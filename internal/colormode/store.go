// SPDX-License-Identifier: MIT

// Package colormode holds the current display mode, restores it from the
// persisted preference and writes it back on every change.
package colormode

import (
	"log/slog"
	"sync"
)

// Persister is the key/value slot the mode is stored in
type Persister interface {
	// Load returns the stored value and whether one was present
	Load() (string, bool)
	// Save overwrites the stored value
	Save(value string) error
}

// PreferenceSource reports the environment's colour-scheme preference.
// known is false when the environment gives no answer.
type PreferenceSource interface {
	PrefersDark() (dark bool, known bool)
}

// Store owns the display mode. Subscribers are notified synchronously,
// in subscription order, before Toggle returns.
type Store struct {
	mu        sync.Mutex
	mode      Mode
	persister Persister
	logger    *slog.Logger
	nextID    int
	subs      []subscription
}

type subscription struct {
	id int
	fn func(Mode)
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for persistence failures
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a store and resolves the initial mode: persisted value first,
// then the environment preference, then light.
func New(persister Persister, pref PreferenceSource, opts ...Option) *Store {
	s := &Store{
		persister: persister,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mode = initialMode(persister, pref)
	s.persist(s.mode)

	return s
}

func initialMode(persister Persister, pref PreferenceSource) Mode {
	if persister != nil {
		if raw, ok := persister.Load(); ok {
			if mode, ok := ParseMode(raw); ok {
				return mode
			}
		}
	}

	if pref != nil {
		if dark, known := pref.PrefersDark(); known {
			if dark {
				return Dark
			}
			return Light
		}
	}

	return Light
}

// Mode returns the current mode
func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Toggle flips the mode, persists it and notifies subscribers
func (s *Store) Toggle() Mode {
	s.mu.Lock()
	s.mode = s.mode.Toggle()
	mode := s.mode
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.persist(mode)

	for _, sub := range subs {
		sub.fn(mode)
	}

	return mode
}

// Subscribe registers fn for mode changes and returns a function that
// removes it again
func (s *Store) Subscribe(fn func(Mode)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) persist(mode Mode) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(mode.String()); err != nil {
		s.logger.Warn("failed to persist color mode", "mode", mode.String(), "error", err)
	}
}
