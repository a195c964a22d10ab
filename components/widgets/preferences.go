package widgets

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Preference keys written by the page shell.
const (
	PreferenceLanguage     = "language"
	PreferencePrimaryColor = "primaryColor"
)

// ErrPreferenceKeyRequired is returned when a preference key is blank.
var ErrPreferenceKeyRequired = errors.New("widgets: preference key required")

// InMemoryPreferenceStore provides a concurrency-safe default store.
type InMemoryPreferenceStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewInMemoryPreferenceStore creates an empty preference store.
func NewInMemoryPreferenceStore() *InMemoryPreferenceStore {
	return &InMemoryPreferenceStore{
		data: make(map[string]string),
	}
}

// Get returns the stored value and whether it exists.
func (s *InMemoryPreferenceStore) Get(_ context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, ErrPreferenceKeyRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	return value, ok, nil
}

// Set stores value under key.
func (s *InMemoryPreferenceStore) Set(_ context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrPreferenceKeyRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// All returns a copy of every stored preference.
func (s *InMemoryPreferenceStore) All(context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.data))
	for key, value := range s.data {
		out[key] = value
	}
	return out, nil
}
