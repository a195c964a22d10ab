package widgets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// FilePreferenceStore keeps preferences in a TOML file. A sibling lock file
// serializes writers across processes.
type FilePreferenceStore struct {
	path string
	lock *flock.Flock
	mu   sync.Mutex
}

type preferenceFile struct {
	Preferences map[string]string `toml:"preferences"`
}

// NewFilePreferenceStore opens (lazily) the preference file at path.
func NewFilePreferenceStore(path string) *FilePreferenceStore {
	return &FilePreferenceStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the preference file path.
func (s *FilePreferenceStore) Path() string {
	return s.path
}

// Get returns the stored value and whether it exists.
func (s *FilePreferenceStore) Get(_ context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, ErrPreferenceKeyRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureDir(); err != nil {
		return "", false, err
	}
	if err := s.lock.RLock(); err != nil {
		return "", false, fmt.Errorf("widgets: lock preferences: %w", err)
	}
	defer s.lock.Unlock()
	prefs, err := s.read()
	if err != nil {
		return "", false, err
	}
	value, ok := prefs[key]
	return value, ok, nil
}

// Set stores value under key, rewriting the file atomically.
func (s *FilePreferenceStore) Set(_ context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrPreferenceKeyRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("widgets: lock preferences: %w", err)
	}
	defer s.lock.Unlock()
	prefs, err := s.read()
	if err != nil {
		return err
	}
	prefs[key] = value
	return s.write(prefs)
}

// All returns every stored preference.
func (s *FilePreferenceStore) All(context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	if err := s.lock.RLock(); err != nil {
		return nil, fmt.Errorf("widgets: lock preferences: %w", err)
	}
	defer s.lock.Unlock()
	return s.read()
}

func (s *FilePreferenceStore) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("widgets: create preference directory: %w", err)
	}
	return nil
}

func (s *FilePreferenceStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("widgets: read preferences: %w", err)
	}
	var file preferenceFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("widgets: decode preferences %s: %w", s.path, err)
	}
	if file.Preferences == nil {
		file.Preferences = map[string]string{}
	}
	return file.Preferences, nil
}

func (s *FilePreferenceStore) write(prefs map[string]string) error {
	data, err := toml.Marshal(preferenceFile{Preferences: prefs})
	if err != nil {
		return fmt.Errorf("widgets: encode preferences: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("widgets: write preferences: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("widgets: replace preferences: %w", err)
	}
	return nil
}
