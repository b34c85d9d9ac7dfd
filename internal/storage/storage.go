// Package storage provides the durable key/value store that backs the cart
// and wishlist. A Dir keeps one file per key under a profile directory; a
// Memory keeps everything in process and is used by tests and as the fallback
// when the profile directory cannot be used.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrInvalidKey is returned for empty keys or keys that would escape the
// profile directory.
var ErrInvalidKey = errors.New("invalid storage key")

// Backend is the minimal key/value contract the state store needs.
type Backend interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Set replaces the value for key.
	Set(key string, value []byte) error
}

// Ensure implementations satisfy Backend at compile time.
var (
	_ Backend = (*Dir)(nil)
	_ Backend = (*Memory)(nil)
)

const fileSuffix = ".json"

// Dir stores each key as <root>/<key>.json.
type Dir struct {
	root string
}

// OpenDir prepares root (creating it when missing) and returns a Dir backend.
func OpenDir(root string) (*Dir, error) {
	trimmed := strings.TrimSpace(root)
	if trimmed == "" {
		return nil, fmt.Errorf("profile dir is empty")
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return nil, fmt.Errorf("resolve profile dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &Dir{root: abs}, nil
}

// Path returns the directory holding the stored keys.
func (d *Dir) Path() string {
	return d.root
}

// Get reads the file for key. A missing file is reported as ok=false, not an error.
func (d *Dir) Get(key string) ([]byte, bool, error) {
	path, err := d.keyPath(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes value to a temp file and renames it over the key's file so a
// crash mid-write never leaves a truncated value behind.
func (d *Dir) Set(key string, value []byte) error {
	path, err := d.keyPath(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(d.root, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func (d *Dir) keyPath(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(d.root, key+fileSuffix), nil
}

// Memory is an in-process Backend.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty Memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(value), true, nil
}

// Set stores a copy of value.
func (m *Memory) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = cloneBytes(value)
	return nil
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	dup := make([]byte, len(b))
	copy(dup, b)
	return dup
}
