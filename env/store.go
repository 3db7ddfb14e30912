package env

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Reserved keys consumed by the store and its helpers.
const (
	defaultModeKey = "NODE_ENV"
	versionKey     = "API_VERSION"
	basePathKey    = "BASE_PATH"
)

// Store is a mutable mapping from environment keys to string values. Keys are
// case-sensitive and an absent key is distinct from a key bound to the empty
// string.
//
// A Store is safe for concurrent use, but no atomicity is promised across
// separate calls: callers needing a read-modify-write sequence must
// coordinate externally.
type Store struct {
	mu      sync.RWMutex
	values  map[string]string
	modeKey string
}

type settings struct {
	skipOS    bool
	overrides map[string]string
	dotenv    []string
	dotenvDir bool
	modeKey   string
}

// Option configures a Store during construction.
type Option func(*settings)

// WithOverrides seeds the store with the given mapping. Overrides win over
// both the OS snapshot and any dotenv file.
func WithOverrides(values map[string]string) Option {
	return func(s *settings) {
		s.overrides = values
	}
}

// WithDotenv loads the .env-format file at path during construction. Values
// from the file never shadow OS-provided variables, and a missing or
// unreadable file contributes nothing.
func WithDotenv(path string) Option {
	return func(s *settings) {
		s.dotenv = append(s.dotenv, path)
	}
}

// WithDotenvDir loads ".env" from the directory named by the BASE_PATH
// environment variable, falling back to the current working directory.
// Precedence matches WithDotenv.
func WithDotenvDir() Option {
	return func(s *settings) {
		s.dotenvDir = true
	}
}

// WithoutOS skips the OS environment snapshot, leaving only dotenv values and
// overrides. Useful for isolating tests from the host environment.
func WithoutOS() Option {
	return func(s *settings) {
		s.skipOS = true
	}
}

// WithModeKey changes the key consulted by the execution-mode predicates.
// The default is NODE_ENV.
func WithModeKey(key string) Option {
	return func(s *settings) {
		s.modeKey = key
	}
}

// New builds a Store seeded from a snapshot of the OS environment. Dotenv
// files fill in keys the OS does not provide, and overrides win over
// everything. Later mutations go through Set and never touch the process
// environment.
func New(opts ...Option) *Store {
	cfg := settings{modeKey: defaultModeKey}
	for _, opt := range opts {
		opt(&cfg)
	}

	values := make(map[string]string)

	if cfg.dotenvDir {
		cfg.dotenv = append(cfg.dotenv, filepath.Join(dotenvDir(), dotenvFile))
	}
	for _, path := range cfg.dotenv {
		for k, v := range readDotenv(path) {
			values[k] = v
		}
	}

	if !cfg.skipOS {
		for _, kv := range os.Environ() {
			if k, v, ok := strings.Cut(kv, "="); ok {
				values[k] = v
			}
		}
	}

	for k, v := range cfg.overrides {
		values[k] = v
	}

	return &Store{values: values, modeKey: cfg.modeKey}
}

// Lookup returns the value bound to key and whether the key is bound at all.
func (s *Store) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

// Get returns the value bound to key, or def when the key is unbound. A key
// bound to the empty string returns the empty string, not def.
func (s *Store) Get(key, def string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return def
}

// Set binds value to key and returns value. The binding is visible to every
// subsequent read from this store; the process environment is not touched.
func (s *Store) Set(key, value string) string {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	return value
}

// Len reports the number of bound keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
