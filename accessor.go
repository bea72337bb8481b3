package reactenv

import (
	"context"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// The package-level accessors operate on a single shared Store, preserving
// the process-wide cache ergonomics: every caller sees the same mapping until
// Reset. Construct independent stores with NewStore when isolation matters
// (e.g., in tests).
var (
	defaultStoreOnce sync.Once
	defaultStore     *Store
)

// Default returns the shared Store backing the package-level accessors.
func Default() *Store {
	defaultStoreOnce.Do(func() {
		defaultStore = NewStore()
	})
	return defaultStore
}

// Env returns the shared store's mapping, resolving and caching on first use.
func Env(opts Options) map[string]string {
	return Default().Env(context.Background(), opts)
}

// Get returns the shared mapping's value at key when present (an empty string
// counts as present), else fallback.
func Get(key, fallback string) string {
	return Default().Get(context.Background(), key, fallback)
}

// Lookup reports the shared mapping's value at key and whether it is present.
func Lookup(key string) (string, bool) {
	return Default().Lookup(context.Background(), key)
}

// Reset unconditionally clears the shared cache. The next accessor call
// recomputes from the ambient environment as if freshly started.
func Reset() {
	Default().Clear()
}

// ListVars lists the keys of a fresh resolution in development mode.
func ListVars() []string {
	return Default().ListVars(context.Background())
}

// Dump writes the shared store's current mapping to w.
func Dump(w io.Writer, opts ...DumpOption) error {
	return Default().Dump(context.Background(), w, opts...)
}

// GetInt returns the value at key parsed as an int, or fallback when the key
// is absent, empty, or unparsable.
func GetInt(key string, fallback int) int {
	return Default().GetInt(context.Background(), key, fallback)
}

// GetBool returns the value at key parsed as a bool ("1", "t", "true", etc.,
// per strconv.ParseBool), or fallback when absent, empty, or unparsable.
func GetBool(key string, fallback bool) bool {
	return Default().GetBool(context.Background(), key, fallback)
}

// GetFloat returns the value at key parsed as a float64, or fallback when the
// key is absent, empty, or unparsable.
func GetFloat(key string, fallback float64) float64 {
	return Default().GetFloat(context.Background(), key, fallback)
}

// GetDuration returns the value at key parsed as a time.Duration (e.g.,
// "1m30s"), or fallback when the key is absent, empty, or unparsable.
func GetDuration(key string, fallback time.Duration) time.Duration {
	return Default().GetDuration(context.Background(), key, fallback)
}

// GetInt is the typed single-key accessor for integers.
func (s *Store) GetInt(ctx context.Context, key string, fallback int) int {
	value, ok := s.Lookup(ctx, key)
	if !ok || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		s.logParseFailure(key, value, "int", err)
		return fallback
	}
	return n
}

// GetBool is the typed single-key accessor for booleans.
func (s *Store) GetBool(ctx context.Context, key string, fallback bool) bool {
	value, ok := s.Lookup(ctx, key)
	if !ok || value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		s.logParseFailure(key, value, "bool", err)
		return fallback
	}
	return b
}

// GetFloat is the typed single-key accessor for floats.
func (s *Store) GetFloat(ctx context.Context, key string, fallback float64) float64 {
	value, ok := s.Lookup(ctx, key)
	if !ok || value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		s.logParseFailure(key, value, "float", err)
		return fallback
	}
	return f
}

// GetDuration is the typed single-key accessor for durations.
func (s *Store) GetDuration(ctx context.Context, key string, fallback time.Duration) time.Duration {
	value, ok := s.Lookup(ctx, key)
	if !ok || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		s.logParseFailure(key, value, "duration", err)
		return fallback
	}
	return d
}

func (s *Store) logParseFailure(key, value, kind string, err error) {
	s.log.WithFields(logrus.Fields{
		"key":  key,
		"kind": kind,
		"err":  err,
	}).Debugf("falling back: %q is not a valid %s", value, kind)
}
