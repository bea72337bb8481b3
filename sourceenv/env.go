package sourceenv

import (
	"context"
	"os"
	"strings"

	reactenv "github.com/SkullCrawler/react-env-secrets"
)

type envSource struct{}

// New creates a source backed by the process environment.
func New() reactenv.Source {
	return envSource{}
}

// Load reads the process environment into a flat map.
func (envSource) Load(ctx context.Context) (map[string]string, error) {
	environ := os.Environ()
	result := make(map[string]string, len(environ))

	for _, entry := range environ {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		result[parts[0]] = parts[1]
	}

	return result, nil
}

// Watch returns ErrWatchNotSupported (the environment doesn't change at runtime).
func (envSource) Watch(ctx context.Context) (<-chan reactenv.ChangeEvent, error) {
	return nil, reactenv.ErrWatchNotSupported
}

// Name returns a human-readable identifier for this source.
func (envSource) Name() string {
	return "env"
}

type staticSource struct {
	vars map[string]string
}

// Static creates a source serving a fixed map. It models build-time variable
// substitution and keeps tests independent of the real environment.
func Static(vars map[string]string) reactenv.Source {
	return &staticSource{vars: vars}
}

// Load returns a copy of the fixed map.
func (s *staticSource) Load(ctx context.Context) (map[string]string, error) {
	result := make(map[string]string, len(s.vars))
	for key, value := range s.vars {
		result[key] = value
	}
	return result, nil
}

// Watch returns ErrWatchNotSupported.
func (s *staticSource) Watch(ctx context.Context) (<-chan reactenv.ChangeEvent, error) {
	return nil, reactenv.ErrWatchNotSupported
}

// Name returns a human-readable identifier for this source.
func (s *staticSource) Name() string {
	return "static"
}
