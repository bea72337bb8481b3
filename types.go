package reactenv

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"
)

// Source supplies ambient key-value pairs (process environment, dotenv files,
// build-time substitution maps). Keys and values are plain strings; an absent
// key simply does not appear in the returned map.
type Source interface {
	// Load returns the ambient variables as a flat map. Missing optional
	// sources should return an empty map.
	Load(ctx context.Context) (map[string]string, error)

	// Watch emits ChangeEvent when the underlying data changes. Returns
	// ErrWatchNotSupported if not supported.
	Watch(ctx context.Context) (<-chan ChangeEvent, error)

	// Name identifies the source in diagnostics (e.g., "env", "file:.env").
	Name() string
}

// ChangeEvent notifies of ambient data changes.
type ChangeEvent struct {
	At    time.Time
	Cause string // Description (e.g., "file-changed")
}

// ErrWatchNotSupported is returned when watching is not supported.
var ErrWatchNotSupported = errors.New("reactenv: watch not supported by this source")

// Scope controls whether resolution filters the ambient map by recognized
// prefix. Public scope exposes only explicitly opted-in variables; trusted
// scope sees everything.
type Scope int

const (
	// ScopePublic exposes only variables carrying a recognized prefix.
	ScopePublic Scope = iota

	// ScopeTrusted exposes the full ambient map unfiltered.
	ScopeTrusted
)

// Mode is the build configuration gating diagnostics and the listing helper.
type Mode int

const (
	// ModeAuto re-detects the mode from the environment at each decision point.
	ModeAuto Mode = iota

	// ModeDevelopment enables diagnostic emission and ListVars.
	ModeDevelopment

	// ModeProduction silences diagnostics and disables ListVars.
	ModeProduction
)

// EnvAppEnv is the variable consulted by DetectMode.
const EnvAppEnv = "APP_ENV"

// DetectMode reads APP_ENV and reports ModeDevelopment for "development" or
// "dev" (case-insensitive). Anything else, including unset, is ModeProduction.
func DetectMode() Mode {
	switch strings.ToLower(os.Getenv(EnvAppEnv)) {
	case "development", "dev":
		return ModeDevelopment
	default:
		return ModeProduction
	}
}

// Resolution is the output of one resolver pass over an ambient map.
type Resolution struct {
	// Values maps both cleaned and original keys to their string values.
	Values map[string]string

	// Origins maps each output key to the ambient variable it came from.
	Origins map[string]string
}

// Snapshot represents one cached mapping version emitted by Watch().
type Snapshot struct {
	Values     map[string]string
	Origins    map[string]string
	Version    int64 // Increments on each cache swap (starts at 1)
	ResolvedAt time.Time
	Cause      string // What triggered the resolution
}
