package reactenv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpConfig holds options for Dump.
type dumpConfig struct {
	withOrigins bool   // Annotate each key with its ambient variable
	asJSON      bool   // Output as JSON instead of text format
	indent      string // Indentation for JSON output (default: "  ")
}

// WithOrigins annotates each key with the ambient variable it came from.
func WithOrigins() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withOrigins = true
	}
}

// AsJSON outputs the mapping as JSON instead of text format.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// jsonDump is the JSON shape written by Dump.
type jsonDump struct {
	Values  map[string]string `json:"values"`
	Origins map[string]string `json:"origins,omitempty"`
}

// Dump writes a human-readable representation of the store's current mapping,
// resolving first when the cache is empty. Values under secret-looking keys
// are redacted as "***redacted***". Returns an error only if writing fails.
func (s *Store) Dump(ctx context.Context, w io.Writer, opts ...DumpOption) error {
	cfg := &dumpConfig{indent: "  "}
	for _, opt := range opts {
		opt(cfg)
	}

	env := s.Env(ctx, Options{})
	origins := s.Origins()

	redacted := make(map[string]string, len(env))
	for key, value := range env {
		if looksSecret(key) {
			redacted[key] = "***redacted***"
		} else {
			redacted[key] = value
		}
	}

	if cfg.asJSON {
		out := jsonDump{Values: redacted}
		if cfg.withOrigins {
			out.Origins = origins
		}
		data, err := json.MarshalIndent(out, "", cfg.indent)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	}

	keys := make([]string, 0, len(redacted))
	for key := range redacted {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		line := fmt.Sprintf("%s=%s", key, redacted[key])
		if cfg.withOrigins {
			if origin, ok := origins[key]; ok && origin != key {
				line += fmt.Sprintf(" (from %s)", origin)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ListVars returns the sorted keys of a fresh uncached resolution and emits
// each one through the diagnostic side channel. Active only in development
// mode; under any other mode it returns nothing and performs no side effect.
// The cache is neither consulted nor populated.
func (s *Store) ListVars(ctx context.Context) []string {
	if !s.development() {
		return nil
	}

	ambient, _ := s.ambient(ctx)
	res := ResolveAmbient(ambient, DefaultPrefixes, s.scope)

	keys := make([]string, 0, len(res.Values))
	for key := range res.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		s.log.WithField("var", key).Info("resolved environment variable")
	}
	return keys
}

// secretFragments marks key substrings whose values should never be printed.
var secretFragments = []string{"SECRET", "TOKEN", "PASSWORD", "PRIVATE", "API_KEY", "APIKEY", "CREDENTIAL"}

func looksSecret(key string) bool {
	upper := strings.ToUpper(key)
	for _, frag := range secretFragments {
		if strings.Contains(upper, frag) {
			return true
		}
	}
	return false
}
