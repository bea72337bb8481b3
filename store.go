package reactenv

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Store owns one cache slot for resolved environment mappings. It is the
// injectable replacement for process-wide accessor state: independent stores
// never share cache entries, so tests can run side by side without leakage.
// Thread-safe.
type Store struct {
	sources []Source
	scope   Scope
	mode    Mode
	log     *logrus.Logger

	// group collapses concurrent resolution passes into a single flight;
	// latecomers receive the in-flight result instead of re-resolving.
	group singleflight.Group

	mu      sync.RWMutex
	cached  map[string]string
	origins map[string]string
	version int64
	subs    []chan Snapshot
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSource appends an ambient source. Sources are merged in order, later
// sources override earlier ones. When no source is configured the process
// environment is used.
func WithSource(src Source) StoreOption {
	return func(s *Store) {
		s.sources = append(s.sources, src)
	}
}

// WithScope sets the resolution scope. Default: ScopePublic.
func WithScope(scope Scope) StoreOption {
	return func(s *Store) {
		s.scope = scope
	}
}

// WithMode fixes the build configuration mode. Default: ModeAuto, which
// consults APP_ENV at each decision point.
func WithMode(mode Mode) StoreOption {
	return func(s *Store) {
		s.mode = mode
	}
}

// WithLogger sets the diagnostic side channel. Default: logrus standard logger.
func WithLogger(log *logrus.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates a Store with an empty cache.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		mode: ModeAuto,
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Env is the bulk accessor: it returns the cached mapping when one exists,
// otherwise it runs a full resolution pass and caches the result. The
// returned map is a copy; mutating it does not affect the cache. Problems
// are surfaced through the diagnostic side channel, never as a failure.
func (s *Store) Env(ctx context.Context, opts Options) map[string]string {
	s.mu.RLock()
	if s.cached != nil {
		env := cloneMap(s.cached)
		s.mu.RUnlock()
		return env
	}
	s.mu.RUnlock()

	env, _ := s.Resolve(ctx, opts)
	return env
}

// Get is the single-key accessor: it returns the bulk mapping's value at key
// when the key is present (an empty string counts as present), else fallback.
func (s *Store) Get(ctx context.Context, key, fallback string) string {
	if value, ok := s.Lookup(ctx, key); ok {
		return value
	}
	return fallback
}

// Lookup reports the bulk mapping's value at key and whether it is present.
func (s *Store) Lookup(ctx context.Context, key string) (string, bool) {
	value, ok := s.Env(ctx, Options{})[key]
	return value, ok
}

// Peek returns the current best-effort mapping without touching the cache:
// the cached mapping when one exists, otherwise a raw uncached resolution
// with no fallback merge and no required check.
func (s *Store) Peek(opts Options) map[string]string {
	s.mu.RLock()
	if s.cached != nil {
		env := cloneMap(s.cached)
		s.mu.RUnlock()
		return env
	}
	s.mu.RUnlock()

	ambient, _ := s.ambient(context.Background())
	return ResolveAmbient(ambient, opts.prefixes(), s.scope).Values
}

// resolveResult carries one completed pass through the singleflight group.
type resolveResult struct {
	values map[string]string
	diag   *Diagnostic
}

// Resolve runs a full resolution pass: load sources, resolve, merge
// fallbacks, check required keys, and swap the cache with the complete
// replacement mapping. Concurrent calls share a single in-flight pass.
// The diagnostic is advisory; the mapping is always usable.
func (s *Store) Resolve(ctx context.Context, opts Options) (map[string]string, *Diagnostic) {
	v, _, _ := s.group.Do("resolve", func() (any, error) {
		return s.resolvePass(ctx, opts), nil
	})
	r := v.(resolveResult)
	return cloneMap(r.values), r.diag
}

func (s *Store) resolvePass(ctx context.Context, opts Options) resolveResult {
	var keyErrs []KeyError

	ambient, srcErrs := s.ambient(ctx)
	keyErrs = append(keyErrs, srcErrs...)

	res := ResolveAmbient(ambient, opts.prefixes(), s.scope)

	// Fallbacks rescue only genuinely absent keys. A key present with an
	// empty string keeps its empty value and will still fail the required
	// check below.
	for key, value := range opts.Fallbacks {
		if _, ok := res.Values[key]; !ok {
			res.Values[key] = value
			res.Origins[key] = "fallback"
		}
	}

	for _, key := range opts.Required {
		value, ok := res.Values[key]
		switch {
		case !ok:
			keyErrs = append(keyErrs, KeyError{
				Key:     key,
				Code:    ErrCodeMissing,
				Message: "required variable is not set",
			})
		case value == "":
			keyErrs = append(keyErrs, KeyError{
				Key:     key,
				Code:    ErrCodeEmpty,
				Message: "required variable is set but empty",
			})
		}
	}

	var diag *Diagnostic
	if len(keyErrs) > 0 {
		diag = &Diagnostic{KeyErrors: keyErrs, Prefixes: opts.prefixes()}
		if s.development() {
			s.log.WithFields(logrus.Fields{
				"missing":  diag.MissingKeys(),
				"prefixes": strings.Join(diag.Prefixes, ", "),
			}).Warn(diag.Error())
		}
	}

	// When every configured source failed, keep serving the previous cached
	// mapping instead of swapping an empty one over good data.
	if len(s.sources) > 0 && len(srcErrs) == len(s.sources) {
		s.mu.RLock()
		prev := s.cached
		s.mu.RUnlock()
		if prev != nil {
			return resolveResult{values: prev, diag: diag}
		}
	}

	s.swap(res.Values, res.Origins, "resolve")
	return resolveResult{values: res.Values, diag: diag}
}

// ambient loads and merges all sources in order; later sources override
// earlier ones. Source failures are degraded into source-coded key errors
// and the remaining sources still contribute.
func (s *Store) ambient(ctx context.Context) (map[string]string, []KeyError) {
	if len(s.sources) == 0 {
		return processEnviron(), nil
	}

	merged := make(map[string]string)
	var keyErrs []KeyError

	for _, source := range s.sources {
		data, err := source.Load(ctx)
		if err != nil {
			keyErrs = append(keyErrs, KeyError{
				Key:     source.Name(),
				Code:    ErrCodeSource,
				Message: err.Error(),
			})
			continue
		}
		for key, value := range data {
			merged[key] = value
		}
	}

	return merged, keyErrs
}

// swap installs a complete replacement mapping and notifies watchers. The
// cache is never patched incrementally.
func (s *Store) swap(values, origins map[string]string, cause string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = values
	s.origins = origins
	s.version++

	if len(s.subs) == 0 {
		return
	}

	snap := Snapshot{
		Values:     cloneMap(values),
		Origins:    cloneMap(origins),
		Version:    s.version,
		ResolvedAt: time.Now(),
		Cause:      cause,
	}
	for _, ch := range s.subs {
		// Non-blocking: a watcher that has not drained its buffer misses
		// this snapshot rather than stalling the resolution pass.
		select {
		case ch <- snap:
		default:
		}
	}
}

// Clear unconditionally drops the cached mapping. The next accessor call
// recomputes from the ambient sources as if freshly started.
func (s *Store) Clear() {
	s.mu.Lock()
	s.cached = nil
	s.origins = nil
	s.mu.Unlock()
}

// Watch returns a channel that receives a Snapshot after every cache swap.
// The channel is closed when ctx is cancelled.
func (s *Store) Watch(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		for i, sub := range s.subs {
			if sub == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// Origins returns a copy of the current mapping's provenance: each key bound
// to the ambient variable (or "fallback") it came from. Empty before the
// first resolution pass.
func (s *Store) Origins() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMap(s.origins)
}

// Version reports how many cache swaps have occurred.
func (s *Store) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) development() bool {
	switch s.mode {
	case ModeDevelopment:
		return true
	case ModeProduction:
		return false
	default:
		return DetectMode() == ModeDevelopment
	}
}

// processEnviron reads the process environment into a map.
func processEnviron() map[string]string {
	environ := os.Environ()
	result := make(map[string]string, len(environ))
	for _, entry := range environ {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		result[parts[0]] = parts[1]
	}
	return result
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	clone := make(map[string]string, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}
