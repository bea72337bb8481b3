package reactenv

// DefaultPrefixes is the recognized prefix set, checked in priority order.
// The first prefix a key starts with determines which portion is stripped.
var DefaultPrefixes = []string{
	"REACT_APP_",
	"NEXT_PUBLIC_",
	"VUE_APP_",
	"VITE_",
}

// Options configures a resolution pass.
type Options struct {
	// Prefix replaces the default prefix set with a single custom prefix.
	Prefix string

	// Required lists keys that must resolve to a non-empty string after the
	// fallback merge. Violations produce an advisory Diagnostic.
	Required []string

	// Fallbacks supplies per-key default values, merged only into keys that
	// are genuinely absent from the resolution. A key present with an empty
	// string keeps its empty value.
	Fallbacks map[string]string
}

// prefixes returns the active prefix set for this pass.
func (o Options) prefixes() []string {
	if o.Prefix != "" {
		return []string{o.Prefix}
	}
	return DefaultPrefixes
}
