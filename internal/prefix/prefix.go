package prefix

import "strings"

// Match returns the index of the first prefix in prefixes that key starts
// with, checking in declared order. Returns ok=false when no prefix matches.
// Examples:
//   - Match("REACT_APP_PORT", []string{"REACT_APP_", "VITE_"}) → 0, true
//   - Match("VITE_PORT", []string{"REACT_APP_", "VITE_"}) → 1, true
//   - Match("HOME", []string{"REACT_APP_", "VITE_"}) → 0, false
func Match(key string, prefixes []string) (int, bool) {
	for i, p := range prefixes {
		if p != "" && strings.HasPrefix(key, p) {
			return i, true
		}
	}
	return 0, false
}

// Strip removes pfx from the front of key. Returns key unchanged when it does
// not carry the prefix.
// Examples:
//   - Strip("REACT_APP_PORT", "REACT_APP_") → "PORT"
//   - Strip("HOME", "REACT_APP_") → "HOME"
func Strip(key, pfx string) string {
	if strings.HasPrefix(key, pfx) {
		return key[len(pfx):]
	}
	return key
}
