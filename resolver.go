package reactenv

import (
	"github.com/SkullCrawler/react-env-secrets/internal/prefix"
)

// ResolveAmbient scans an ambient map and produces the cleaned mapping for
// one resolution pass. In ScopePublic, only keys carrying a prefix from the
// active set are kept, each bound under both its stripped and original name.
// In ScopeTrusted, the ambient map is returned as-is (every key its own
// origin).
//
// When two ambient keys strip to the same cleaned name, the key whose prefix
// ranks earlier in the set wins the cleaned slot; both original keys are
// still retained.
func ResolveAmbient(ambient map[string]string, prefixes []string, scope Scope) Resolution {
	res := Resolution{
		Values:  make(map[string]string, len(ambient)),
		Origins: make(map[string]string, len(ambient)),
	}

	if scope == ScopeTrusted {
		for key, value := range ambient {
			res.Values[key] = value
			res.Origins[key] = key
		}
		return res
	}

	// rank remembers the winning prefix index per cleaned key so that map
	// iteration order cannot change the outcome on collisions.
	rank := make(map[string]int)

	for key, value := range ambient {
		idx, ok := prefix.Match(key, prefixes)
		if !ok {
			continue
		}

		cleaned := prefix.Strip(key, prefixes[idx])
		if cleaned == "" {
			// Key consists of nothing but the prefix.
			continue
		}

		res.Values[key] = value
		res.Origins[key] = key

		if prev, taken := rank[cleaned]; taken && prev <= idx {
			continue
		}
		rank[cleaned] = idx
		res.Values[cleaned] = value
		res.Origins[cleaned] = key
	}

	return res
}
