// Package reactenv exposes build-tool environment variables to application
// code through a small accessor surface with prefix stripping, fallback
// values, a required-variable check, and a process-lifetime cache.
//
// Quick Start:
//
//	env := reactenv.Env(reactenv.Options{
//	    Required:  []string{"API_URL"},
//	    Fallbacks: map[string]string{"PORT": "3000"},
//	})
//
//	apiURL := reactenv.Get("API_URL", "https://localhost:8080")
//
// Variables carrying a recognized prefix (REACT_APP_, NEXT_PUBLIC_, VUE_APP_,
// VITE_) are exposed under both their stripped and original names. Required
// variables that resolve missing or empty are reported as an advisory
// diagnostic, never as a failure.
//
// See example_test.go for detailed usage.
package reactenv
