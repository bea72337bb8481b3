// Package sourceenv supplies ambient variables from the process environment.
//
// Prefix handling lives in the resolver, not here: this source hands over the
// raw environment and lets the store decide what is exposed.
//
// Example:
//
//	store := reactenv.NewStore(reactenv.WithSource(sourceenv.New()))
package sourceenv
