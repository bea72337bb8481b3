// Package sourcefile supplies ambient variables from dotenv, YAML, JSON, or
// TOML files.
//
// Format is auto-detected from the file name (.env, .yaml, .json, .toml).
// Nested documents are flattened by joining key paths with underscores
// (a "database: host:" YAML path becomes "database_host"); scalar values are
// rendered as strings.
//
// Example:
//
//	source := sourcefile.New(".env", sourcefile.Options{Required: true})
//	store := reactenv.NewStore(reactenv.WithSource(source))
package sourcefile
