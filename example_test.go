package reactenv_test

import (
	"context"
	"fmt"
	"os"
	"sort"

	reactenv "github.com/SkullCrawler/react-env-secrets"
	"github.com/SkullCrawler/react-env-secrets/sourceenv"
)

// Example demonstrates the bulk accessor with fallbacks and a required key.
func Example() {
	store := reactenv.NewStore(
		reactenv.WithSource(sourceenv.Static(map[string]string{
			"REACT_APP_API_URL": "https://api.example.com",
			"HOME":              "/home/user",
		})),
		reactenv.WithMode(reactenv.ModeProduction),
	)

	env, diag := store.Resolve(context.Background(), reactenv.Options{
		Required:  []string{"API_URL"},
		Fallbacks: map[string]string{"PORT": "3000"},
	})

	fmt.Println(env["API_URL"])
	fmt.Println(env["REACT_APP_API_URL"])
	fmt.Println(env["PORT"])
	_, exposed := env["HOME"]
	fmt.Println(exposed)
	fmt.Println(diag == nil)

	// Output:
	// https://api.example.com
	// https://api.example.com
	// 3000
	// false
	// true
}

// ExampleStore_Get demonstrates the single-key accessor.
func ExampleStore_Get() {
	store := reactenv.NewStore(
		reactenv.WithSource(sourceenv.Static(map[string]string{
			"VITE_TITLE": "My App",
		})),
		reactenv.WithMode(reactenv.ModeProduction),
	)
	ctx := context.Background()

	fmt.Println(store.Get(ctx, "TITLE", "Untitled"))
	fmt.Println(store.Get(ctx, "SUBTITLE", "Untitled"))

	// Output:
	// My App
	// Untitled
}

// ExampleStore_Resolve shows the advisory diagnostic for missing required keys.
func ExampleStore_Resolve() {
	store := reactenv.NewStore(
		reactenv.WithSource(sourceenv.Static(nil)),
		reactenv.WithMode(reactenv.ModeProduction),
	)

	_, diag := store.Resolve(context.Background(), reactenv.Options{
		Prefix:   "MY_APP_",
		Required: []string{"DATABASE_URL"},
	})

	fmt.Println(diag.Error())

	// Output:
	// env resolution flagged 1 problem
	//   - DATABASE_URL: missing (required variable is not set)
	//   hint: recognized prefixes: MY_APP_
}

// ExampleStore_Dump writes the current mapping for inspection.
func ExampleStore_Dump() {
	store := reactenv.NewStore(
		reactenv.WithSource(sourceenv.Static(map[string]string{
			"REACT_APP_HOST":      "localhost",
			"REACT_APP_API_TOKEN": "hunter2",
		})),
		reactenv.WithMode(reactenv.ModeProduction),
	)

	_ = store.Dump(context.Background(), os.Stdout)

	// Output:
	// API_TOKEN=***redacted***
	// HOST=localhost
	// REACT_APP_API_TOKEN=***redacted***
	// REACT_APP_HOST=localhost
}

// ExampleResolveAmbient shows the pure resolver over a fixed ambient map.
func ExampleResolveAmbient() {
	ambient := map[string]string{
		"REACT_APP_PORT": "3000",
		"SHELL":          "/bin/sh",
	}

	res := reactenv.ResolveAmbient(ambient, reactenv.DefaultPrefixes, reactenv.ScopePublic)

	keys := make([]string, 0, len(res.Values))
	for key := range res.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%s=%s\n", key, res.Values[key])
	}

	// Output:
	// PORT=3000
	// REACT_APP_PORT=3000
}
