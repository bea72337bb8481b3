package reactenv

import (
	"reflect"
	"testing"
)

func TestResolveAmbient_FiltersByPrefix(t *testing.T) {
	ambient := map[string]string{
		"REACT_APP_API_URL": "https://x",
		"OTHER":             "y",
	}

	res := ResolveAmbient(ambient, DefaultPrefixes, ScopePublic)

	want := map[string]string{
		"API_URL":           "https://x",
		"REACT_APP_API_URL": "https://x",
	}
	if !reflect.DeepEqual(res.Values, want) {
		t.Errorf("Values = %v, want %v", res.Values, want)
	}
}

func TestResolveAmbient_DualKeys(t *testing.T) {
	ambient := map[string]string{
		"NEXT_PUBLIC_SITE": "example.com",
		"VUE_APP_TITLE":    "My App",
		"VITE_PORT":        "5173",
	}

	res := ResolveAmbient(ambient, DefaultPrefixes, ScopePublic)

	pairs := map[string]string{
		"SITE":  "NEXT_PUBLIC_SITE",
		"TITLE": "VUE_APP_TITLE",
		"PORT":  "VITE_PORT",
	}
	for cleaned, original := range pairs {
		if res.Values[cleaned] != ambient[original] {
			t.Errorf("cleaned key %q = %q, want %q", cleaned, res.Values[cleaned], ambient[original])
		}
		if res.Values[original] != ambient[original] {
			t.Errorf("original key %q = %q, want %q", original, res.Values[original], ambient[original])
		}
		if res.Origins[cleaned] != original {
			t.Errorf("origin of %q = %q, want %q", cleaned, res.Origins[cleaned], original)
		}
	}
}

func TestResolveAmbient_TrustedScopeUnfiltered(t *testing.T) {
	ambient := map[string]string{
		"REACT_APP_API_URL": "https://x",
		"HOME":              "/home/user",
		"PATH":              "/usr/bin",
	}

	res := ResolveAmbient(ambient, DefaultPrefixes, ScopeTrusted)

	if !reflect.DeepEqual(res.Values, ambient) {
		t.Errorf("trusted scope Values = %v, want ambient map unchanged", res.Values)
	}
	for key := range ambient {
		if res.Origins[key] != key {
			t.Errorf("origin of %q = %q, want itself", key, res.Origins[key])
		}
	}
}

func TestResolveAmbient_EmptyValueRetained(t *testing.T) {
	ambient := map[string]string{"REACT_APP_PORT": ""}

	res := ResolveAmbient(ambient, DefaultPrefixes, ScopePublic)

	value, ok := res.Values["PORT"]
	if !ok {
		t.Fatal("PORT should be present")
	}
	if value != "" {
		t.Errorf("PORT = %q, want empty string", value)
	}
}

func TestResolveAmbient_CustomPrefixDisablesDefaults(t *testing.T) {
	ambient := map[string]string{
		"MY_APP_HOST":       "localhost",
		"REACT_APP_API_URL": "https://x",
	}

	res := ResolveAmbient(ambient, []string{"MY_APP_"}, ScopePublic)

	if res.Values["HOST"] != "localhost" {
		t.Errorf("HOST = %q, want %q", res.Values["HOST"], "localhost")
	}
	if _, ok := res.Values["API_URL"]; ok {
		t.Error("API_URL should not be resolved when a custom prefix is active")
	}
	if _, ok := res.Values["REACT_APP_API_URL"]; ok {
		t.Error("REACT_APP_API_URL should not be retained when a custom prefix is active")
	}
}

func TestResolveAmbient_PrefixOnlyKeySkipped(t *testing.T) {
	ambient := map[string]string{"REACT_APP_": "nothing"}

	res := ResolveAmbient(ambient, DefaultPrefixes, ScopePublic)

	if len(res.Values) != 0 {
		t.Errorf("Values = %v, want empty", res.Values)
	}
}

func TestResolveAmbient_CollisionEarlierPrefixWins(t *testing.T) {
	ambient := map[string]string{
		"REACT_APP_PORT": "3000",
		"VITE_PORT":      "5173",
	}

	res := ResolveAmbient(ambient, DefaultPrefixes, ScopePublic)

	// REACT_APP_ ranks before VITE_, so it owns the cleaned slot.
	if res.Values["PORT"] != "3000" {
		t.Errorf("PORT = %q, want %q", res.Values["PORT"], "3000")
	}
	if res.Origins["PORT"] != "REACT_APP_PORT" {
		t.Errorf("origin of PORT = %q, want REACT_APP_PORT", res.Origins["PORT"])
	}

	// Both originals survive.
	if res.Values["REACT_APP_PORT"] != "3000" || res.Values["VITE_PORT"] != "5173" {
		t.Errorf("original keys = %v", res.Values)
	}
}

func TestResolveAmbient_ExactKeySet(t *testing.T) {
	ambient := map[string]string{
		"REACT_APP_A": "1",
		"VITE_B":      "2",
		"PLAIN":       "3",
		"PATH":        "4",
	}

	res := ResolveAmbient(ambient, DefaultPrefixes, ScopePublic)

	wantKeys := []string{"A", "REACT_APP_A", "B", "VITE_B"}
	if len(res.Values) != len(wantKeys) {
		t.Fatalf("got %d keys (%v), want %d", len(res.Values), res.Values, len(wantKeys))
	}
	for _, key := range wantKeys {
		if _, ok := res.Values[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}
