package sourcefile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	reactenv "github.com/SkullCrawler/react-env-secrets"
)

// Options configures file source behavior.
type Options struct {
	// Format: "dotenv", "yaml", "json", or "toml". Auto-detected from the
	// file name if empty.
	Format string

	// Required: if true, missing files cause an error. Default: false
	// (returns empty map).
	Required bool
}

type fileSource struct {
	path string
	opts Options
}

// New creates a file-based ambient variable source.
func New(path string, opts Options) reactenv.Source {
	return &fileSource{
		path: path,
		opts: opts,
	}
}

// Load reads and parses the file, returning a flat string map.
func (f *fileSource) Load(ctx context.Context) (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			if f.opts.Required {
				return nil, fmt.Errorf("required env file not found: %s: %w", f.path, err)
			}
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read env file %s: %w", f.path, err)
	}

	format := f.opts.Format
	if format == "" {
		format = inferFormat(f.path)
	}

	switch format {
	case "dotenv":
		vars, err := godotenv.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse dotenv file %s: %w", f.path, err)
		}
		return vars, nil
	case "yaml", "yml":
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML file %s: %w", f.path, err)
		}
		return flatten(raw), nil
	case "json":
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON file %s: %w", f.path, err)
		}
		return flatten(raw), nil
	case "toml":
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse TOML file %s: %w", f.path, err)
		}
		return flatten(raw), nil
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: dotenv, yaml, json, toml)", format)
	}
}

// Watch returns ErrWatchNotSupported (file watching not yet implemented).
func (f *fileSource) Watch(ctx context.Context) (<-chan reactenv.ChangeEvent, error) {
	return nil, reactenv.ErrWatchNotSupported
}

// Name returns a human-readable identifier for this source.
func (f *fileSource) Name() string {
	return "file:" + filepath.Base(f.path)
}

// flatten collapses nested documents into a flat string map, joining key
// paths with underscores. Arrays and other non-scalar leaves are skipped.
func flatten(raw map[string]any) map[string]string {
	result := make(map[string]string)
	flattenInto("", raw, result)
	return result
}

func flattenInto(prefix string, value any, result map[string]string) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			newPrefix := key
			if prefix != "" {
				newPrefix = prefix + "_" + key
			}
			flattenInto(newPrefix, val, result)
		}
	case map[any]any:
		for key, val := range v {
			keyStr, ok := key.(string)
			if !ok {
				continue
			}
			newPrefix := keyStr
			if prefix != "" {
				newPrefix = prefix + "_" + keyStr
			}
			flattenInto(newPrefix, val, result)
		}
	default:
		if prefix == "" {
			return
		}
		if s, ok := stringify(value); ok {
			result[prefix] = s
		}
	}
}

// stringify renders a scalar leaf as its environment-variable string form.
func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case nil:
		return "", false
	default:
		return "", false
	}
}

func inferFormat(path string) string {
	base := strings.ToLower(filepath.Base(path))
	if base == ".env" || strings.HasPrefix(base, ".env.") {
		return "dotenv"
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".env":
		return "dotenv"
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
