package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Config is inklet's CLI configuration, loaded from a small cascade of
// sources: the file at $INKLET_CONFIG (if set), else ~/.inklet.json, with
// flags always taking precedence over either. Query-path access via gjson
// keeps this independent of struct tags, since the flat key set here is
// small and unlikely to grow into something that wants a real schema.
type Config struct {
	Format string `json:"format"`
	Color  bool   `json:"color"`
	Copy   bool   `json:"copy"`
}

func defaultConfig() Config {
	return Config{Format: "delta"}
}

// loadConfig reads the config cascade and applies it to Config's fields,
// leaving unrecognized keys and missing files silently as defaults: an
// absent config file is normal, not an error.
func loadConfig() Config {
	cfg := defaultConfig()

	path := strings.TrimSpace(os.Getenv("INKLET_CONFIG"))
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".inklet.json")
		}
	}
	if path == "" {
		return cfg
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if v := gjson.GetBytes(raw, "format"); v.Exists() {
		cfg.Format = v.String()
	}
	if v := gjson.GetBytes(raw, "color"); v.Exists() {
		cfg.Color = v.Bool()
	}
	if v := gjson.GetBytes(raw, "copy"); v.Exists() {
		cfg.Copy = v.Bool()
	}
	return cfg
}

// writeConfig serializes cfg to path using sjson, building the document key
// by key so callers can add fields without hand-rolling struct-to-JSON
// mapping (mirrors why gjson/sjson are used for reads).
func writeConfig(path string, cfg Config) error {
	doc := "{}"
	var err error
	if doc, err = sjson.Set(doc, "format", cfg.Format); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "color", cfg.Color); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "copy", cfg.Copy); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}
