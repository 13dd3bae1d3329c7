package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL = "http://localhost:8080/api/v1"
	defaultTimeout = 15 * time.Second

	appDirName = "airbnbes"
)

// Config holds the client settings. Values come from an optional YAML file,
// overridden by environment variables so a shared config can serve several
// shells.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionFile    string
	OTLPEndpoint   string
}

type fileConfig struct {
	APIBaseURL     string `yaml:"api_base_url"`
	RequestTimeout string `yaml:"request_timeout"`
	SessionFile    string `yaml:"session_file"`
	OTLPEndpoint   string `yaml:"otlp_endpoint"`
}

// DefaultPath is the config file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, appDirName, "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file is absent, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		APIBaseURL:     defaultBaseURL,
		RequestTimeout: defaultTimeout,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
			if fc.APIBaseURL != "" {
				cfg.APIBaseURL = fc.APIBaseURL
			}
			if fc.RequestTimeout != "" {
				d, err := time.ParseDuration(fc.RequestTimeout)
				if err != nil || d <= 0 {
					return Config{}, fmt.Errorf("invalid request_timeout: %q", fc.RequestTimeout)
				}
				cfg.RequestTimeout = d
			}
			cfg.SessionFile = fc.SessionFile
			cfg.OTLPEndpoint = fc.OTLPEndpoint
		case errors.Is(err, fs.ErrNotExist):
			// defaults apply
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v := os.Getenv("BES_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("BES_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid BES_TIMEOUT: %q", v)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("BES_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}

	parsed, err := url.Parse(cfg.APIBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid API base URL: %q", cfg.APIBaseURL)
	}

	return cfg, nil
}
