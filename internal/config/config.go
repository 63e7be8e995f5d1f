package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	APIBaseURL         string           `mapstructure:"api_base_url"`
	ListenAddr         string           `mapstructure:"listen_addr"`
	RequestTimeout     time.Duration    `mapstructure:"request_timeout"` // 0 disables the client timeout
	Locale             string           `mapstructure:"locale"`          // ko, en
	LogLevel           string           `mapstructure:"log_level"`
	LogFormat          string           `mapstructure:"log_format"` // text, json
	DashboardJobs      int              `mapstructure:"dashboard_jobs"`
	DashboardFeedbacks int              `mapstructure:"dashboard_feedbacks"`
	TestURL            string           `mapstructure:"test_url"`
	Platforms          []PlatformConfig `mapstructure:"platforms"`
}

// PlatformConfig describes one crawler panel. Empty ids fall back to
// "<id>-results" and "<id>-jobs-list".
type PlatformConfig struct {
	ID        string `mapstructure:"id"`
	Label     string `mapstructure:"label"`
	Endpoint  string `mapstructure:"endpoint"`
	ResultsID string `mapstructure:"results_id"`
	ListID    string `mapstructure:"list_id"`
}

var AppConfig *Config

const envPrefix = "JOBDESK"

// Initialize loads the configuration file at path (or the default location)
// into the global viper instance and AppConfig.
func Initialize(path string) error {
	if path == "" {
		path = GetConfigPath()
		if err := ensureDefaultConfig(path); err != nil {
			return err
		}
	}

	cfg, err := load(viper.GetViper(), path)
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// Load reads a config file into a fresh viper instance. A missing file is not
// an error; defaults and environment variables still apply.
func Load(path string) (*Config, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_base_url", "http://localhost:8000/api")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("request_timeout", "0s")
	v.SetDefault("locale", "ko")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("dashboard_jobs", 5)
	v.SetDefault("dashboard_feedbacks", 3)
	v.SetDefault("test_url", "http://test.com/job/1")
	v.SetDefault("platforms", defaultPlatforms())
}

func defaultPlatforms() []map[string]any {
	ids := []string{"linkedin", "jobkorea", "wanted", "saramin", "incruit", "jobplanet"}
	labels := map[string]string{
		"linkedin":  "LinkedIn",
		"jobkorea":  "JobKorea",
		"wanted":    "Wanted",
		"saramin":   "Saramin",
		"incruit":   "Incruit",
		"jobplanet": "JobPlanet",
	}
	out := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, map[string]any{"id": id, "label": labels[id], "endpoint": "/crawl"})
	}
	return out
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("api_base_url must be an absolute URL, got %q", c.APIBaseURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	if c.DashboardJobs <= 0 || c.DashboardFeedbacks <= 0 {
		return fmt.Errorf("dashboard_jobs and dashboard_feedbacks must be positive")
	}

	seen := make(map[string]bool, len(c.Platforms))
	for i, p := range c.Platforms {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return fmt.Errorf("platforms[%d]: id is required", i)
		}
		if seen[id] {
			return fmt.Errorf("platforms[%d]: duplicate id %q", i, id)
		}
		seen[id] = true
	}
	return nil
}

// ensureDefaultConfig creates the config directory and a default file on first run
func ensureDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefaultConfig(path)
	}
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# jobdesk configuration
# Tracker API the pages and crawler panels talk to
api_base_url: http://localhost:8000/api
listen_addr: ":8080"

# 0s waits for the API as long as it takes
request_timeout: 0s

# UI language: ko, en
locale: ko

log_level: info
log_format: text

dashboard_jobs: 5
dashboard_feedbacks: 3

# Crawler panels. results_id / list_id default to <id>-results / <id>-jobs-list
platforms:
  - {id: linkedin, label: LinkedIn, endpoint: /crawl}
  - {id: jobkorea, label: JobKorea, endpoint: /crawl}
  - {id: wanted, label: Wanted, endpoint: /crawl}
  - {id: saramin, label: Saramin, endpoint: /crawl}
  - {id: incruit, label: Incruit, endpoint: /crawl}
  - {id: jobplanet, label: JobPlanet, endpoint: /crawl}
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// SettableKeys lists the scalar keys `config set` accepts.
func SettableKeys() []string {
	return []string{"api_base_url", "listen_addr", "request_timeout", "locale", "log_level", "log_format", "dashboard_jobs", "dashboard_feedbacks", "test_url"}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".jobdesk", "config.yaml")
}
