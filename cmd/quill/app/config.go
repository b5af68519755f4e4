// Package app holds the configuration glue between the CLI and the
// quill internals.
package app

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/quillmark/quill/internal/forem"
	"github.com/quillmark/quill/pkg/errors"
)

// DefaultUserAgent identifies quill to the publishing platform.
const DefaultUserAgent = "quill (+https://github.com/quillmark/quill)"

// DefaultContentDir is the content root used when none is configured.
const DefaultContentDir = "content"

// Config holds the application configuration loaded from flags,
// environment variables, .env files, and the config file. It is built
// once at startup and passed into the components that need it; nothing
// below the CLI reads the environment.
type Config struct {
	// Platform credentials and endpoints.
	APIKey    string
	APIURL    string
	UserAgent string

	// SiteURL is the public site origin canonical URLs derive from.
	SiteURL string

	// ContentDir is the root of the local Markdown tree.
	ContentDir string

	// SiteConfig is the path to site.yaml.
	SiteConfig string

	// TemplatesDir optionally overrides the embedded site templates.
	TemplatesDir string
}

// LoadConfig loads configuration from all sources in order of precedence:
// command-line flags (bound by cobra), environment variables, .env files,
// the config file, then defaults.
func LoadConfig() *Config {
	loadEnvFiles()

	viper.SetEnvPrefix("QUILL")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	cfg := &Config{
		APIKey:       viper.GetString("api_key"),
		APIURL:       viper.GetString("api_url"),
		UserAgent:    viper.GetString("user_agent"),
		SiteURL:      viper.GetString("site_url"),
		ContentDir:   viper.GetString("content_dir"),
		SiteConfig:   viper.GetString("site_config"),
		TemplatesDir: viper.GetString("templates_dir"),
	}

	// Defaults.
	if cfg.APIURL == "" {
		cfg.APIURL = forem.DefaultAPIURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = DefaultContentDir
	}
	if cfg.SiteConfig == "" {
		cfg.SiteConfig = "site.yaml"
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = "templates"
	}

	return cfg
}

// ValidatePublish checks the preconditions for talking to the platform.
// Called before any I/O so a misconfigured run never leaves the machine.
func (c *Config) ValidatePublish() error {
	if c.APIKey == "" {
		return errors.NewConfigError("QUILL_API_KEY", "API key is required to publish", errors.ErrAPIKeyRequired)
	}
	if c.SiteURL == "" {
		return errors.NewConfigError("QUILL_SITE_URL", "site base URL is required to publish", nil)
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
