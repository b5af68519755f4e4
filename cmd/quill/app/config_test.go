package app

import (
	"errors"
	"os"
	"testing"

	"github.com/quillmark/quill/internal/forem"
	qerrors "github.com/quillmark/quill/pkg/errors"
)

// TestLoadConfig_Defaults verifies defaults apply when nothing is set.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"QUILL_API_KEY", "QUILL_API_URL", "QUILL_USER_AGENT",
		"QUILL_SITE_URL", "QUILL_CONTENT_DIR", "QUILL_SITE_CONFIG", "QUILL_TEMPLATES_DIR"} {
		old := os.Getenv(key)
		os.Unsetenv(key)
		defer os.Setenv(key, old)
	}

	cfg := LoadConfig()
	if cfg == nil {
		t.Fatal("LoadConfig() returned nil config")
	}
	if cfg.APIURL != forem.DefaultAPIURL {
		t.Errorf("APIURL = %s, want %s", cfg.APIURL, forem.DefaultAPIURL)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %s, want default", cfg.UserAgent)
	}
	if cfg.ContentDir != DefaultContentDir {
		t.Errorf("ContentDir = %s, want %s", cfg.ContentDir, DefaultContentDir)
	}
	if cfg.SiteConfig != "site.yaml" {
		t.Errorf("SiteConfig = %s, want site.yaml", cfg.SiteConfig)
	}
}

// TestLoadConfig_EnvironmentVariables verifies env var loading.
func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	oldKey := os.Getenv("QUILL_API_KEY")
	oldSite := os.Getenv("QUILL_SITE_URL")
	oldDir := os.Getenv("QUILL_CONTENT_DIR")
	defer func() {
		os.Setenv("QUILL_API_KEY", oldKey)
		os.Setenv("QUILL_SITE_URL", oldSite)
		os.Setenv("QUILL_CONTENT_DIR", oldDir)
	}()

	os.Setenv("QUILL_API_KEY", "secret")
	os.Setenv("QUILL_SITE_URL", "https://example.com")
	os.Setenv("QUILL_CONTENT_DIR", "posts")

	cfg := LoadConfig()
	if cfg.APIKey != "secret" {
		t.Error("QUILL_API_KEY environment variable not loaded")
	}
	if cfg.SiteURL != "https://example.com" {
		t.Errorf("SiteURL = %s, want https://example.com", cfg.SiteURL)
	}
	if cfg.ContentDir != "posts" {
		t.Errorf("ContentDir = %s, want posts", cfg.ContentDir)
	}
}

// TestValidatePublish verifies publish preconditions.
func TestValidatePublish(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "missing api key",
			cfg:     Config{SiteURL: "https://example.com"},
			wantErr: qerrors.ErrAPIKeyRequired,
		},
		{
			name: "missing site url",
			cfg:  Config{APIKey: "secret"},
		},
		{
			name: "complete",
			cfg:  Config{APIKey: "secret", SiteURL: "https://example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidatePublish()
			switch {
			case tt.name == "complete":
				if err != nil {
					t.Fatalf("ValidatePublish() = %v, want nil", err)
				}
			case err == nil:
				t.Fatal("ValidatePublish() = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePublish() = %v, want %v", err, tt.wantErr)
			}

			var cfgErr *qerrors.ConfigError
			if err != nil && !errors.As(err, &cfgErr) {
				t.Errorf("ValidatePublish() error is not a ConfigError: %v", err)
			}
		})
	}
}
