// Package site builds the static blog site: Markdown pages rendered
// through templates, an index of posts, and an RSS feed.
package site

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/quillmark/quill/pkg/errors"
)

// Link is one navigation entry.
type Link struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Site is the site-wide configuration, read from site.yaml at the
// project root.
type Site struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`

	// BaseURL is the public origin, e.g. https://example.com.
	BaseURL string `yaml:"base_url"`

	// BasePath prefixes all internal links when the site is deployed
	// under a subpath.
	BasePath string `yaml:"base_path"`

	Nav []Link `yaml:"nav"`
}

// DefaultSite returns the configuration used when no site.yaml exists.
func DefaultSite() *Site {
	return &Site{Title: "Blog"}
}

// LoadSite reads site configuration from path. A missing file yields the
// defaults; a malformed one is an error.
func LoadSite(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSite(), nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	site := DefaultSite()
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return site, nil
}
