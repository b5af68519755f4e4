// Package content loads local Markdown posts: file discovery, front-matter
// parsing, and canonical URL derivation.
package content

import (
	"bytes"
	"os"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/quillmark/quill/pkg/errors"
)

// Tags is a list of post tags. Front-matter may declare tags either as a
// YAML sequence or as a single comma-separated scalar.
type Tags []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tags) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*t = nil
		for _, tag := range strings.Split(single, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				*t = append(*t, tag)
			}
		}
		return nil
	}

	var many []string
	if err := unmarshal(&many); err != nil {
		return err
	}
	*t = Tags(many)
	return nil
}

// Meta is the front-matter block at the head of a Markdown file.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Tags        Tags   `yaml:"tags"`
	Draft       bool   `yaml:"draft"`
	Date        string `yaml:"date"`
}

// Post is a local content item: one Markdown file with parsed front-matter.
// Posts are read-only inputs; nothing in quill mutates them.
type Post struct {
	// Path is the absolute path of the source file.
	Path string

	// Rel is the path relative to the content root, slash-separated.
	Rel string

	Meta Meta

	// Body is the Markdown body with the front-matter block removed.
	Body []byte
}

// Load reads and parses a single Markdown file. rel is the file's path
// relative to the content root; it drives canonical URL derivation.
func Load(path, rel string) (*Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(data, path, rel)
}

// Parse parses raw Markdown bytes into a Post.
func Parse(data []byte, path, rel string) (*Post, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, errors.WrapParse("frontmatter", path, err)
	}

	return &Post{
		Path: path,
		Rel:  toSlash(rel),
		Meta: meta,
		Body: body,
	}, nil
}

// Date returns the parsed front-matter date, or the zero time when the
// field is absent or unparseable.
func (p *Post) Date() time.Time {
	if p.Meta.Date == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, p.Meta.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Title returns the front-matter title, falling back to the last path
// segment's slug when the front-matter omits one.
func (p *Post) Title() string {
	if p.Meta.Title != "" {
		return p.Meta.Title
	}
	segments := Segments(p.Rel)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, string(os.PathSeparator), "/")
}
