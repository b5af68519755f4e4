package site

import (
	"bytes"
	"embed"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/quillmark/quill/internal/content"
	"github.com/quillmark/quill/pkg/errors"
	"github.com/quillmark/quill/pkg/logging"
	"github.com/quillmark/quill/pkg/urlpath"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Page is one rendered content file.
type Page struct {
	Site        *Site
	Title       string
	Description string
	Date        time.Time
	Href        string
	Content     template.HTML

	segments []string
	isPost   bool
}

// indexData feeds the index template.
type indexData struct {
	Site     *Site
	Posts    []*Page
	FeedHref string
}

// layoutData feeds the page layout template.
type layoutData struct {
	*Page
	FeedHref string
	HomeHref string
}

// BuildResult summarizes one site build.
type BuildResult struct {
	Pages int
	Posts int
}

// Builder renders the content tree into a static site.
type Builder struct {
	site   *Site
	root   string
	out    string
	drafts bool

	md   goldmark.Markdown
	tmpl *template.Template
}

// NewBuilder creates a Builder. Templates under templatesDir override the
// embedded defaults when the directory exists.
func NewBuilder(site *Site, root, out, templatesDir string, drafts bool) (*Builder, error) {
	tmpl, err := loadTemplates(templatesDir)
	if err != nil {
		return nil, err
	}

	return &Builder{
		site:   site,
		root:   root,
		out:    out,
		drafts: drafts,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
		tmpl: tmpl,
	}, nil
}

func loadTemplates(dir string) (*template.Template, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			tmpl, err := template.ParseGlob(filepath.Join(dir, "*.tmpl"))
			if err != nil {
				return nil, errors.WrapParse("template", dir, err)
			}
			return tmpl, nil
		}
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.WrapParse("template", "embedded", err)
	}
	return tmpl, nil
}

// Build renders every content page, the post index, and the RSS feed into
// the output directory.
func (b *Builder) Build() (*BuildResult, error) {
	files, err := content.Discover(b.root)
	if err != nil {
		return nil, err
	}

	var pages []*Page
	for _, file := range files {
		post, err := content.Load(file, content.Rel(b.root, file))
		if err != nil {
			return nil, err
		}
		if post.Meta.Draft && !b.drafts {
			logging.Debug().Str("file", file).Msg("Skipping draft")
			continue
		}

		page, err := b.render(post)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	var posts []*Page
	for _, page := range pages {
		if page.isPost {
			posts = append(posts, page)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	for _, page := range pages {
		if err := b.writePage(page); err != nil {
			return nil, err
		}
	}
	if err := b.writeIndex(posts); err != nil {
		return nil, err
	}
	if err := b.writeFeed(posts); err != nil {
		return nil, err
	}

	logging.Info().
		Int("pages", len(pages)).
		Int("posts", len(posts)).
		Str("out", b.out).
		Msg("Site build completed")

	return &BuildResult{Pages: len(pages), Posts: len(posts)}, nil
}

// render converts one post into a Page without touching the filesystem.
func (b *Builder) render(post *content.Post) (*Page, error) {
	var buf bytes.Buffer
	if err := b.md.Convert(post.Body, &buf); err != nil {
		return nil, errors.WrapParse("markdown", post.Path, err)
	}

	segments := content.Segments(post.Rel)
	if n := len(segments); n > 0 && segments[n-1] == "index" {
		segments = segments[:n-1]
	}

	href := "/"
	if len(segments) > 0 {
		href = "/" + strings.Join(segments, "/") + "/"
	}

	return &Page{
		Site:        b.site,
		Title:       pageTitle(post),
		Description: post.Meta.Description,
		Date:        post.Date(),
		Href:        urlpath.Join(b.site.BasePath, href),
		Content:     template.HTML(buf.String()),
		segments:    segments,
		isPost:      len(segments) > 1 && segments[0] == "posts",
	}, nil
}

// pageTitle falls back to a title-cased slug when front-matter has none.
func pageTitle(post *content.Post) string {
	if post.Meta.Title != "" {
		return post.Meta.Title
	}
	slug := post.Title()
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

func (b *Builder) writePage(page *Page) error {
	dir := filepath.Join(b.out, filepath.Join(page.segments...))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	path := filepath.Join(dir, "index.html")
	var buf bytes.Buffer
	data := layoutData{
		Page:     page,
		FeedHref: urlpath.Join(b.site.BasePath, "/feed.xml"),
		HomeHref: urlpath.Join(b.site.BasePath, "/"),
	}
	if err := b.tmpl.ExecuteTemplate(&buf, "layout.html.tmpl", data); err != nil {
		return errors.WrapParse("template", path, err)
	}
	return write(path, buf.Bytes())
}

func (b *Builder) writeIndex(posts []*Page) error {
	var buf bytes.Buffer
	data := indexData{
		Site:     b.site,
		Posts:    posts,
		FeedHref: urlpath.Join(b.site.BasePath, "/feed.xml"),
	}
	if err := b.tmpl.ExecuteTemplate(&buf, "index.html.tmpl", data); err != nil {
		return errors.WrapParse("template", "index.html", err)
	}
	return write(filepath.Join(b.out, "index.html"), buf.Bytes())
}

func write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
