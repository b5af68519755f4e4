package content

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/quillmark/quill/pkg/errors"
)

// markdownExts are the file extensions treated as Markdown content.
var markdownExts = []string{".md", ".markdown"}

// IsMarkdown reports whether path has a Markdown extension.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range markdownExts {
		if ext == e {
			return true
		}
	}
	return false
}

// Discover recursively enumerates Markdown files under root, returning
// absolute paths. Order is whatever the directory walk yields; callers
// must not rely on it being stable across runs.
func Discover(root string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.WrapIO("walk", root, err)
	}

	// A missing content root is an empty content set, not an error.
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	err = godirwalk.Walk(abs, &godirwalk.Options{
		Unsorted: true,
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() || !IsMarkdown(path) {
				return nil
			}
			files = append(files, path)
			return nil
		},
	})
	if err != nil {
		return nil, errors.WrapIO("walk", abs, err)
	}
	return files, nil
}

// FromList filters an explicit file list down to Markdown paths, resolving
// relative entries against the current working directory. It overrides
// directory enumeration entirely when supplied.
func FromList(paths []string) ([]string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.WrapIO("resolve", ".", err)
	}

	var files []string
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" || !IsMarkdown(p) {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(cwd, p)
		}
		files = append(files, p)
	}
	return files, nil
}

// FromListFile reads a newline-delimited list of file paths and filters
// it like FromList. Blank lines are skipped.
func FromListFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return FromList(strings.Split(string(data), "\n"))
}

// Rel returns path relative to the content root. Files outside the root
// (possible with an explicit file list) fall back to their base name, so a
// canonical URL can still be derived.
func Rel(root, path string) string {
	abs, err := filepath.Abs(root)
	if err == nil {
		if rel, err := filepath.Rel(abs, path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	return filepath.Base(path)
}
