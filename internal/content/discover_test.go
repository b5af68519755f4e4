package content

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("---\ntitle: t\n---\nbody\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"posts/a.md",
		"posts/b.markdown",
		"posts/deep/nested/c.md",
		"_drafts/d.md",
		"posts/ignore.txt",
		"assets/style.css",
	)

	files, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	var rels []string
	for _, f := range files {
		rels = append(rels, filepath.ToSlash(Rel(root, f)))
	}
	sort.Strings(rels)

	want := []string{"_drafts/d.md", "posts/a.md", "posts/b.markdown", "posts/deep/nested/c.md"}
	if len(rels) != len(want) {
		t.Fatalf("discovered %v, want %v", rels, want)
	}
	for i := range want {
		if rels[i] != want[i] {
			t.Errorf("rels[%d] = %q, want %q", i, rels[i], want[i])
		}
	}
}

func TestDiscoverEmptyRoot(t *testing.T) {
	files, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestFromList(t *testing.T) {
	files, err := FromList([]string{"posts/a.md", "  ", "notes.txt", "/abs/b.markdown", "README"})
	if err != nil {
		t.Fatalf("FromList: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v", files)
	}

	cwd, _ := os.Getwd()
	if files[0] != filepath.Join(cwd, "posts", "a.md") {
		t.Errorf("relative path not resolved: %q", files[0])
	}
	if files[1] != filepath.FromSlash("/abs/b.markdown") {
		t.Errorf("absolute path changed: %q", files[1])
	}
}

func TestFromListFile(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "changed.txt")
	if err := os.WriteFile(list, []byte("posts/a.md\n\n  \nnotes.txt\n/abs/b.markdown\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := FromListFile(list)
	if err != nil {
		t.Fatalf("FromListFile: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v, want two Markdown entries", files)
	}

	cwd, _ := os.Getwd()
	if files[0] != filepath.Join(cwd, "posts", "a.md") {
		t.Errorf("relative path not resolved: %q", files[0])
	}
	if files[1] != filepath.FromSlash("/abs/b.markdown") {
		t.Errorf("absolute path changed: %q", files[1])
	}
}

func TestFromListFileMissing(t *testing.T) {
	_, err := FromListFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing list file")
	}
}

func TestRelOutsideRoot(t *testing.T) {
	root := t.TempDir()
	if got := Rel(root, "/somewhere/else/post.md"); got != "post.md" {
		t.Errorf("Rel = %q, want base name fallback", got)
	}
}

func TestIsMarkdown(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.md", true},
		{"a.MD", true},
		{"a.markdown", true},
		{"a.mdx", false},
		{"a.txt", false},
		{"md", false},
	}
	for _, tt := range tests {
		if got := IsMarkdown(tt.path); got != tt.want {
			t.Errorf("IsMarkdown(%q) = %v", tt.path, got)
		}
	}
}
