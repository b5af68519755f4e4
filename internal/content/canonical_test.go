package content

import "testing"

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name string
		site string
		rel  string
		want string
	}{
		{"simple post", "https://example.com", "posts/hello-world.md", "https://example.com/posts/hello-world"},
		{"trailing slash on site", "https://example.com/", "posts/hello-world.md", "https://example.com/posts/hello-world"},
		{"markdown long extension", "https://example.com", "posts/hello.markdown", "https://example.com/posts/hello"},
		{"spaces kebab-cased", "https://example.com", "posts/Hello World.md", "https://example.com/posts/hello-world"},
		{"camel case split", "https://example.com", "posts/HelloWorld.md", "https://example.com/posts/hello-world"},
		{"underscores inside segment", "https://example.com", "posts/hello_world.md", "https://example.com/posts/hello-world"},
		{"excluded segment dropped", "https://example.com", "_pages/about.md", "https://example.com/about"},
		{"nested excluded segment", "https://example.com", "posts/_series/part-one.md", "https://example.com/posts/part-one"},
		{"uppercase directory", "https://example.com", "Posts/Some Post.md", "https://example.com/posts/some-post"},
		{"no segments at all", "https://example.com", "_drafts/_x.md", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalURL(tt.site, tt.rel); got != tt.want {
				t.Errorf("CanonicalURL(%q, %q) = %q, want %q", tt.site, tt.rel, got, tt.want)
			}
		})
	}
}

func TestCanonicalURLDeterministic(t *testing.T) {
	a := CanonicalURL("https://example.com", "posts/hello.md")
	b := CanonicalURL("https://example.com", "posts/hello.md")
	if a != b {
		t.Errorf("derivation not deterministic: %q vs %q", a, b)
	}
}

func TestKebab(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"HelloWorld", "hello-world"},
		{"hello_world", "hello-world"},
		{"hello--world", "hello-world"},
		{"  padded  ", "padded"},
		{"Already-Kebab", "already-kebab"},
		{"v2Release", "v2release"},
		{"TIL", "til"},
	}

	for _, tt := range tests {
		if got := kebab(tt.in); got != tt.want {
			t.Errorf("kebab(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
