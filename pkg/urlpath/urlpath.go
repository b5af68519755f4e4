// Package urlpath provides helpers for prefixing and stripping a site
// base path on root-relative URLs, for sites deployed under a subpath.
package urlpath

import "strings"

// Join prefixes base onto a root-relative URL path. It is idempotent:
// a path already carrying the base is returned unchanged. Absolute URLs
// (carrying a scheme) and anchor/query-only references are left alone.
func Join(base, path string) string {
	base = normalizeBase(base)
	if base == "" || path == "" {
		return path
	}
	if hasScheme(path) || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "?") {
		return path
	}
	if path == base || strings.HasPrefix(path, base+"/") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		return path
	}
	return base + path
}

// Trim strips base from a URL path if present. The result is always
// root-relative; trimming the bare base yields "/".
func Trim(base, path string) string {
	base = normalizeBase(base)
	if base == "" || path == "" {
		return path
	}
	if path == base {
		return "/"
	}
	if strings.HasPrefix(path, base+"/") {
		return path[len(base):]
	}
	return path
}

// normalizeBase reduces a base path to "/segment" form, or "" when the
// base has no effect.
func normalizeBase(base string) string {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return ""
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base
}

// hasScheme reports whether s looks like an absolute URL.
func hasScheme(s string) bool {
	i := strings.Index(s, "://")
	if i <= 0 {
		return strings.HasPrefix(s, "//")
	}
	for _, r := range s[:i] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}
