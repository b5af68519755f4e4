package content

import (
	"strings"
	"unicode"
)

// ExclusionMarker prefixes path segments that are kept out of derived URLs.
// A folder like content/_drafts still has its files processed; the segment
// just never appears in the canonical URL.
const ExclusionMarker = "_"

// CanonicalURL derives the canonical URL for a content file from the site
// base URL and the file's content-root-relative path. It is a pure function
// of its inputs: file contents never influence the result.
func CanonicalURL(siteURL, rel string) string {
	base := strings.TrimSuffix(siteURL, "/")
	segments := Segments(rel)
	if len(segments) == 0 {
		return base
	}
	return base + "/" + strings.Join(segments, "/")
}

// Segments returns the URL path segments for a content-root-relative file
// path: the Markdown extension stripped, segments beginning with the
// exclusion marker dropped, and each remaining segment lower-kebab-cased.
func Segments(rel string) []string {
	rel = trimMarkdownExt(strings.Trim(rel, "/"))

	var segments []string
	for _, segment := range strings.Split(rel, "/") {
		if segment == "" || strings.HasPrefix(segment, ExclusionMarker) {
			continue
		}
		if s := kebab(segment); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func trimMarkdownExt(p string) string {
	for _, ext := range markdownExts {
		if strings.HasSuffix(strings.ToLower(p), ext) {
			return p[:len(p)-len(ext)]
		}
	}
	return p
}

// kebab lower-kebab-cases a path segment: camelCase boundaries, spaces,
// underscores, and runs of punctuation all become single hyphens.
func kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	prevDash := true // suppress a leading dash
	prevLower := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if prevLower && !prevDash {
				b.WriteRune('-')
			}
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
			prevLower = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
			prevLower = unicode.IsLower(r)
		default:
			if !prevDash {
				b.WriteRune('-')
			}
			prevDash = true
			prevLower = false
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
