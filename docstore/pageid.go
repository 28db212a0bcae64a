package docstore

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	rawPageID = regexp.MustCompile(`(?i)^[a-f0-9-]{32,36}$`)
	hex32     = regexp.MustCompile(`(?i)^[a-f0-9]{32}$`)
)

// ParsePageID extracts a 32 character page id from a raw id, with or without
// dashes, or from a notion.so URL. It returns false when none is found.
func ParsePageID(input string) (string, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", false
	}
	if rawPageID.MatchString(s) {
		return normalize(strings.ReplaceAll(s, "-", ""))
	}
	if !strings.Contains(s, "notion.so") {
		return "", false
	}

	if !strings.HasPrefix(s, "http") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	if rawPageID.MatchString(last) {
		return normalize(strings.ReplaceAll(last, "-", ""))
	}
	// slugs look like "My-Page-Title-<32 hex>"
	compact := strings.ReplaceAll(last, "-", "")
	if len(compact) >= 32 {
		return normalize(compact[len(compact)-32:])
	}
	return "", false
}

func normalize(id string) (string, bool) {
	if !hex32.MatchString(id) {
		return "", false
	}
	return strings.ToLower(id), true
}

// PageURL is the public URL of a page id.
func PageURL(id string) string {
	return "https://notion.so/" + strings.ReplaceAll(id, "-", "")
}
