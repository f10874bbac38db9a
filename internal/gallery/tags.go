package gallery

import "strings"

// ParseTags splits comma separated tag text into trimmed, non-empty tags.
// Order and duplicates are preserved as entered.
func ParseTags(raw string) []string {
	return NormalizeTags(strings.Split(raw, ","))
}

// NormalizeTags trims every tag and drops the empty ones. It is the single
// tag policy for both entry creation and admin edits.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}
