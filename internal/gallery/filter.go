package gallery

import "strings"

// Filter returns the entries whose location, description or any tag contains
// query, ignoring case. The result keeps the input order and an empty query
// matches every entry. The input slice is never modified.
func Filter(entries []Entry, query string) []Entry {
	q := strings.ToLower(query)

	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if matches(entry, q) {
			out = append(out, entry)
		}
	}
	return out
}

func matches(entry Entry, q string) bool {
	if strings.Contains(strings.ToLower(entry.Location), q) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Description), q) {
		return true
	}
	for _, tag := range entry.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
