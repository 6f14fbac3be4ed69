package domain

import "strings"

// School is one entry of the portal's school directory.
type School struct {
	ID        int64
	ShortName string
	Name      string
}

// BestMatch picks the directory entry that best fits the query: an exact
// name first, then a case-insensitive one, then a substring match in either
// direction, and finally the first candidate. Reports false only for an
// empty candidate list.
func BestMatch(candidates []School, query string) (School, bool) {
	if len(candidates) == 0 {
		return School{}, false
	}
	query = strings.TrimSpace(query)
	for _, s := range candidates {
		if s.ShortName == query || s.Name == query {
			return s, true
		}
	}
	folded := strings.ToLower(query)
	for _, s := range candidates {
		if strings.ToLower(s.ShortName) == folded || strings.ToLower(s.Name) == folded {
			return s, true
		}
	}
	for _, s := range candidates {
		short := strings.ToLower(s.ShortName)
		full := strings.ToLower(s.Name)
		if strings.Contains(short, folded) || strings.Contains(folded, short) ||
			strings.Contains(full, folded) {
			return s, true
		}
	}
	return candidates[0], true
}
