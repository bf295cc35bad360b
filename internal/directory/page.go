package directory

import (
	"strings"
)

const (
	PageSize = 10
)

type Page struct {
	Items        []string
	Page         int
	TotalPages   int
	TotalMatches int
}

// ComputePage Filter usernames by a case-insensitive substring match and cut out the requested (1-based) page.
// Pages outside the available range yield no items rather than an error.
func ComputePage(usernames []string, search string, page int) Page {
	needle := strings.ToLower(search)
	filtered := make([]string, 0, len(usernames))
	for _, username := range usernames {
		if strings.Contains(strings.ToLower(username), needle) {
			filtered = append(filtered, username)
		}
	}

	p := Page{
		Items:        []string{},
		Page:         page,
		TotalMatches: len(filtered),
		TotalPages:   (len(filtered) + PageSize - 1) / PageSize,
	}

	if page < 1 {
		return p
	}

	start := (page - 1) * PageSize
	if start >= len(filtered) {
		return p
	}
	end := min(start+PageSize, len(filtered))
	p.Items = filtered[start:end]

	return p
}

// Offset Index of the first item within all matches
func (p Page) Offset() int {
	return max(p.Page-1, 0) * PageSize
}

func (p Page) HasPrevious() bool {
	return p.Page > 1
}

// HasNext Never true if nothing matched
func (p Page) HasNext() bool {
	return p.Page < p.TotalPages
}
