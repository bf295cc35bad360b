package directory_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cetteup/gmdirectory/internal/directory"
)

func TestComputePage(t *testing.T) {
	tests := []struct {
		name             string
		usernames        []string
		search           string
		page             int
		wantItems        []string
		wantTotalPages   int
		wantTotalMatches int
	}{
		{
			name:             "finds single match case-insensitively",
			usernames:        []string{"a", "b", "magnuscarlsen"},
			search:           "magnus",
			page:             1,
			wantItems:        []string{"magnuscarlsen"},
			wantTotalPages:   1,
			wantTotalMatches: 1,
		},
		{
			name:             "matches upper case search against lower case username",
			usernames:        []string{"hikaru", "Firouzja2003", "fabianocaruana"},
			search:           "FIROUZJA",
			page:             1,
			wantItems:        []string{"Firouzja2003"},
			wantTotalPages:   1,
			wantTotalMatches: 1,
		},
		{
			name:             "empty search matches everything in upstream order",
			usernames:        []string{"c", "a", "b"},
			search:           "",
			page:             1,
			wantItems:        []string{"c", "a", "b"},
			wantTotalPages:   1,
			wantTotalMatches: 3,
		},
		{
			name:             "no matches yields zero pages",
			usernames:        []string{"a", "b"},
			search:           "zzz",
			page:             1,
			wantItems:        []string{},
			wantTotalPages:   0,
			wantTotalMatches: 0,
		},
		{
			name:             "empty list yields zero pages",
			usernames:        nil,
			search:           "",
			page:             1,
			wantItems:        []string{},
			wantTotalPages:   0,
			wantTotalMatches: 0,
		},
		{
			name:             "page below one yields no items",
			usernames:        []string{"a", "b"},
			search:           "",
			page:             0,
			wantItems:        []string{},
			wantTotalPages:   1,
			wantTotalMatches: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// WHEN
			actual := directory.ComputePage(tt.usernames, tt.search, tt.page)

			// THEN
			assert.Equal(t, tt.wantItems, actual.Items)
			assert.Equal(t, tt.wantTotalPages, actual.TotalPages)
			assert.Equal(t, tt.wantTotalMatches, actual.TotalMatches)
			assert.Equal(t, tt.page, actual.Page)
		})
	}
}

func TestComputePage_Boundaries(t *testing.T) {
	// GIVEN
	usernames := givenUsernames(25)

	tests := []struct {
		page      int
		wantCount int
		wantFirst string
	}{
		{page: 1, wantCount: 10, wantFirst: "player00"},
		{page: 2, wantCount: 10, wantFirst: "player10"},
		{page: 3, wantCount: 5, wantFirst: "player20"},
		{page: 4, wantCount: 0},
		{page: 100, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			// WHEN
			actual := directory.ComputePage(usernames, "", tt.page)

			// THEN
			assert.Equal(t, 3, actual.TotalPages)
			assert.Equal(t, 25, actual.TotalMatches)
			assert.Len(t, actual.Items, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, actual.Items[0])
				assert.Equal(t, (tt.page-1)*directory.PageSize, actual.Offset())
			}
		})
	}
}

func TestComputePage_Subsequence(t *testing.T) {
	usernames := []string{"MagnusCarlsen", "Hikaru", "magnus_fan", "GothamChess", "DanielNaroditsky", "NotMagnus", "ANISHGIRI"}

	for _, search := range []string{"", "magnus", "MAG", "a", "s", "zz", "i"} {
		t.Run(search, func(t *testing.T) {
			// WHEN
			actual := directory.ComputePage(usernames, search, 1)

			// THEN
			i := 0
			for _, item := range actual.Items {
				assert.Contains(t, strings.ToLower(item), strings.ToLower(search))
				// Advance through the source list to prove relative order is preserved
				for i < len(usernames) && usernames[i] != item {
					i++
				}
				assert.Less(t, i, len(usernames), "%s out of order", item)
				i++
			}
			if search == "" {
				assert.Equal(t, len(usernames), actual.TotalMatches)
			}
		})
	}
}

func TestPage_Navigation(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		page         int
		wantPrevious bool
		wantNext     bool
	}{
		{name: "first of many", count: 25, page: 1, wantPrevious: false, wantNext: true},
		{name: "middle", count: 25, page: 2, wantPrevious: true, wantNext: true},
		{name: "last", count: 25, page: 3, wantPrevious: true, wantNext: false},
		{name: "only page", count: 5, page: 1, wantPrevious: false, wantNext: false},
		{name: "no pages", count: 0, page: 1, wantPrevious: false, wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// WHEN
			actual := directory.ComputePage(givenUsernames(tt.count), "", tt.page)

			// THEN
			assert.Equal(t, tt.wantPrevious, actual.HasPrevious())
			assert.Equal(t, tt.wantNext, actual.HasNext())
		})
	}
}

func givenUsernames(n int) []string {
	usernames := make([]string, 0, n)
	for i := range n {
		usernames = append(usernames, fmt.Sprintf("player%02d", i))
	}
	return usernames
}
