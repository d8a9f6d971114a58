// Package query derives the visible page of stations from a snapshot.
package query

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ngmaloney/velib-terminal/internal/models"
)

// DefaultPageSize is the number of station cards per page
const DefaultPageSize = 20

// Result is one page of filtered stations
type Result struct {
	Items         []models.Station
	TotalFiltered int
	TotalPages    int
	Page          int
}

// NormalizeFilter trims and lower-cases raw search input
func NormalizeFilter(text string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(text))
}

// Page filters stations by filter and returns page number page (1-based).
// Order follows the input. A page outside 1..TotalPages has no items.
func Page(stations []models.Station, filter string, page, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	m := newMatcher(filter)
	filtered := make([]models.Station, 0, len(stations))
	for _, s := range stations {
		if m.match(s) {
			filtered = append(filtered, s)
		}
	}

	res := Result{
		Items:         []models.Station{},
		TotalFiltered: len(filtered),
		TotalPages:    (len(filtered) + pageSize - 1) / pageSize,
		Page:          page,
	}

	if page < 1 {
		return res
	}

	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return res
	}
	end := min(start+pageSize, len(filtered))

	res.Items = filtered[start:end]
	return res
}

// Matches reports whether a station passes filter. An empty filter matches everything.
func Matches(s models.Station, filter string) bool {
	return newMatcher(filter).match(s)
}

type matcher struct {
	needle string
	lower  cases.Caser
}

func newMatcher(filter string) *matcher {
	lower := cases.Lower(language.Und)
	return &matcher{
		needle: lower.String(filter),
		lower:  lower,
	}
}

// match tests name, municipal code and INSEE code independently; any hit
// wins. The commune name only counts through the municipal code fallback.
func (m *matcher) match(s models.Station) bool {
	if m.needle == "" {
		return true
	}
	for _, field := range []string{s.Name, s.MunicipalCode, s.InseeCode} {
		if field != "" && strings.Contains(m.lower.String(field), m.needle) {
			return true
		}
	}
	return false
}
