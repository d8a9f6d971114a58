// Package stats computes network-wide totals over a station snapshot.
package stats

import "github.com/ngmaloney/velib-terminal/internal/models"

// Summary holds totals for everything loaded, regardless of any search
type Summary struct {
	Stations int
	Bikes    int
	Docks    int
}

// Aggregate sums availability over stations. Absent counts contribute 0.
func Aggregate(stations []models.Station) Summary {
	sum := Summary{Stations: len(stations)}
	for _, s := range stations {
		sum.Bikes += valueOrZero(s.BikesAvailable)
		sum.Docks += valueOrZero(s.DocksAvailable)
	}
	return sum
}

// Empty reports whether no station is loaded
func (s Summary) Empty() bool {
	return s.Stations == 0
}

func valueOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
