package models

import (
	"strconv"
	"strings"
)

const (
	placeholderMissing      = "—"
	placeholderName         = "Nom de station inconnu"
	placeholderMunicipality = "Arrondissement inconnu"
	placeholderDate         = "Non renseignée"
)

// Station is one Vélib' docking point as decoded from the availability feed.
// A Station is never modified after decoding.
type Station struct {
	Name          string
	MunicipalCode string // code INSEE, or the commune name when the code is missing
	InseeCode     string
	CommuneName   string
	StationCode   string

	// nil means the feed did not provide a usable value; 0 is a real count.
	BikesAvailable *int
	DocksAvailable *int
	Capacity       *int

	LastUpdated string // ISO-8601 as served, "" when absent
}

// DisplayName returns the station name or a placeholder
func (s Station) DisplayName() string {
	if s.Name == "" {
		return placeholderName
	}
	return s.Name
}

// DisplayMunicipality returns the municipal code shown on a station card
func (s Station) DisplayMunicipality() string {
	if s.MunicipalCode == "" {
		return placeholderMunicipality
	}
	return s.MunicipalCode
}

// DisplayStationCode returns the operator station code or "—"
func (s Station) DisplayStationCode() string {
	if s.StationCode == "" {
		return placeholderMissing
	}
	return s.StationCode
}

// FormatCount renders an optional count, "—" when absent
func FormatCount(n *int) string {
	if n == nil {
		return placeholderMissing
	}
	return strconv.Itoa(*n)
}

// FormatDateTime turns "2025-12-08T09:08:08+00:00" into "2025-12-08 à 09:08:08".
// Values without a "T" separator are returned unchanged.
func FormatDateTime(raw string) string {
	if raw == "" {
		return placeholderDate
	}

	date, clock, ok := strings.Cut(raw, "T")
	if !ok {
		return raw
	}

	// Strip the zone designator
	clock, _, _ = strings.Cut(clock, "+")
	clock, _, _ = strings.Cut(clock, "Z")

	return date + " à " + clock
}

// IntPtr returns a pointer to n
func IntPtr(n int) *int {
	return &n
}
