package models

import "testing"

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"offset", "2025-12-08T09:08:08+00:00", "2025-12-08 à 09:08:08"},
		{"zulu", "2025-12-08T09:08:08Z", "2025-12-08 à 09:08:08"},
		{"no zone", "2025-12-08T09:08:08", "2025-12-08 à 09:08:08"},
		{"no separator", "1733648888", "1733648888"},
		{"date only", "2025-12-08", "2025-12-08"},
		{"absent", "", "Non renseignée"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateTime(tt.raw); got != tt.want {
				t.Errorf("FormatDateTime(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(nil); got != "—" {
		t.Errorf("FormatCount(nil) = %q, want —", got)
	}
	if got := FormatCount(IntPtr(0)); got != "0" {
		t.Errorf("FormatCount(0) = %q, want 0", got)
	}
	if got := FormatCount(IntPtr(12)); got != "12" {
		t.Errorf("FormatCount(12) = %q, want 12", got)
	}
}

func TestStation_DisplayFallbacks(t *testing.T) {
	var s Station

	if s.DisplayName() != "Nom de station inconnu" {
		t.Errorf("DisplayName() = %q", s.DisplayName())
	}
	if s.DisplayMunicipality() != "Arrondissement inconnu" {
		t.Errorf("DisplayMunicipality() = %q", s.DisplayMunicipality())
	}
	if s.DisplayStationCode() != "—" {
		t.Errorf("DisplayStationCode() = %q", s.DisplayStationCode())
	}

	s = Station{Name: "Bastille", MunicipalCode: "75104", StationCode: "4009"}
	if s.DisplayName() != "Bastille" {
		t.Errorf("DisplayName() = %q, want Bastille", s.DisplayName())
	}
	if s.DisplayMunicipality() != "75104" {
		t.Errorf("DisplayMunicipality() = %q, want 75104", s.DisplayMunicipality())
	}
	if s.DisplayStationCode() != "4009" {
		t.Errorf("DisplayStationCode() = %q, want 4009", s.DisplayStationCode())
	}
}
