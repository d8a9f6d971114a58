package velib

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/ngmaloney/velib-terminal/internal/models"
)

// Internal types for the OpenData Paris records API

type searchResponse struct {
	Records []record `json:"records"`
}

type record struct {
	Fields recordFields `json:"fields"`
}

type recordFields struct {
	Name                      optionalString `json:"name"`
	CodeInseeCommune          optionalString `json:"code_insee_commune"`
	NomArrondissementCommunes optionalString `json:"nom_arrondissement_communes"`
	StationCode               optionalString `json:"stationcode"`
	NumBikesAvailable         optionalInt    `json:"numbikesavailable"`
	NumDocksAvailable         optionalInt    `json:"numdocksavailable"`
	Capacity                  optionalInt    `json:"capacity"`
	DueDate                   optionalString `json:"duedate"`
	LastReported              optionalString `json:"last_reported"`
	DateMiseAJour             optionalString `json:"datemiseajour"`
}

func (f recordFields) toStation() models.Station {
	return models.Station{
		Name:           f.Name.value,
		MunicipalCode:  firstPresent(f.CodeInseeCommune, f.NomArrondissementCommunes),
		InseeCode:      f.CodeInseeCommune.value,
		CommuneName:    f.NomArrondissementCommunes.value,
		StationCode:    f.StationCode.value,
		BikesAvailable: f.NumBikesAvailable.ptr(),
		DocksAvailable: f.NumDocksAvailable.ptr(),
		Capacity:       f.Capacity.ptr(),
		LastUpdated:    firstPresent(f.DueDate, f.LastReported, f.DateMiseAJour),
	}
}

// firstPresent walks the fallback sources in order and returns the first
// non-empty value, or "" when none has one.
func firstPresent(sources ...optionalString) string {
	for _, s := range sources {
		if s.present && s.value != "" {
			return s.value
		}
	}
	return ""
}

// optionalString accepts a JSON string or number. Anything else is absent.
type optionalString struct {
	value   string
	present bool
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		o.value, o.present = s, true
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	o.value, o.present = n.String(), true
	return nil
}

// optionalInt accepts a JSON number or a numeric string. A value that is
// missing, null or not a number stays absent; 0 is present.
type optionalInt struct {
	value   int
	present bool
}

func (o *optionalInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	if n, err := strconv.Atoi(raw); err == nil {
		o.value, o.present = n, true
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		o.value, o.present = int(f), true
	}
	return nil
}

func (o optionalInt) ptr() *int {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}
