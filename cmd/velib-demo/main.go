package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/velib-terminal/internal/dashboard"
	"github.com/ngmaloney/velib-terminal/internal/models"
	"github.com/ngmaloney/velib-terminal/internal/query"
	"github.com/ngmaloney/velib-terminal/internal/store"
	"github.com/ngmaloney/velib-terminal/internal/ui"
)

// demoClient serves a fixed set of stations without touching the network
type demoClient struct{}

func (demoClient) FetchStations(ctx context.Context) ([]models.Station, error) {
	names := []struct {
		name, insee, commune string
	}{
		{"Bastille - Rue de la Roquette", "75111", ""},
		{"Gare de Lyon - Chalon", "75112", ""},
		{"Châtelet - Innocents", "75101", ""},
		{"République - Temple", "75103", ""},
		{"Mairie de Vanves", "92075", "Vanves"},
		{"Pont de Levallois", "92044", "Levallois-Perret"},
		{"Place d'Italie", "75113", ""},
		{"Montparnasse - Départ", "75115", ""},
	}

	var stations []models.Station
	for i := 0; i < 3; i++ {
		for j, n := range names {
			bikes := (i*7 + j*3) % 18
			capacity := 20 + j*2
			stations = append(stations, models.Station{
				Name:           fmt.Sprintf("%s %d", n.name, i+1),
				MunicipalCode:  n.insee,
				InseeCode:      n.insee,
				CommuneName:    n.commune,
				StationCode:    fmt.Sprintf("%d%03d", j+10, i),
				BikesAvailable: models.IntPtr(bikes),
				DocksAvailable: models.IntPtr(capacity - bikes),
				Capacity:       models.IntPtr(capacity),
				LastUpdated:    "2025-12-08T09:08:08+00:00",
			})
		}
	}
	// One station with nothing reported
	stations = append(stations, models.Station{Name: "Station en maintenance"})
	return stations, nil
}

// This demo shows the UI with mock data
func main() {
	controller := dashboard.NewController(store.New(), query.DefaultPageSize, nil)

	p := tea.NewProgram(ui.NewModel(demoClient{}, controller, nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
