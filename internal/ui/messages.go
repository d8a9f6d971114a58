package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/velib-terminal/internal/models"
	"github.com/ngmaloney/velib-terminal/internal/velib"
)

// stationsFetchedMsg is sent when a station snapshot fetch completes
type stationsFetchedMsg struct {
	stations []models.Station
	err      error
}

// fetchStations fetches the full station snapshot in the background.
// Any timeout comes from the client configuration.
func fetchStations(client velib.StationClient) tea.Cmd {
	return func() tea.Msg {
		stations, err := client.FetchStations(context.Background())
		return stationsFetchedMsg{stations: stations, err: err}
	}
}
