package ui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/velib-terminal/internal/dashboard"
	"github.com/ngmaloney/velib-terminal/internal/store"
	"github.com/ngmaloney/velib-terminal/internal/velib"
)

const sampleResponse = `{
  "nhits": 2,
  "records": [
    {"fields": {"name": "Bastille - Rue de la Roquette", "code_insee_commune": "75111",
      "stationcode": "11104", "numbikesavailable": 4, "numdocksavailable": 20,
      "capacity": 24, "duedate": "2025-12-08T09:08:08+00:00"}},
    {"fields": {"name": "Mairie de Vanves", "code_insee_commune": "92075",
      "nom_arrondissement_communes": "Vanves", "stationcode": "21010",
      "numbikesavailable": "7", "numdocksavailable": 13}}
  ]
}`

func newVelibServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("dataset"); got != velib.DefaultDataset {
			t.Errorf("dataset = %q, want %q", got, velib.DefaultDataset)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// TestIntegration_LoadAndSearch drives the model through a real client fetch
func TestIntegration_LoadAndSearch(t *testing.T) {
	server := newVelibServer(t, http.StatusOK, sampleResponse)
	client := velib.NewClient(velib.ClientConfig{BaseURL: server.URL})
	m := NewModel(client, dashboard.NewController(store.New(), 20, nil), nil)

	m.Init()
	msg := fetchStations(client)()
	fetched, ok := msg.(stationsFetchedMsg)
	if !ok {
		t.Fatalf("fetchStations() returned %T, want stationsFetchedMsg", msg)
	}
	if fetched.err != nil {
		t.Fatalf("fetch failed: %v", fetched.err)
	}

	updated, _ := m.Update(fetched)
	updated, _ = updated.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	stats := m.controller.Stats()
	if stats.Stations != 2 || stats.Bikes != 11 || stats.Docks != 33 {
		t.Errorf("stats = %+v, want 2 stations, 11 bikes, 33 docks", stats)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "vanves")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	if !strings.Contains(view, "Mairie de Vanves") {
		t.Error("expected Vanves station in results")
	}
	if strings.Contains(view, "Bastille") {
		t.Error("Bastille should be filtered out")
	}
	if !strings.Contains(view, "Non renseignée") {
		t.Error("missing update time should render as Non renseignée")
	}
}

// TestIntegration_ServerError keeps the previous snapshot on failure
func TestIntegration_ServerError(t *testing.T) {
	server := newVelibServer(t, http.StatusInternalServerError, `{"error": "boom"}`)
	client := velib.NewClient(velib.ClientConfig{BaseURL: server.URL})

	st := store.New()
	m := NewModel(client, dashboard.NewController(st, 20, nil), nil)
	m.Init()

	msg := fetchStations(client)().(stationsFetchedMsg)
	if !velib.IsAPIError(msg.err) {
		t.Fatalf("expected API error, got %v", msg.err)
	}

	updated, _ := m.Update(msg)
	updated, _ = updated.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if st.Len() != 0 {
		t.Errorf("store len = %d, want 0", st.Len())
	}
	if !strings.Contains(m.View(), dashboard.LoadErrorMessage) {
		t.Error("expected load error in view")
	}
}
