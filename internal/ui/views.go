package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ngmaloney/velib-terminal/internal/dashboard"
	"github.com/ngmaloney/velib-terminal/internal/models"
)

const noResultsText = "Aucun résultat trouvé."

func (m Model) viewHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center,
			headerButtonStyle.Render("Home"),
			" ",
			titleStyle.Render("🚲 Vélib' – Disponibilité en temps réel"),
		),
		mutedStyle.Render("Recherche de stations Vélib' (données OpenData Paris)."),
	)
}

func (m Model) viewFooter() string {
	return mutedStyle.Render("Données fournies par l'API OpenData Paris : Vélib - Vélos et bornes - Disponibilité temps réel")
}

// viewHome renders the dashboard with network totals
func (m Model) viewHome(vm dashboard.ViewModel) string {
	hero := heroStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Bienvenue 👋"),
		"Consulte en temps réel la disponibilité des stations Vélib' à Paris.",
		"Tu peux chercher par nom de station ou par code INSEE.",
	))

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderStatCard("Stations chargées", vm.Stats.Stations),
		renderStatCard("Vélos disponibles", vm.Stats.Bikes),
		renderStatCard("Places libres", vm.Stats.Docks),
	)

	sections := []string{
		hero,
		sectionHeaderStyle.Render("Statistiques rapides"),
		cards,
	}

	if status := m.viewStatus(vm); status != "" {
		sections = append(sections, "", status)
	}

	sections = append(sections, helpStyle.Render("Enter: Voir les stations • /: Rechercher • R: Recharger • Q: Quitter"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewStations renders the search box, the current page of cards and the pager
func (m Model) viewStations(vm dashboard.ViewModel) string {
	sections := []string{searchBoxStyle.Render(m.searchInput.View())}

	if status := m.viewStatus(vm); status != "" {
		sections = append(sections, status)
	}

	if len(vm.Items) == 0 {
		if !vm.Loading {
			sections = append(sections, "", noResultsText)
		}
	} else {
		summary := fmt.Sprintf("%s station(s)", humanize.Comma(int64(vm.TotalFiltered)))
		if vm.Filter != "" {
			summary += fmt.Sprintf(" pour « %s »", vm.Filter)
		}
		sections = append(sections, mutedStyle.Render(summary), m.renderCardGrid(vm.Items))
	}

	// A single page needs no pager
	if vm.TotalPages > 1 {
		p := m.paginator
		p.TotalPages = vm.TotalPages
		p.Page = vm.Page - 1
		sections = append(sections, p.View())
	}

	sections = append(sections, helpStyle.Render("Enter: Rechercher • ←/→: Page • Esc: Accueil • Ctrl+C: Quitter"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewStatus renders the loading indicator or the error message
func (m Model) viewStatus(vm dashboard.ViewModel) string {
	if vm.Loading {
		return fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render("Chargement des stations..."))
	}
	if vm.Error != "" {
		return errorStyle.Render("✗ " + vm.Error)
	}
	return ""
}

// renderCardGrid lays cards out in as many columns as the terminal allows
func (m Model) renderCardGrid(stations []models.Station) string {
	columns := max(1, m.width/(cardWidth+3))

	var rows []string
	for start := 0; start < len(stations); start += columns {
		end := min(start+columns, len(stations))
		cards := make([]string, 0, end-start)
		for _, s := range stations[start:end] {
			cards = append(cards, renderStationCard(s))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderStationCard(s models.Station) string {
	lines := []string{
		cardTitleStyle.Render(s.DisplayName()),
		cardLine("Code INSEE", s.DisplayMunicipality()),
		cardLine("Code station", s.DisplayStationCode()),
		cardLine("Vélos disponibles", models.FormatCount(s.BikesAvailable)),
		cardLine("Places libres", models.FormatCount(s.DocksAvailable)),
		cardLine("Capacité", models.FormatCount(s.Capacity)),
		cardLine("Dernière mise à jour", models.FormatDateTime(s.LastUpdated)),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func cardLine(label, value string) string {
	return labelStyle.Render(label+" :") + " " + valueStyle.Render(value)
}

func renderStatCard(label string, value int) string {
	return statCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		statLabelStyle.Render(label),
		statValueStyle.Render(formatStat(value)),
	))
}

// formatStat shows "--" for zero, like an empty dashboard
func formatStat(n int) string {
	if n == 0 {
		return "--"
	}
	return humanize.Comma(int64(n))
}
