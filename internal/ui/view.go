package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"raisingsims/internal/pet"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	art     lipgloss.Style
	dead    lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(30),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(30),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	art: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(0, 2),

	dead: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF0000")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if !m.Started {
		return m.startView()
	}

	snap := m.Pet.Snapshot()
	title := gameStyles.title.Render("🐾 " + snap.Name + " 🐾")

	sections := []string{
		title,
		gameStyles.status.Render("Pet's Mood: " + snap.Mood.String()),
		gameStyles.art.Render(ArtFor(snap.DisplayState)),
		renderStats(snap),
		"",
		gameStyles.status.Render("Status: " + pet.GetStatusWithLabel(snap)),
	}

	if m.Message != "" && pet.TimeNow().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	helpText := "arrows to move • enter to select • s/f/w/p shortcuts • q to quit"
	if snap.Mood == pet.MoodDead {
		sections = append(sections, "",
			gameStyles.dead.Render(snap.Name+" has passed away..."),
			gameStyles.status.Render("Press 'y' to adopt a new pet"))
	}

	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		gameStyles.status.Render(helpText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) startView() string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		gameStyles.title.Render("🐾 Raising Sims 🐾"),
		gameStyles.art.Render(ArtFor(pet.DisplayAwake)),
		gameStyles.menuBox.Render("Press enter to start"),
		"",
		gameStyles.status.Render("q to quit"),
	)
}

func makeBar(value int) string {
	filled := value / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func renderStats(s pet.Snapshot) string {
	stats := []struct {
		name  string
		value int
	}{
		{"Happiness", s.Happiness},
		{"Energy", s.Energy},
		{"Hunger", s.Hunger},
		{"Hydration", s.Hydration},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-10s [%s] %3d%%", stat.name+":", makeBar(stat.value), stat.value))
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) renderMenu() string {
	var menuItems []string

	for i, choice := range menuChoices {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, gameStyles.menu.Render(fmt.Sprintf("%s %s", cursor, choice)))
	}

	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}
