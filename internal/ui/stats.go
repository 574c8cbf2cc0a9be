package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"raisingsims/internal/pet"
)

// StatsModel is a simple Bubble Tea model for displaying a fetched snapshot
type StatsModel struct {
	Snapshot pet.Snapshot
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	s := m.Snapshot
	sleeping := "No"
	if s.Sleeping {
		sleeping = "Yes"
	}

	var b strings.Builder
	b.WriteString("╔════════════════════════════════════╗\n")
	b.WriteString(fmt.Sprintf("║  🐾 %-30s ║\n", s.Name))
	b.WriteString("╠════════════════════════════════════╣\n")
	b.WriteString(fmt.Sprintf("║  Mood:      %-22s ║\n", s.Mood))
	b.WriteString(fmt.Sprintf("║  Showing:   %-22s ║\n", s.DisplayState))
	b.WriteString(fmt.Sprintf("║  Sleeping:  %-22s ║\n", sleeping))
	b.WriteString("║                                    ║\n")
	b.WriteString(fmt.Sprintf("║  Happiness: [%s] %3d%%    ║\n", makeBar(s.Happiness), s.Happiness))
	b.WriteString(fmt.Sprintf("║  Energy:    [%s] %3d%%    ║\n", makeBar(s.Energy), s.Energy))
	b.WriteString(fmt.Sprintf("║  Hunger:    [%s] %3d%%    ║\n", makeBar(s.Hunger), s.Hunger))
	b.WriteString(fmt.Sprintf("║  Hydration: [%s] %3d%%    ║\n", makeBar(s.Hydration), s.Hydration))
	b.WriteString("╚════════════════════════════════════╝\n")
	b.WriteString(fmt.Sprintf("\nStatus: %s\n", pet.GetStatusWithLabel(s)))
	b.WriteString("\nPress ESC, click, or any key to close...")

	return b.String()
}

// DisplayStats shows the stats display
func DisplayStats(s pet.Snapshot) error {
	program := tea.NewProgram(StatsModel{Snapshot: s}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running stats display: %w", err)
	}
	return nil
}
