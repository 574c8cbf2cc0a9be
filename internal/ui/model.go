package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"raisingsims/internal/pet"
)

// Menu entries in display order
var menuChoices = []string{"Snack", "Pet Food", "Water", "Play", "Quit"}

const (
	choiceSnack = iota
	choicePetFood
	choiceWater
	choicePlay
	choiceQuit
)

// Model is the bubbletea program that owns the pet. Every mutation of
// the pet happens inside Update, so ticks, actions and reversions are
// serialized by the program's message loop.
type Model struct {
	Pet            *pet.Pet
	Board          *pet.Board
	Location       *time.Location
	Started        bool
	Choice         int
	Quitting       bool
	Message        string
	MessageExpires time.Time
}

type tickMsg time.Time

// revertMsg ends the display override of one action
type revertMsg struct {
	id uuid.UUID
}

// NewModel creates a game model around an existing pet. Nothing is
// published to the board until the player starts the game.
func NewModel(p *pet.Pet, board *pet.Board, loc *time.Location) Model {
	return Model{
		Pet:      p,
		Board:    board,
		Location: loc,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(pet.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func revertAfter(action pet.Action) tea.Cmd {
	return tea.Tick(pet.RevertDelay, func(time.Time) tea.Msg {
		return revertMsg{id: action.ID}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		}

		if !m.Started {
			switch msg.String() {
			case "enter", " ":
				m.Started = true
				log.Printf("Game started with %s", m.Pet.Name)
				m.publish()
				return m, tick()
			}
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.Choice > 0 {
				m.Choice--
			}
		case "down", "j":
			if m.Choice < len(menuChoices)-1 {
				m.Choice++
			}
		case "s":
			return m, m.feed(pet.FoodSnack)
		case "f":
			return m, m.feed(pet.FoodPetFood)
		case "w":
			return m, m.feed(pet.FoodWater)
		case "p":
			return m, m.play()
		case "y":
			if m.Pet.Mood() == pet.MoodDead {
				m.adopt()
			}
		case "enter", " ":
			switch m.Choice {
			case choiceSnack:
				return m, m.feed(pet.FoodSnack)
			case choicePetFood:
				return m, m.feed(pet.FoodPetFood)
			case choiceWater:
				return m, m.feed(pet.FoodWater)
			case choicePlay:
				return m, m.play()
			case choiceQuit:
				m.Quitting = true
				return m, tea.Quit
			}
		}

	case tickMsg:
		m.Pet.Tick(time.Time(msg))
		m.publish()
		return m, tick()

	case revertMsg:
		if m.Pet.Revert(msg.id) {
			m.publish()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) publish() {
	if m.Board != nil {
		m.Board.Publish(m.Pet.Snapshot())
	}
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = pet.TimeNow().Add(pet.RevertDelay)
}

func (m *Model) feed(food pet.FoodType) tea.Cmd {
	action, ok := m.Pet.Feed(food)
	m.publish()
	if !ok {
		return nil
	}

	switch food {
	case pet.FoodWater:
		m.setMessage("💧 Gulp gulp!")
	case pet.FoodPetFood:
		m.setMessage("🍖 Yum!")
	default:
		m.setMessage("🍪 Crunch!")
	}
	return revertAfter(action)
}

func (m *Model) play() tea.Cmd {
	action, ok := m.Pet.Play()
	m.publish()
	if !ok {
		m.setMessage("😴 Shh... " + m.Pet.Name + " is sleeping")
		return nil
	}
	m.setMessage("🎾 Wheee!")
	return revertAfter(action)
}

// adopt replaces a dead pet with a fresh one
func (m *Model) adopt() {
	name := m.Pet.Name
	m.Pet = pet.NewPet(name, m.Location)
	m.Choice = 0
	m.setMessage("🐣 Welcome back, " + name + "!")
	m.publish()
}
