package pet

import (
	"sync"
	"time"
)

// Snapshot is a read-only copy of the pet for renderers on other goroutines
type Snapshot struct {
	Name            string       `json:"name"`
	Happiness       int          `json:"happiness"`
	Energy          int          `json:"energy"`
	Hunger          int          `json:"hunger"`
	Hydration       int          `json:"hydration"`
	Sleeping        bool         `json:"sleeping"`
	Mood            Mood         `json:"mood"`
	DisplayState    DisplayState `json:"display_state"`
	Asset           string       `json:"asset"`
	LastInteraction time.Time    `json:"last_interaction"`
	TakenAt         time.Time    `json:"taken_at"`
}

// Snapshot copies the observable state of the pet
func (p *Pet) Snapshot() Snapshot {
	display := p.DisplayState()
	return Snapshot{
		Name:            p.Name,
		Happiness:       p.Happiness(),
		Energy:          p.Energy(),
		Hunger:          p.Hunger(),
		Hydration:       p.Hydration(),
		Sleeping:        p.sleeping,
		Mood:            p.mood,
		DisplayState:    display,
		Asset:           display.AssetName(),
		LastInteraction: p.lastInteraction,
		TakenAt:         TimeNow(),
	}
}

// Board holds the latest published snapshot. The pet's owner publishes,
// anyone may read.
type Board struct {
	mu        sync.RWMutex
	snap      Snapshot
	published bool
}

// NewBoard returns a board with nothing published yet
func NewBoard() *Board {
	return &Board{}
}

// Publish replaces the current snapshot
func (b *Board) Publish(s Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap = s
	b.published = true
}

// Latest returns the current snapshot and whether anything was published yet
func (b *Board) Latest() (Snapshot, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap, b.published
}
