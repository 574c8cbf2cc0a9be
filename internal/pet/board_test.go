package pet

import (
	"sync"
	"testing"
	"time"
)

func TestSnapshot(t *testing.T) {
	p, _ := newTestPet(t, 12)
	p.hunger = 42.7

	p.Feed(FoodWater)
	snap := p.Snapshot()

	if snap.Name != "Test Pet" {
		t.Errorf("Name = %q, want %q", snap.Name, "Test Pet")
	}
	if snap.Hunger != 42 {
		t.Errorf("Hunger = %d, want 42", snap.Hunger)
	}
	if snap.DisplayState != DisplayDrinking {
		t.Errorf("DisplayState = %s, want Drinking", snap.DisplayState)
	}
	if snap.Asset != "pet_drinking" {
		t.Errorf("Asset = %q, want %q", snap.Asset, "pet_drinking")
	}
	if !snap.TakenAt.Equal(atHour(12)) {
		t.Errorf("TakenAt = %v, want %v", snap.TakenAt, atHour(12))
	}
}

func TestBoard(t *testing.T) {
	b := NewBoard()
	if _, ok := b.Latest(); ok {
		t.Error("Empty board should report nothing published")
	}

	b.Publish(Snapshot{Name: "Mochi", Hunger: 80})
	snap, ok := b.Latest()
	if !ok {
		t.Fatal("Expected published snapshot")
	}
	if snap.Name != "Mochi" || snap.Hunger != 80 {
		t.Errorf("Latest() = %+v", snap)
	}
}

func TestBoardConcurrentReaders(t *testing.T) {
	mockTimeNow(t, atHour(12))
	p := NewPet("Test Pet", time.UTC)
	b := NewBoard()
	b.Publish(p.Snapshot())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				snap, _ := b.Latest()
				if snap.Hunger < MinStat || snap.Hunger > MaxStat {
					t.Errorf("Hunger out of range: %d", snap.Hunger)
					return
				}
			}
		}()
	}

	now := atHour(12)
	for i := 0; i < 500; i++ {
		now = now.Add(TickInterval)
		p.Tick(now)
		b.Publish(p.Snapshot())
	}
	wg.Wait()
}
