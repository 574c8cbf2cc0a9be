package status_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"raisingsims/internal/pet"
	"raisingsims/internal/status"
)

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(status.NewRouter(pet.NewBoard()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("GET /health = %d %q", resp.StatusCode, body)
	}
}

func TestPetNotStarted(t *testing.T) {
	ts := httptest.NewServer(status.NewRouter(pet.NewBoard()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/pet")
	if err != nil {
		t.Fatalf("GET /pet: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503 before publish, got %d", resp.StatusCode)
	}

	_, err = status.NewClient(ts.URL, time.Second).Fetch(context.Background())
	if err == nil {
		t.Error("Expected client error before publish")
	}
}

func TestPetSnapshot(t *testing.T) {
	board := pet.NewBoard()
	p := pet.NewPet("Mochi", time.UTC)
	p.Feed(pet.FoodWater)
	board.Publish(p.Snapshot())

	ts := httptest.NewServer(status.NewRouter(board))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/pet")
	if err != nil {
		t.Fatalf("GET /pet: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if raw["display_state"] != "Drinking" || raw["asset"] != "pet_drinking" {
		t.Errorf("unexpected body: %v", raw)
	}
	if raw["mood"] != "Happy" {
		t.Errorf("mood = %v, want Happy", raw["mood"])
	}

	snap, err := status.NewClient(ts.URL+"/", time.Second).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if snap.Name != "Mochi" || snap.DisplayState != pet.DisplayDrinking || snap.Hydration != 100 {
		t.Errorf("Fetch() = %+v", snap)
	}
}

func TestReadOnly(t *testing.T) {
	ts := httptest.NewServer(status.NewRouter(pet.NewBoard()))
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/pet", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /pet: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
}

func TestStartAndShutdown(t *testing.T) {
	board := pet.NewBoard()
	board.Publish(pet.NewPet("Mochi", time.UTC).Snapshot())

	srv, err := status.Start("127.0.0.1:0", board)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	snap, err := status.NewClient("http://"+srv.Addr(), time.Second).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if snap.Name != "Mochi" {
		t.Errorf("Name = %q, want Mochi", snap.Name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
