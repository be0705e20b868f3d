package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	entries := []SessionEntry{
		{PatternID: "classic", Generations: 120, PeakPopulation: 14, FinalPopulation: 9, Duration: 12},
		{PatternID: "classic", Generations: 40, PeakPopulation: 30, FinalPopulation: 0, Duration: 4},
		{PatternID: "glider", Generations: 400, PeakPopulation: 5, FinalPopulation: 5, Duration: 40},
	}
	for _, e := range entries {
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 sessions, got %d", len(recent))
	}
	// Newest first
	if recent[0].PatternID != "glider" {
		t.Errorf("Expected most recent session to be glider, got %q", recent[0].PatternID)
	}

	classic, err := store.SessionsForPattern("classic", 10)
	if err != nil {
		t.Fatalf("SessionsForPattern() failed: %v", err)
	}
	if len(classic) != 2 {
		t.Errorf("Expected 2 classic sessions, got %d", len(classic))
	}
	// Sorted by peak population descending
	if classic[0].PeakPopulation != 30 || classic[1].PeakPopulation != 14 {
		t.Errorf("Expected peaks [30, 14], got [%d, %d]",
			classic[0].PeakPopulation, classic[1].PeakPopulation)
	}
}

func TestPeakPopulation(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No sessions yet
	peak, err := store.PeakPopulation("classic")
	if err != nil {
		t.Fatalf("PeakPopulation() failed: %v", err)
	}
	if peak != 0 {
		t.Errorf("Expected peak 0 with no sessions, got %d", peak)
	}

	store.SaveSession(SessionEntry{PatternID: "classic", PeakPopulation: 44})
	store.SaveSession(SessionEntry{PatternID: "classic", PeakPopulation: 17})

	peak, err = store.PeakPopulation("classic")
	if err != nil {
		t.Fatalf("PeakPopulation() failed: %v", err)
	}
	if peak != 44 {
		t.Errorf("Expected peak 44, got %d", peak)
	}
}

func TestClearSessions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveSession(SessionEntry{PatternID: "classic", PeakPopulation: 5})
	store.SaveSession(SessionEntry{PatternID: "glider", PeakPopulation: 5})

	if err := store.ClearSessions("classic"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].PatternID != "glider" {
		t.Errorf("Expected only the glider session to remain, got %+v", recent)
	}
}
