package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 250, 50} {
		if _, err := store.SaveRun(score); err != nil {
			t.Fatalf("SaveRun(%d) failed: %v", score, err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}

	// Ordered by score descending
	want := []int{250, 100, 50}
	for i, entry := range runs {
		if entry.Score != want[i] {
			t.Errorf("rank %d: expected score %d, got %d", i+1, want[i], entry.Score)
		}
		if entry.ID == 0 {
			t.Errorf("rank %d: entry should carry its row ID", i+1)
		}
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(i * 10); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.TopRuns(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 5 {
		t.Errorf("expected 5 runs, got %d", len(runs))
	}
}

func TestBestScoreEmptyDatabase(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore on empty database failed: %v", err)
	}
	if best != 0 {
		t.Errorf("empty database should report best 0, got %d", best)
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{30, 90, 60} {
		if _, err := store.SaveRun(score); err != nil {
			t.Fatal(err)
		}
	}

	best, err := store.BestScore()
	if err != nil {
		t.Fatal(err)
	}
	if best != 90 {
		t.Errorf("expected best 90, got %d", best)
	}
}

func TestScoreSinkRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record(77); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if best != 77 {
		t.Errorf("expected best 77, got %d", best)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(10); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 20, 30} {
		if _, err := store.SaveRun(score); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.RunCount != 3 {
		t.Errorf("expected 3 runs, got %d", stats.RunCount)
	}
	if stats.BestScore != 30 {
		t.Errorf("expected best 30, got %d", stats.BestScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("expected average 20, got %f", stats.AvgScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("expected total 60, got %d", stats.TotalScore)
	}
}

func TestStatsEmptyDatabase(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats on empty database failed: %v", err)
	}
	if stats.RunCount != 0 || stats.BestScore != 0 {
		t.Errorf("empty database should yield zero stats, got %+v", stats)
	}
}
