package storage

import (
	"testing"

	"github.com/vovakirdan/tui-supaplex/internal/core"
)

func saveResults(t *testing.T, store *Store, results ...core.LevelResult) {
	t.Helper()
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%+v) failed: %v", r, err)
		}
	}
}

func TestLevelResults(t *testing.T) {
	store := openTest(t)
	saveResults(t, store,
		core.LevelResult{LevelID: "01", LevelName: "Warm Up", Status: "died", Ticks: 120},
		core.LevelResult{LevelID: "01", LevelName: "Warm Up", Status: "finished", Ticks: 300, RedDisks: 2},
		core.LevelResult{LevelID: "02", LevelName: "Rolling", Status: "died", Ticks: 40},
	)

	all, err := store.LevelResults("", 10)
	if err != nil {
		t.Fatalf("LevelResults() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, expected 3", len(all))
	}
	if all[0].LevelID != "02" {
		t.Errorf("newest result = %s, expected 02", all[0].LevelID)
	}

	first, err := store.LevelResults("01", 10)
	if err != nil {
		t.Fatalf("LevelResults(01) failed: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("len(first) = %d, expected 2", len(first))
	}
	got := first[0]
	if got.Status != "finished" || got.Ticks != 300 || got.RedDisks != 2 || got.LevelName != "Warm Up" {
		t.Errorf("first[0] = %+v, expected the finished attempt", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}

	limited, err := store.LevelResults("", 1)
	if err != nil {
		t.Fatalf("LevelResults(limit 1) failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("len(limited) = %d, expected 1", len(limited))
	}
}

func TestBestResult(t *testing.T) {
	store := openTest(t)

	best, err := store.BestResult("01")
	if err != nil {
		t.Fatalf("BestResult() failed: %v", err)
	}
	if best != nil {
		t.Errorf("BestResult() = %+v, expected nil with no attempts", best)
	}

	saveResults(t, store,
		core.LevelResult{LevelID: "01", LevelName: "Warm Up", Status: "finished", Ticks: 500},
		core.LevelResult{LevelID: "01", LevelName: "Warm Up", Status: "died", Ticks: 10},
		core.LevelResult{LevelID: "01", LevelName: "Warm Up", Status: "finished", Ticks: 320},
		core.LevelResult{LevelID: "02", LevelName: "Rolling", Status: "finished", Ticks: 90},
	)

	best, err = store.BestResult("01")
	if err != nil {
		t.Fatalf("BestResult() failed: %v", err)
	}
	if best == nil || best.Ticks != 320 || best.Status != "finished" {
		t.Errorf("BestResult(01) = %+v, expected the 320 tick finish", best)
	}

	saveResults(t, store, core.LevelResult{LevelID: "03", LevelName: "Trap", Status: "died", Ticks: 5})
	best, err = store.BestResult("03")
	if err != nil {
		t.Fatalf("BestResult() failed: %v", err)
	}
	if best != nil {
		t.Errorf("BestResult(03) = %+v, expected nil for a level never finished", best)
	}
}

func TestCompletedLevels(t *testing.T) {
	store := openTest(t)

	ids, err := store.CompletedLevels()
	if err != nil {
		t.Fatalf("CompletedLevels() failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("CompletedLevels() = %v, expected none", ids)
	}

	saveResults(t, store,
		core.LevelResult{LevelID: "03", LevelName: "Trap", Status: "finished", Ticks: 10},
		core.LevelResult{LevelID: "01", LevelName: "Warm Up", Status: "finished", Ticks: 10},
		core.LevelResult{LevelID: "01", LevelName: "Warm Up", Status: "finished", Ticks: 8},
		core.LevelResult{LevelID: "02", LevelName: "Rolling", Status: "died", Ticks: 3},
	)

	ids, err = store.CompletedLevels()
	if err != nil {
		t.Fatalf("CompletedLevels() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "01" || ids[1] != "03" {
		t.Errorf("CompletedLevels() = %v, expected [01 03]", ids)
	}
}

func TestClearResults(t *testing.T) {
	store := openTest(t)
	saveResults(t, store,
		core.LevelResult{LevelID: "01", LevelName: "Warm Up", Status: "finished", Ticks: 10},
		core.LevelResult{LevelID: "02", LevelName: "Rolling", Status: "died", Ticks: 3},
	)

	if err := store.ClearResults("01"); err != nil {
		t.Fatalf("ClearResults(01) failed: %v", err)
	}
	all, _ := store.LevelResults("", 10)
	if len(all) != 1 || all[0].LevelID != "02" {
		t.Errorf("results after clearing 01 = %+v, expected only 02", all)
	}

	if err := store.ClearResults(""); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	all, _ = store.LevelResults("", 10)
	if len(all) != 0 {
		t.Errorf("results after clearing all = %d, expected 0", len(all))
	}
}
