package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{3, 1, 7} {
		if _, err := store.SaveScore("ice-easy", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("ice-hard", 2); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("ice-easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 7 || scores[1].Score != 3 || scores[2].Score != 1 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	hard, _ := store.TopScores("ice-hard", 10)
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hard))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", i+1)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 || scores[0].Score != 5 || scores[2].Score != 3 {
		t.Errorf("unexpected top 3: %v", scores)
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("ice-easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for an unplayed puzzle, got %d", high)
	}

	store.SaveScore("ice-easy", 4)
	store.SaveScore("ice-easy", 9)
	store.SaveScore("ice-medium", 2)

	if high, _ = store.HighScore("ice-easy"); high != 9 {
		t.Errorf("Expected high score 9, got %d", high)
	}

	if err := store.ClearScores("ice-easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if left, _ := store.TopScores("ice-easy", 10); len(left) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(left))
	}
	if other, _ := store.TopScores("ice-medium", 10); len(other) != 1 {
		t.Error("Clearing one puzzle should not affect another")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("ice-easy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for unplayed puzzle: %+v", empty)
	}

	store.SaveScore("ice-easy", 2)
	store.SaveScore("ice-easy", 4)
	store.SaveScore("ice-hard", 1)

	stats, err := store.GetGameStats("ice-easy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 4 || stats.TotalSolved != 6 || stats.AvgScore != 3 {
		t.Errorf("unexpected stats %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["ice-hard"].HighScore != 1 {
		t.Errorf("unexpected all stats %v", all)
	}
}

func testLayout() puzzle.Layout {
	b := puzzle.New(5, 5, puzzle.P(0, 1), puzzle.P(4, 3), []puzzle.Point{puzzle.P(2, 2)})
	l := b.Layout()
	l.Solution = puzzle.Solve(b, 0).String()
	return l
}

func TestStoreLevels(t *testing.T) {
	store := openTestStore(t)
	layout := testLayout()

	if _, err := store.SaveLevel("first", "easy", layout); err != nil {
		t.Fatalf("SaveLevel() failed: %v", err)
	}
	if _, err := store.SaveLevel("second", "hard", layout); err != nil {
		t.Fatalf("SaveLevel() failed: %v", err)
	}

	lvl, err := store.GetLevel("first")
	if err != nil {
		t.Fatalf("GetLevel() failed: %v", err)
	}
	if lvl.Difficulty != "easy" || lvl.MinMoves != len(layout.Solution) {
		t.Errorf("unexpected level %+v", lvl)
	}
	if lvl.Layout.Start != layout.Start || lvl.Layout.End != layout.End || len(lvl.Layout.Rocks) != 1 {
		t.Errorf("layout not preserved: %+v", lvl.Layout)
	}
	if _, err := lvl.Layout.Board(); err != nil {
		t.Errorf("stored layout is not playable: %v", err)
	}

	all, err := store.ListLevels("")
	if err != nil {
		t.Fatalf("ListLevels() failed: %v", err)
	}
	if len(all) != 2 || all[0].Name != "first" {
		t.Errorf("ListLevels() = %v", all)
	}

	hard, _ := store.ListLevels("hard")
	if len(hard) != 1 || hard[0].Name != "second" {
		t.Errorf("ListLevels(hard) = %v", hard)
	}
}

func TestStoreSaveLevelReplaces(t *testing.T) {
	store := openTestStore(t)
	layout := testLayout()

	store.SaveLevel("same", "easy", layout)
	if _, err := store.SaveLevel("same", "medium", layout); err != nil {
		t.Fatalf("SaveLevel() overwrite failed: %v", err)
	}

	all, _ := store.ListLevels("")
	if len(all) != 1 || all[0].Difficulty != "medium" {
		t.Errorf("expected one replaced level, got %v", all)
	}
}

func TestStoreLevelErrors(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.GetLevel("missing"); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("GetLevel(missing) = %v, expected ErrLevelNotFound", err)
	}
	if err := store.DeleteLevel("missing"); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("DeleteLevel(missing) = %v, expected ErrLevelNotFound", err)
	}

	bad := testLayout()
	bad.Start = puzzle.P(0, 0)
	bad.Grid = nil
	if _, err := store.SaveLevel("bad", "", bad); !errors.Is(err, puzzle.ErrLayoutEndpoint) {
		t.Errorf("SaveLevel(bad) = %v, expected ErrLayoutEndpoint", err)
	}

	store.SaveLevel("gone", "", testLayout())
	if err := store.DeleteLevel("gone"); err != nil {
		t.Fatalf("DeleteLevel() failed: %v", err)
	}
	if _, err := store.GetLevel("gone"); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("deleted level still present: %v", err)
	}
}
