package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game, player string
		score        int
	}{
		{"ninja", "kai", 100},
		{"ninja", "Anonymous", 50},
		{"ninja", "mei", 200},
		{"other", "kai", 500},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.player, r.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("ninja", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct {
		player string
		score  int
	}{{"mei", 200}, {"kai", 100}, {"Anonymous", 50}}
	for i, w := range want {
		if scores[i].Player != w.player || scores[i].Score != w.score {
			t.Errorf("scores[%d] = %s/%d, expected %s/%d", i, scores[i].Player, scores[i].Score, w.player, w.score)
		}
		if scores[i].GameID != "ninja" {
			t.Errorf("scores[%d] game = %q", i, scores[i].GameID)
		}
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreTopScoresTiesKeepSaveOrder(t *testing.T) {
	store := openTestStore(t)

	for _, p := range []string{"first", "second", "third"} {
		store.SaveScore("ninja", p, 10)
	}

	scores, err := store.TopScores("ninja", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	for i, p := range []string{"first", "second", "third"} {
		if scores[i].Player != p {
			t.Errorf("scores[%d].Player = %q, expected %q", i, scores[i].Player, p)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", "p", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10.
	all, _ := store.TopScores("test", 0)
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("ninja")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("ninja", "a", 100)
	store.SaveScore("ninja", "b", 300)
	store.SaveScore("ninja", "c", 200)

	high, err = store.HighScore("ninja")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("ninja", "a", 100)
	store.SaveScore("ninja", "b", 200)
	store.SaveScore("other", "c", 300)

	n, err := store.ClearScores("ninja")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 rows cleared, got %d", n)
	}

	ninjaScores, _ := store.TopScores("ninja", 10)
	if len(ninjaScores) != 0 {
		t.Errorf("Expected 0 ninja scores after clear, got %d", len(ninjaScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other game scores should not be affected by clearing ninja")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore("test", "p", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected highest first, got %d", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("ninja")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveScore("ninja", "a", 10)
	store.SaveScore("ninja", "b", 30)
	store.SaveScore("other", "c", 5)

	stats, err := store.GetGameStats("ninja")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.AvgScore != 20 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("expected LastPlayed to be set")
	}

}

func TestStoreMigratesLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	// A database from before runs carried a player name.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('ninja', 42);
	`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy database failed: %v", err)
	}

	if _, err := store.SaveScore("ninja", "kai", 7); err != nil {
		t.Fatalf("SaveScore() after migration failed: %v", err)
	}
	scores, err := store.TopScores("ninja", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 42 || scores[0].Player != "" || scores[1].Player != "kai" {
		t.Errorf("unexpected rows after migration: %+v", scores)
	}

	// Reopening must not try to add the column twice.
	store.Close()
	again, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	again.Close()
}

func TestStoreNestedPath(t *testing.T) {
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

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~/.ninja/scores.db", filepath.Join(home, ".ninja", "scores.db")},
		{"/abs/path.db", "/abs/path.db"},
		{"rel.db", "rel.db"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
