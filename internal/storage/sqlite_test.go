package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/term2048/internal/game"
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

func mustSave(t *testing.T, store *Store, rec GameRecord) string {
	t.Helper()
	id, err := store.SaveGame(rec)
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	return id
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

	id := mustSave(t, store, GameRecord{
		Mode:     ModeConsole,
		Player:   "alice",
		Score:    1320,
		MaxTile:  128,
		Moves:    140,
		Duration: 95 * time.Second,
	})
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveGame() id %q is not a UUID: %v", id, err)
	}

	rec, err := store.GameByID(id)
	if err != nil {
		t.Fatalf("GameByID() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("GameByID() returned nil for a saved game")
	}
	if rec.Player != "alice" || rec.Score != 1320 || rec.MaxTile != 128 || rec.Moves != 140 {
		t.Errorf("GameByID() = %+v", rec)
	}
	if rec.Duration != 95*time.Second {
		t.Errorf("Duration = %v, want 95s", rec.Duration)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	missing, err := store.GameByID(uuid.NewString())
	if err != nil {
		t.Fatalf("GameByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("GameByID() of unknown id = %+v, want nil", missing)
	}
}

func TestStoreSaveRequiresMode(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveGame(GameRecord{Score: 10}); err == nil {
		t.Error("SaveGame() without mode should fail")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		mustSave(t, store, GameRecord{Mode: ModeConsole, Score: score})
	}
	mustSave(t, store, GameRecord{Mode: ModeTUI, Score: 500})

	scores, err := store.TopScores(ModeConsole, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 2 || all[0].Score != 500 || all[1].Score != 200 {
		t.Errorf("TopScores(all, 2) = %v", all)
	}
}

func TestStoreRecentGames(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range 3 {
		mustSave(t, store, GameRecord{
			Mode:      ModeAutoplay,
			Score:     i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	recent, err := store.RecentGames(2)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(recent))
	}
	if recent[0].Score != 2 || recent[1].Score != 1 {
		t.Errorf("RecentGames() order = %v", recent)
	}
	if !recent[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("CreatedAt = %v, want %v", recent[0].CreatedAt, base.Add(2*time.Minute))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(ModeConsole)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		mustSave(t, store, GameRecord{Mode: ModeConsole, Score: score})
	}

	high, err = store.HighScore(ModeConsole)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	mustSave(t, store, GameRecord{Mode: ModeSSH, Score: 500})
	if high, _ = store.HighScore(ModeConsole); high != 300 {
		t.Errorf("HighScore(console) = %d, want 300", high)
	}
	if high, _ = store.HighScore(""); high != 500 {
		t.Errorf("HighScore(all) = %d, want 500", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, GameRecord{Mode: ModeConsole, Score: 100})
	mustSave(t, store, GameRecord{Mode: ModeConsole, Score: 200})
	mustSave(t, store, GameRecord{Mode: ModeSSH, Score: 300})

	n, err := store.ClearScores(ModeConsole)
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearScores() removed %d, want 2", n)
	}

	if scores, _ := store.TopScores(ModeConsole, 10); len(scores) != 0 {
		t.Errorf("Expected 0 console scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores(ModeSSH, 10); len(scores) != 1 {
		t.Error("SSH scores should not be affected by clearing console")
	}

	if n, _ := store.ClearScores(""); n != 1 {
		t.Errorf("ClearScores(all) removed %d, want 1", n)
	}
}

func TestStoreModes(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, GameRecord{Mode: ModeTUI, Score: 1})
	mustSave(t, store, GameRecord{Mode: ModeConsole, Score: 2})
	mustSave(t, store, GameRecord{Mode: ModeTUI, Score: 3})

	modes, err := store.Modes()
	if err != nil {
		t.Fatalf("Modes() failed: %v", err)
	}
	if len(modes) != 2 || modes[0] != ModeConsole || modes[1] != ModeTUI {
		t.Errorf("Modes() = %v, want [console tui]", modes)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, GameRecord{Mode: ModeAutoplay, Score: 100, MaxTile: 64})
	mustSave(t, store, GameRecord{Mode: ModeAutoplay, Score: 300, MaxTile: 2048, Won: true})
	mustSave(t, store, GameRecord{Mode: ModeConsole, Score: 40, MaxTile: 16})

	stats, err := store.GetGameStats(ModeAutoplay)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.BestTile != 2048 || stats.Wins != 1 {
		t.Errorf("BestTile = %d, Wins = %d", stats.BestTile, stats.Wins)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats(ModeSSH)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetGameStats(empty) = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all[ModeConsole].HighScore != 40 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}

func TestRecordFromSnapshot(t *testing.T) {
	g := game.NewFromGrid(game.DefaultConfig(), game.GridFromRows([4][4]int{{2048, 4}}), 20000)
	rec := RecordFromSnapshot(ModeTUI, "bob", g.Snapshot(), time.Minute)

	if rec.Score != 20000 || rec.MaxTile != 2048 || !rec.Won {
		t.Errorf("RecordFromSnapshot() = %+v", rec)
	}
	if rec.Mode != ModeTUI || rec.Player != "bob" || rec.Duration != time.Minute {
		t.Errorf("RecordFromSnapshot() = %+v", rec)
	}
}

func TestStoreExpandNestedPath(t *testing.T) {
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
