package storage

import (
	"testing"
	"time"
)

func TestStorage(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	defer s.Close()

	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if prefs.Username != "Player" {
			t.Errorf("Expected username 'Player', got '%s'", prefs.Username)
		}
		if prefs.GameMode != ModeVsComputer {
			t.Errorf("Expected vs-computer mode by default")
		}
		if prefs.Difficulty != DifficultyMedium {
			t.Errorf("Expected medium difficulty")
		}
	})

	t.Run("FirstLaunch", func(t *testing.T) {
		first, err := s.IsFirstLaunch()
		if err != nil {
			t.Fatalf("IsFirstLaunch failed: %v", err)
		}
		if !first {
			t.Error("Fresh database should report first launch")
		}

		if err := s.MarkFirstLaunchComplete(); err != nil {
			t.Fatalf("MarkFirstLaunchComplete failed: %v", err)
		}

		first, err = s.IsFirstLaunch()
		if err != nil {
			t.Fatalf("IsFirstLaunch failed: %v", err)
		}
		if first {
			t.Error("First launch flag did not persist")
		}
	})

	t.Run("PreferencesRoundTrip", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if prefs.Username != "Player" {
			t.Errorf("Expected defaults before any save, got '%s'", prefs.Username)
		}

		prefs.Username = "Alice"
		prefs.GameMode = ModeTwoPlayer
		prefs.Difficulty = DifficultyHard
		if err := s.SavePreferences(prefs); err != nil {
			t.Fatalf("SavePreferences failed: %v", err)
		}

		loaded, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if loaded.Username != "Alice" || loaded.GameMode != ModeTwoPlayer || loaded.Difficulty != DifficultyHard {
			t.Errorf("Preferences did not round-trip: %+v", loaded)
		}
		if loaded.LastPlayed.IsZero() {
			t.Error("SavePreferences should stamp LastPlayed")
		}
	})

	t.Run("NewGameStats", func(t *testing.T) {
		stats := NewGameStats()
		if stats.GamesPlayed != 0 {
			t.Errorf("Expected 0 games played")
		}
		if stats.GetWinRate() != 0 {
			t.Errorf("Expected 0 win rate")
		}
	})

	t.Run("WinRate", func(t *testing.T) {
		stats := &GameStats{
			GamesPlayed: 10,
			Wins:        5,
			Losses:      5,
		}
		if rate := stats.GetWinRate(); rate != 50 {
			t.Errorf("Expected 50%% win rate, got %.2f%%", rate)
		}
	})

	t.Run("RecordGame", func(t *testing.T) {
		win := GameRecord{
			Won:        true,
			Mode:       ModeVsComputer,
			Difficulty: DifficultyHard,
			Duration:   3 * time.Minute,
		}
		if err := s.RecordGame(win); err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}
		if err := s.RecordGame(win); err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}

		loss := win
		loss.Won = false
		if err := s.RecordGame(loss); err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}

		stats, err := s.LoadStats()
		if err != nil {
			t.Fatalf("LoadStats failed: %v", err)
		}
		if stats.GamesPlayed != 3 || stats.Wins != 2 || stats.Losses != 1 {
			t.Errorf("Unexpected totals: %+v", stats)
		}
		if stats.WinsByDiff["hard"] != 2 {
			t.Errorf("Expected 2 hard wins, got %d", stats.WinsByDiff["hard"])
		}
		if stats.LongestWinStrk != 2 || stats.CurrentStreak != 0 {
			t.Errorf("Streaks wrong: longest=%d current=%d", stats.LongestWinStrk, stats.CurrentStreak)
		}
		if stats.TotalPlayTime != 9*time.Minute {
			t.Errorf("Expected 9m play time, got %v", stats.TotalPlayTime)
		}
	})

	t.Run("HotSeatCountsGamesOnly", func(t *testing.T) {
		before, err := s.LoadStats()
		if err != nil {
			t.Fatalf("LoadStats failed: %v", err)
		}

		rec := GameRecord{Won: true, Mode: ModeTwoPlayer, Duration: time.Minute}
		if err := s.RecordGame(rec); err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}

		after, err := s.LoadStats()
		if err != nil {
			t.Fatalf("LoadStats failed: %v", err)
		}
		if after.GamesPlayed != before.GamesPlayed+1 {
			t.Errorf("Hot-seat game not counted")
		}
		if after.Wins != before.Wins || after.Losses != before.Losses {
			t.Error("Hot-seat game must not touch win/loss totals")
		}
	})
}
