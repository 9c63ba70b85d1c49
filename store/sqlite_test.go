package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/stats"
)

var _ manager.Recorder = (*SQLiteStore)(nil)

func openTemp(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndListRounds(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, score := range []int{30, 80, 10} {
		start := base.Add(time.Duration(i) * time.Minute)
		rec := stats.GameRecord{
			StartTime: start,
			EndTime:   start.Add(20 * time.Second),
			Score:     score,
			Length:    score/10 + 1,
			Outcome:   "wall",
		}
		if err := s.SaveRound(ctx, rec); err != nil {
			t.Fatalf("SaveRound: %v", err)
		}
	}

	rounds, err := s.Rounds(ctx, 2)
	if err != nil {
		t.Fatalf("Rounds: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("got %d rounds, want 2", len(rounds))
	}
	if rounds[0].Score != 10 || rounds[1].Score != 80 {
		t.Fatalf("rounds not most-recent first: %+v", rounds)
	}
	if rounds[0].ID == "" {
		t.Fatal("round saved without id")
	}
	if d := rounds[0].Duration(); d != 20*time.Second {
		t.Fatalf("duration = %s, want 20s", d)
	}

	best, err := s.HighScore(ctx)
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if best != 80 {
		t.Fatalf("high score = %d, want 80", best)
	}
}

func TestHighScoreEmpty(t *testing.T) {
	s := openTemp(t)
	best, err := s.HighScore(context.Background())
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if best != 0 {
		t.Fatalf("high score = %d on empty table", best)
	}
}

func TestHistorySurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sm := manager.NewStateManager(stats.NewGameStats(), s)
	sm.BeginRound()
	sm.UpdateScore(50)
	sm.EndRound(50, 6, "self")
	s.Close()

	s, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	sm = manager.NewStateManager(stats.NewGameStats(), s)
	if err := sm.LoadHistory(ctx); err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if sm.GetHighScore() != 50 {
		t.Fatalf("high score = %d after reopen, want 50", sm.GetHighScore())
	}
	if sm.Stats().GetGamesPlayed() != 1 {
		t.Fatalf("games played = %d, want 1", sm.Stats().GetGamesPlayed())
	}
}

func TestLoadHistoryFindsOldBestScore(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	save := func(i, score int) {
		start := base.Add(time.Duration(i) * time.Minute)
		rec := stats.GameRecord{StartTime: start, EndTime: start.Add(time.Second), Score: score, Length: 2, Outcome: "wall"}
		if err := s.SaveRound(ctx, rec); err != nil {
			t.Fatalf("SaveRound: %v", err)
		}
	}
	save(0, 990)
	for i := 1; i <= stats.MaxRecords; i++ {
		save(i, 10)
	}

	sm := manager.NewStateManager(stats.NewGameStats(), s)
	if err := sm.LoadHistory(ctx); err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if sm.GetHighScore() != 990 {
		t.Fatalf("high score = %d, want 990 from outside the recent window", sm.GetHighScore())
	}
	if sm.Stats().GetMaxScore() != 10 {
		t.Fatalf("recent stats max = %d, want 10", sm.Stats().GetMaxScore())
	}
}
