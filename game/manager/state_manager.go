package manager

import (
	"context"
	"log"
	"time"

	"snake-arcade/stats"

	"github.com/google/uuid"
)

// recordTimeout bounds a single history write at the end of a round.
const recordTimeout = 2 * time.Second

// Recorder persists finished rounds. The sqlite store implements it.
type Recorder interface {
	SaveRound(ctx context.Context, rec stats.GameRecord) error
	Rounds(ctx context.Context, limit int) ([]stats.GameRecord, error)
	HighScore(ctx context.Context) (int, error)
}

// StateManager keeps the bookkeeping that outlives a single round:
// round ids, the high score and the round history.
type StateManager struct {
	stats      *stats.GameStats
	recorder   Recorder
	highScore  int
	roundID    string
	roundStart time.Time
	now        func() time.Time
}

// NewStateManager wires the history sink. recorder may be nil.
func NewStateManager(gameStats *stats.GameStats, recorder Recorder) *StateManager {
	if gameStats == nil {
		gameStats = stats.NewGameStats()
	}
	return &StateManager{
		stats:    gameStats,
		recorder: recorder,
		now:      time.Now,
	}
}

// LoadHistory seeds the in-memory stats from the most recent rounds and the
// high score from the whole recorded history.
func (sm *StateManager) LoadHistory(ctx context.Context) error {
	if sm.recorder == nil {
		return nil
	}
	best, err := sm.recorder.HighScore(ctx)
	if err != nil {
		return err
	}
	if best > sm.highScore {
		sm.highScore = best
	}
	rounds, err := sm.recorder.Rounds(ctx, stats.MaxRecords)
	if err != nil {
		return err
	}
	for _, rec := range rounds {
		sm.stats.Add(rec)
		if rec.Score > sm.highScore {
			sm.highScore = rec.Score
		}
	}
	return nil
}

// BeginRound opens a new round and returns its id.
func (sm *StateManager) BeginRound() string {
	sm.roundID = uuid.New().String()
	sm.roundStart = sm.now()
	return sm.roundID
}

func (sm *StateManager) RoundID() string {
	return sm.roundID
}

// UpdateScore raises the high score while a round is still running.
func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

// EndRound closes the current round and records it.
func (sm *StateManager) EndRound(score, length int, outcome string) stats.GameRecord {
	sm.UpdateScore(score)
	rec := stats.GameRecord{
		ID:        sm.roundID,
		StartTime: sm.roundStart,
		EndTime:   sm.now(),
		Score:     score,
		Length:    length,
		Outcome:   outcome,
	}
	sm.stats.Add(rec)

	if sm.recorder != nil {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := sm.recorder.SaveRound(ctx, rec); err != nil {
			log.Printf("record round %s: %v", rec.ID, err)
		}
	}
	return rec
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) Stats() *stats.GameStats {
	return sm.stats
}
