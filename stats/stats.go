package stats

import (
	"sort"
	"sync"
	"time"
)

// MaxRecords caps the in-memory history; older rounds are dropped first.
const MaxRecords = 200

// GameRecord is one finished round.
type GameRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
	Outcome   string    `json:"outcome"`
}

// Duration is the wall-clock length of the round.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// GameStats collects finished rounds and answers aggregate queries over them.
type GameStats struct {
	games []GameRecord
	mutex sync.RWMutex
}

func NewGameStats() *GameStats {
	return &GameStats{
		games: make([]GameRecord, 0),
	}
}

// Add records a complete round, keeping the history in start-time order.
func (s *GameStats) Add(rec GameRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.games = append(s.games, rec)
	sort.SliceStable(s.games, func(i, j int) bool {
		return s.games[i].StartTime.Before(s.games[j].StartTime)
	})
	if over := len(s.games) - MaxRecords; over > 0 {
		s.games = append(s.games[:0], s.games[over:]...)
	}
}

// GetStats returns a copy of the recorded rounds, oldest first.
func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.games))
	copy(out, s.games)
	return out
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.games)
}

func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	total := 0
	for _, game := range s.games {
		total += game.Score
	}
	return float64(total) / float64(len(s.games))
}

func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, game := range s.games {
		if game.Score > maxScore {
			maxScore = game.Score
		}
	}
	return maxScore
}

// GetAverageDuration returns the mean round length in seconds.
func (s *GameStats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	var total float64
	for _, game := range s.games {
		total += game.Duration().Seconds()
	}
	return total / float64(len(s.games))
}
