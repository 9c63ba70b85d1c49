package audio

import (
	"sync"
	"time"

	"snake-arcade/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays the game's sound effects through one mixer on the
// speaker. Until Initialize succeeds every Play call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) play(tones []Tone) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(Render(tones, sampleRate))
	speaker.Unlock()
}

func (sm *SoundManager) PlayEat()      { sm.play(eatTones) }
func (sm *SoundManager) PlayGameOver() { sm.play(gameOverTones) }
func (sm *SoundManager) PlayWin()      { sm.play(winTones) }

// OnOutcome implements game.Observer.
func (sm *SoundManager) OnOutcome(out game.Outcome, _ game.State) {
	switch out.Kind {
	case game.OutcomeAte:
		sm.PlayEat()
	case game.OutcomeCollided:
		sm.PlayGameOver()
	case game.OutcomeWon:
		sm.PlayWin()
	}
}
