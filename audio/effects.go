package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
)

// at evaluates one cycle of w at phase in [0, 1).
func (w Wave) at(phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Fade-in and fade-out lengths as fractions of a tone.
const (
	attackShare  = 0.1
	releaseShare = 1.0 / 3
)

// Tone is one note of an effect. EndFreq, when set, makes the pitch glide
// linearly from Freq over the tone.
type Tone struct {
	Freq, EndFreq float64
	Duration      time.Duration
	Wave          Wave
	Volume        float64
}

// toneStream plays a single Tone with its fades applied.
type toneStream struct {
	tone    Tone
	rate    float64
	total   int
	attack  int
	release int
	played  int
	phase   float64
}

func (t Tone) stream(rate beep.SampleRate) *toneStream {
	total := rate.N(t.Duration)
	return &toneStream{
		tone:    t,
		rate:    float64(rate),
		total:   total,
		attack:  int(float64(total) * attackShare),
		release: int(float64(total) * releaseShare),
	}
}

func (s *toneStream) freq() float64 {
	if s.tone.EndFreq == 0 || s.total == 0 {
		return s.tone.Freq
	}
	return s.tone.Freq + (s.tone.EndFreq-s.tone.Freq)*float64(s.played)/float64(s.total)
}

func (s *toneStream) gain() float64 {
	switch left := s.total - s.played; {
	case s.release > 0 && left <= s.release:
		return float64(left) / float64(s.release)
	case s.attack > 0 && s.played < s.attack:
		return float64(s.played) / float64(s.attack)
	}
	return 1
}

func (s *toneStream) Stream(samples [][2]float64) (int, bool) {
	if s.played >= s.total {
		return 0, false
	}
	n := 0
	for ; n < len(samples) && s.played < s.total; n++ {
		v := s.tone.Wave.at(s.phase) * s.gain()
		samples[n] = [2]float64{v, v}
		s.phase += s.freq() / s.rate
		s.phase -= math.Floor(s.phase)
		s.played++
	}
	return n, true
}

func (s *toneStream) Err() error { return nil }

// Render chains tones into one streamer. Volume is linear; zero or less is
// silent.
func Render(tones []Tone, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		level := &effects.Volume{Streamer: t.stream(rate), Base: 2, Silent: t.Volume <= 0}
		if !level.Silent {
			level.Volume = math.Log2(t.Volume)
		}
		parts = append(parts, level)
	}
	return beep.Seq(parts...)
}

var (
	eatTones = []Tone{
		{Freq: 660, Duration: 40 * time.Millisecond, Wave: Square, Volume: 0.25},
		{Freq: 990, Duration: 60 * time.Millisecond, Wave: Square, Volume: 0.25},
	}
	gameOverTones = []Tone{
		{Freq: 440, EndFreq: 110, Duration: 450 * time.Millisecond, Wave: Triangle, Volume: 0.4},
	}
	winTones = []Tone{
		{Freq: 523, Duration: 90 * time.Millisecond, Wave: Sine, Volume: 0.35},
		{Freq: 659, Duration: 90 * time.Millisecond, Wave: Sine, Volume: 0.35},
		{Freq: 784, Duration: 90 * time.Millisecond, Wave: Sine, Volume: 0.35},
		{Freq: 1047, Duration: 240 * time.Millisecond, Wave: Sine, Volume: 0.35},
	}
)
