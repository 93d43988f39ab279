package sound

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/clst/internal/domain/entity"
)

// DefaultSampleRate is the speaker rate used by Init
const DefaultSampleRate = beep.SampleRate(44100)

// DefaultVoices are the stock cues. Multi-voice cues play in sequence.
var DefaultVoices = map[entity.SoundID][]Voice{
	entity.SoundJump: {
		{Wave: WaveSquare, Freq: 330, EndFreq: 660, Duration: 90 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 40 * time.Millisecond, Volume: 0.25},
	},
	entity.SoundWallJump: {
		{Wave: WaveSquare, Freq: 440, EndFreq: 880, Duration: 80 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 40 * time.Millisecond, Volume: 0.25},
	},
	entity.SoundDash: {
		{Wave: WaveNoise, Duration: 140 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 100 * time.Millisecond, Volume: 0.3},
	},
	entity.SoundDashDenied: {
		{Wave: WaveSaw, Freq: 110, Duration: 100 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 50 * time.Millisecond, Volume: 0.2},
	},
	entity.SoundDashRecharge: {
		{Wave: WaveSine, Freq: 987.77, Duration: 60 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 30 * time.Millisecond, Volume: 0.3},
		{Wave: WaveSine, Freq: 1318.51, Duration: 120 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 90 * time.Millisecond, Volume: 0.3},
	},
}

// Synth is an audio sink that synthesizes each cue into a shared mixer
type Synth struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	voices      map[entity.SoundID][]Voice
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewSynth creates a synth with the stock voices
func NewSynth(rate beep.SampleRate) *Synth {
	return &Synth{
		rate:   rate,
		voices: DefaultVoices,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	log.Printf("Audio initialized at %d Hz", s.rate)
	return nil
}

// Close stops every playing cue
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	s.mixer.Clear()
}

// SetMuted drops all cues while muted
func (s *Synth) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = muted
}

// Muted reports whether cues are dropped
func (s *Synth) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.muted
}

// Streamer renders the cue for id, or nil for unknown IDs
func (s *Synth) Streamer(id entity.SoundID) beep.Streamer {
	voices := s.voices[id]
	if len(voices) == 0 {
		return nil
	}
	if len(voices) == 1 {
		return voices[0].render(s.rate)
	}

	parts := make([]beep.Streamer, 0, len(voices))
	for _, v := range voices {
		parts = append(parts, v.render(s.rate))
	}
	return beep.Seq(parts...)
}

// Play implements system.AudioSink. Unknown IDs are ignored.
func (s *Synth) Play(id entity.SoundID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted {
		return
	}
	st := s.Streamer(id)
	if st == nil {
		return
	}

	if s.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	s.mixer.Add(st)
}

// Playing returns the number of cues still in the mixer
func (s *Synth) Playing() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return s.mixer.Len()
}
