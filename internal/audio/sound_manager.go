// internal/audio/sound_manager.go
package audio

import (
	"log"
	"sync"
	"time"

	"go-tower-sim/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short sound tied to a simulation event.
type Cue int

const (
	CueShot Cue = iota
	CueHit
	CueKill
	CueEscape
	CueWave
	CueLost
)

// tone is one note of a cue.
type tone struct {
	freq float64
	dur  time.Duration
}

var cueTones = map[Cue][]tone{
	CueShot:   {{660, 30 * time.Millisecond}},
	CueHit:    {{880, 40 * time.Millisecond}},
	CueKill:   {{880, 50 * time.Millisecond}, {1320, 80 * time.Millisecond}},
	CueEscape: {{160, 150 * time.Millisecond}},
	CueWave:   {{440, 80 * time.Millisecond}, {550, 80 * time.Millisecond}, {660, 120 * time.Millisecond}},
	CueLost:   {{330, 200 * time.Millisecond}, {220, 200 * time.Millisecond}, {110, 400 * time.Millisecond}},
}

// CueFor maps an event type to its cue.
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.AttackIssued:
		return CueShot, true
	case event.ProjectileHit:
		return CueHit, true
	case event.EnemyKilled:
		return CueKill, true
	case event.EnemyEscaped:
		return CueEscape, true
	case event.WaveStarted:
		return CueWave, true
	case event.GameLost:
		return CueLost, true
	}
	return 0, false
}

// Samples returns the length of a cue in samples.
func (c Cue) Samples() int {
	n := 0
	for _, t := range cueTones[c] {
		n += sampleRate.N(t.dur)
	}
	return n
}

// streamer builds a finite streamer playing the cue's tones in sequence.
func (c Cue) streamer() (beep.Streamer, error) {
	tones := cueTones[c]
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(t.dur), sine))
	}
	return beep.Seq(parts...), nil
}

// SoundManager plays event cues through the speaker. Until Initialize succeeds it only counts them.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       map[Cue]bool
	played      map[Cue]int
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		muted:  map[Cue]bool{CueShot: true},
		played: make(map[Cue]int),
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted turns a single cue on or off.
func (sm *SoundManager) SetMuted(c Cue, muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted[c] = muted
}

// Play queues a cue on the mixer.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted[c] {
		return
	}
	sm.played[c]++
	if !sm.initialized {
		return
	}
	s, err := c.streamer()
	if err != nil {
		log.Printf("SoundManager: cue %d: %v", c, err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how many times a cue has been requested.
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[c]
}

// Subscribe registers the manager for every event that has a cue.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm, event.AttackIssued, event.ProjectileHit, event.EnemyKilled,
		event.EnemyEscaped, event.WaveStarted, event.GameLost)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if c, ok := CueFor(e.Type); ok {
		sm.Play(c)
	}
}
