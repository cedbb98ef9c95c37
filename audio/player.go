package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/logger"
	"github.com/lixenwraith/vi-pong/system"
)

// SampleRate is the output rate of all tones
const SampleRate = beep.SampleRate(44100)

// Player turns simulation events into tones
// A disabled or uninitialized player silently ignores events
type Player struct {
	mu      sync.Mutex
	enabled bool
	volume  float64
	ready   bool
	sink    func(beep.Streamer)
	log     logger.Logger

	lastScore system.Score
	hasScore  bool
	played    int
}

// NewPlayer creates a player; Init must be called before tones are heard
func NewPlayer(enabled bool, volume float64, log logger.Logger) *Player {
	if log == nil {
		log = logger.Nop()
	}
	return &Player{
		enabled: enabled,
		volume:  volume,
		sink:    func(s beep.Streamer) { speaker.Play(s) },
		log:     log.Named("audio"),
	}
}

// Init opens the speaker
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		p.enabled = false
		return err
	}
	p.ready = true
	return nil
}

// Close stops output
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		speaker.Clear()
		p.ready = false
	}
}

// SetEnabled toggles output at runtime
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	p.enabled = on
	p.mu.Unlock()
}

// Bounces plays one blip per bounce, at most one per frame
func (p *Player) Bounces(n int) {
	if n == 0 {
		return
	}
	p.play(core.SoundBounce)
}

// Score plays the goal chime when the score differs from the last one seen
func (p *Player) Score(s system.Score) {
	p.mu.Lock()
	changed := p.hasScore && s != p.lastScore
	p.lastScore, p.hasScore = s, true
	p.mu.Unlock()

	if changed {
		p.play(core.SoundGoal)
	}
}

// Played returns the number of tones submitted
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Sound builds the streamer for a cue
func Sound(kind core.SoundType, volume float64) (beep.Streamer, error) {
	switch kind {
	case core.SoundBounce:
		return BounceSound(SampleRate, volume)
	case core.SoundGoal:
		return GoalSound(SampleRate, volume)
	}
	return nil, fmt.Errorf("unknown sound %d", kind)
}

func (p *Player) play(kind core.SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.ready {
		return
	}
	s, err := Sound(kind, p.volume)
	if err != nil {
		p.log.Warn("tone build failed", logger.String("sound", kind.String()), logger.Error(err))
		return
	}
	p.played++
	p.sink(s)
}
