package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Tone parameters
const (
	BounceFreq     = 880.0
	BounceDuration = 50 * time.Millisecond
	GoalLowFreq    = 440.0
	GoalHighFreq   = 660.0
	GoalDuration   = 120 * time.Millisecond
	ReleaseTime    = 15 * time.Millisecond
)

// Tone returns a sine tone of the given length, faded out over the release time
func Tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return &fadeOut{
		streamer: beep.Take(rate.N(d), sine),
		total:    rate.N(d),
		release:  rate.N(ReleaseTime),
	}, nil
}

// BounceSound is a short high blip
func BounceSound(rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	s, err := Tone(rate, BounceFreq, BounceDuration)
	if err != nil {
		return nil, err
	}
	return withVolume(s, volume), nil
}

// GoalSound is a rising two-note chime
func GoalSound(rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	low, err := Tone(rate, GoalLowFreq, GoalDuration)
	if err != nil {
		return nil, err
	}
	high, err := Tone(rate, GoalHighFreq, GoalDuration)
	if err != nil {
		return nil, err
	}
	return withVolume(beep.Seq(low, high), volume), nil
}

// math.Log2(0) is -Inf, zero volume is silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// fadeOut ramps the tail of a stream to zero to avoid clicks
type fadeOut struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= start && f.release > 0 {
			vol := float64(f.total-f.position) / float64(f.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }
