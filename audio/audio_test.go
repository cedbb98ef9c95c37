package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/system"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLength(t *testing.T) {
	s, err := Tone(SampleRate, BounceFreq, BounceDuration)
	if err != nil {
		t.Fatal(err)
	}
	total, peak := drain(s)
	if want := SampleRate.N(BounceDuration); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if peak <= 0 || peak > 1 {
		t.Errorf("peak %f out of range", peak)
	}
}

func TestToneFadesOut(t *testing.T) {
	s, _ := Tone(SampleRate, BounceFreq, BounceDuration)
	n := SampleRate.N(BounceDuration)
	buf := make([][2]float64, n)
	got, _ := s.Stream(buf)
	if got != n {
		t.Fatalf("streamed %d, want %d", got, n)
	}
	if last := buf[n-1][0]; last > 0.01 || last < -0.01 {
		t.Errorf("last sample %f not faded", last)
	}
}

func TestGoalSoundIsTwoNotes(t *testing.T) {
	s, err := GoalSound(SampleRate, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	total, _ := drain(s)
	if want := 2 * SampleRate.N(GoalDuration); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestSilentVolume(t *testing.T) {
	s, _ := BounceSound(SampleRate, 0)
	if _, peak := drain(s); peak != 0 {
		t.Errorf("silent tone peak %f", peak)
	}
}

func newTestPlayer() (*Player, *[]beep.Streamer) {
	var got []beep.Streamer
	p := NewPlayer(true, 0.5, nil)
	p.ready = true
	p.sink = func(s beep.Streamer) { got = append(got, s) }
	return p, &got
}

func TestPlayerBounces(t *testing.T) {
	p, got := newTestPlayer()
	p.Bounces(0)
	p.Bounces(3)
	if len(*got) != 1 || p.Played() != 1 {
		t.Errorf("played %d tones, want 1", len(*got))
	}
}

func TestPlayerScoreChange(t *testing.T) {
	p, got := newTestPlayer()
	p.Score(system.Score{})
	p.Score(system.Score{})
	if len(*got) != 0 {
		t.Fatalf("unchanged score played %d tones", len(*got))
	}
	p.Score(system.Score{Right: 1})
	if len(*got) != 1 {
		t.Errorf("goal played %d tones, want 1", len(*got))
	}
}

func TestPlayerDisabled(t *testing.T) {
	p, got := newTestPlayer()
	p.SetEnabled(false)
	p.Bounces(1)
	p.Score(system.Score{})
	p.Score(system.Score{Left: 1})
	if len(*got) != 0 {
		t.Errorf("disabled player played %d tones", len(*got))
	}
}

func TestSoundUnknown(t *testing.T) {
	if _, err := Sound(core.SoundTypeCount, 1); err == nil {
		t.Error("expected error for unknown sound")
	}
	if core.SoundGoal.String() != "goal" {
		t.Errorf("String() = %q", core.SoundGoal.String())
	}
}
