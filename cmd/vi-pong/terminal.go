package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/logger"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/render"
)

const toneVolume = 0.4

// runTerminal drives the match from keyboard input until quit
func runTerminal(screen tcell.Screen, match *game.Match, cfg *config.Config, log logger.Logger) error {
	cols, rows := screen.Size()
	if err := match.Start(render.Viewport(cols, rows)); err != nil {
		return err
	}

	var latches [2]*input.Latch
	for _, side := range core.Sides {
		latches[side] = input.NewLatch(parameter.KeyHoldWindow, time.Now)
		if err := match.Bind(side, latches[side]); err != nil {
			return err
		}
	}
	keys := input.DefaultKeyTable()

	player := audio.NewPlayer(cfg.Audio, toneVolume, log)
	if err := player.Init(); err != nil {
		log.Warn("audio unavailable", logger.Error(err))
	}
	defer func() {
		player.Close()
		log.Info("audio closed", logger.Int("tones", player.Played()))
	}()
	muted := false

	renderer := render.NewTerminalRenderer(screen)

	events := make(chan tcell.Event, parameter.EventQueueSize)
	quit := make(chan struct{})
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})
	defer close(quit)

	ticker := time.NewTicker(cfg.FrameInterval)
	defer ticker.Stop()
	timer := engine.NewFrameTimer(engine.MonotonicTimeProvider{})

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return nil
				}
				switch ev.Rune() {
				case ' ':
					if match.Paused() {
						match.Resume()
					} else {
						match.Pause()
					}
					for _, l := range latches {
						l.Release()
					}
					continue
				case 'm':
					muted = !muted
					player.SetEnabled(cfg.Audio && !muted)
					continue
				}
				if b, ok := keys.Lookup(ev.Key(), ev.Rune()); ok {
					latches[b.Side].Press(b.Intent)
				}
			case *tcell.EventResize:
				screen.Sync()
				c, r := ev.Size()
				if err := match.Resize(render.Viewport(c, r)); err != nil {
					log.Warn("resize rejected", logger.Error(err))
				}
			}

		case <-ticker.C:
			match.Frame(timer.Tick())
			player.Bounces(len(match.DrainBounces()))
			for _, r := range match.DrainRespawns() {
				log.Debug("ball respawned", logger.Uint64("old", uint64(r.Old)), logger.Uint64("new", uint64(r.New)))
			}
			if s, changed := match.TakeScore(); changed {
				player.Score(s)
				log.Info("score", logger.Uint64("left", s.Left), logger.Uint64("right", s.Right))
			}
			renderer.RenderFrame(match.Scene())
		}
	}
}
