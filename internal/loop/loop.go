// Package loop provides the game state, the simulation step, the renderer and
// the main loop that drives them.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroid-dodge/internal/audio"
	"github.com/tomz197/asteroid-dodge/internal/draw"
	"github.com/tomz197/asteroid-dodge/internal/input"
	"github.com/tomz197/asteroid-dodge/internal/loop/config"
)

// Options configures a Driver. Zero values pick working defaults.
type Options struct {
	Input      input.Source  // nil means no input
	Audio      audio.Sink    // nil means silent
	Clock      Clock         // nil means a SystemClock
	Logger     *log.Logger   // nil discards logs
	FrameDelay time.Duration // Pause after every tick; 0 means config.FrameDelay
}

// Driver runs the Input → Update → Draw cycle for one game.
type Driver struct {
	game     *Game
	renderer *Renderer
	surface  draw.Surface

	input      input.Source
	audio      audio.Sink
	clock      Clock
	logger     *log.Logger
	frameDelay time.Duration

	state       input.State
	lastMillis  uint32
	statsMillis uint32        // Time of the last stats line
	runtime     time.Duration // Simulated wall time since start
}

// NewDriver creates a driver for game that draws onto surface.
func NewDriver(game *Game, renderer *Renderer, surface draw.Surface, opts Options) *Driver {
	d := &Driver{
		game:       game,
		renderer:   renderer,
		surface:    surface,
		input:      opts.Input,
		audio:      opts.Audio,
		clock:      opts.Clock,
		logger:     opts.Logger,
		frameDelay: opts.FrameDelay,
	}
	if d.input == nil {
		d.input = input.SourceFunc(func() []input.Event { return nil })
	}
	if d.audio == nil {
		d.audio = audio.Nop{}
	}
	if d.clock == nil {
		d.clock = NewSystemClock()
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}
	if d.frameDelay <= 0 {
		d.frameDelay = config.FrameDelay
	}
	d.lastMillis = d.clock.NowMillis()
	d.statsMillis = d.lastMillis
	return d
}

// Game returns the game being driven.
func (d *Driver) Game() *Game {
	return d.game
}

// Tick runs one iteration: poll input, step the simulation, render and commit.
// Returns false once the player asked to quit; nothing is simulated then.
func (d *Driver) Tick() bool {
	// ===== INPUT PHASE =====
	d.state.Apply(d.input.Poll())
	if d.state.Quit {
		return false
	}

	now := d.clock.NowMillis()
	elapsed := max(0, TicksDiff(now, d.lastMillis))
	d.lastMillis = now
	d.runtime += time.Duration(elapsed) * time.Millisecond

	if d.game.ApplyInput(d.state) {
		audio.Play(d.audio, audio.FireNotes)
	}

	// ===== UPDATE PHASE =====
	res := d.game.Advance(float64(elapsed) / 1000)
	if res.Hits > 0 {
		audio.Play(d.audio, audio.HitNotes)
		d.logger.Debug("asteroid destroyed", "hits", res.Hits, "score", d.game.Score)
	}

	if TicksDiff(now, d.statsMillis) >= int32(config.StatsInterval/time.Millisecond) {
		d.statsMillis = now
		d.logStats()
	}

	// ===== DRAW PHASE =====
	if err := d.renderer.Render(d.game, d.surface); err != nil {
		d.logger.Debug("frame commit failed", "err", err)
	}
	return true
}

func (d *Driver) logStats() {
	d.logger.Info("stats",
		"runtime", d.runtime.Truncate(time.Second),
		"score", d.game.Score,
		"enemies", len(d.game.Enemies),
		"bullets", len(d.game.Bullets),
	)
}

// Run ticks until the player quits or ctx is cancelled, pausing FrameDelay
// after every tick. Both ways of stopping return nil.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("game started")
	defer func() {
		d.logStats()
		d.logger.Info("game over", "score", d.game.Score)
	}()

	timer := time.NewTimer(d.frameDelay)
	defer timer.Stop()
	for {
		if ctx.Err() != nil {
			return nil
		}
		if !d.Tick() {
			return nil
		}

		// ===== FRAME TIMING =====
		timer.Reset(d.frameDelay)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}
