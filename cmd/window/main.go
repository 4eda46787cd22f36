package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/asteroid-dodge/internal/audio"
	"github.com/tomz197/asteroid-dodge/internal/config"
	"github.com/tomz197/asteroid-dodge/internal/draw"
	"github.com/tomz197/asteroid-dodge/internal/input"
	"github.com/tomz197/asteroid-dodge/internal/loop"
	"github.com/tomz197/asteroid-dodge/internal/sprite"
)

// keymap lists the keys held for each button.
var keymap = [input.NumButtons][]ebiten.Key{
	input.ButtonUp:   {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyI},
	input.ButtonDown: {ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyK},
	input.ButtonFire: {ebiten.KeySpace, ebiten.KeyEnter},
	input.ButtonQuit: {ebiten.KeyEscape, ebiten.KeyQ},
}

// keyLevels samples the keyboard.
func keyLevels() input.Levels {
	var levels input.Levels
	for b, keys := range keymap {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				levels[b] = true
				break
			}
		}
	}
	return levels
}

// windowPresenter keeps the last committed frame as RGBA bytes for Draw.
type windowPresenter struct {
	pixels []byte
	dirty  bool
}

func (p *windowPresenter) Present(fb *draw.FrameBuffer) error {
	p.pixels = fb.RGBA(p.pixels)
	p.dirty = true
	return nil
}

// Game adapts the driver to ebiten. Ebiten calls Update at a fixed rate, so
// the driver runs one tick per Update instead of its own loop.
type Game struct {
	driver    *loop.Driver
	presenter *windowPresenter
	frame     *ebiten.Image
}

func (g *Game) Update() error {
	if !g.driver.Tick() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.presenter.dirty {
		g.frame.WritePixels(g.presenter.pixels)
		g.presenter.dirty = false
	}
	screen.DrawImage(g.frame, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	screen := g.driver.Game().Screen
	return screen.Width, screen.Height
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	logger, closeLog, err := cfg.NewLogger(os.Stderr, "window")
	if err != nil {
		log.Fatal("failed to open log", "err", err)
	}
	defer closeLog()

	sprites, err := sprite.NewDefaultCache()
	if err != nil {
		logger.Fatal("failed to build sprites", "err", err)
	}

	var sink audio.Sink = audio.Nop{}
	if !cfg.Mute {
		beeper := audio.NewBeeper(0.3)
		if err := beeper.Initialize(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		} else {
			defer beeper.Close()
			sink = beeper
		}
	}

	var edges input.EdgeDetector
	presenter := &windowPresenter{}
	game := loop.NewGame(sprites, rand.New(rand.NewSource(cfg.SeedOrNow())))
	screen := game.Screen
	surface := draw.NewFrameBuffer(screen.Width, screen.Height, presenter)
	driver := loop.NewDriver(game, loop.NewRenderer(sprites), surface, loop.Options{
		Input:  input.SourceFunc(func() []input.Event { return edges.Update(keyLevels()) }),
		Audio:  sink,
		Logger: logger,
	})

	ebiten.SetWindowSize(screen.Width*cfg.WindowScale, screen.Height*cfg.WindowScale)
	ebiten.SetWindowTitle("Asteroid Dodge")
	ebiten.SetWindowResizable(true)

	g := &Game{
		driver:    driver,
		presenter: presenter,
		frame:     ebiten.NewImage(screen.Width, screen.Height),
	}
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
	fmt.Printf("Final score: %d\n", game.Score)
}
