package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"fishing/internal/config"
	"fishing/internal/hud"
	"fishing/internal/render"
	"fishing/internal/session"
	"fishing/internal/sfx"
)

// Game adapts a fishing session to ebiten's loop.
type Game struct {
	cfg      config.Config
	session  *session.Session
	renderer *render.Renderer
	hud      *hud.HUD
	sound    *sfx.Player // nil when muted

	pointer pointer
}

func NewGame(cfg config.Config, opts session.Options) *Game {
	g := &Game{
		cfg:      cfg,
		renderer: render.NewRenderer(),
		hud:      hud.New(),
	}
	if !cfg.Mute {
		g.sound = sfx.New()
	}

	opts.Width, opts.Height = float64(cfg.Width), float64(cfg.Height)
	opts.OnCatch = g.onCatch
	opts.OnSplash = func(x, y float64) { g.sound.Splash() }
	g.session = session.New(opts)

	return g
}

func (g *Game) onCatch(c session.Catch) {
	g.hud.Record(c.Score, c.FishCaught, c.Size)
	g.sound.Catch()
	if g.cfg.Debug {
		log.Printf("caught fish in slot %d (size %.1f) score=%.1f total=%d",
			c.Slot, c.Size, c.Score, c.FishCaught)
	}
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	g.pointer.poll(g.session)

	dt := time.Second / time.Duration(ebiten.TPS())
	g.session.Advance(dt)
	g.hud.Update(dt)

	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session)
	g.hud.Draw(screen)
}

// Layout: the surface keeps its configured size, ebiten scales the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Input is what pointer forwards to; *session.Session implements it.
type Input interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp(x, y float64)
}

// pointer turns mouse and touch state into down/move/up edges. The first
// touch to land drives the pointer until it lifts; further fingers are ignored.
type pointer struct {
	x, y     int
	seen     bool
	touching bool
	touch    ebiten.TouchID
}

func (p *pointer) poll(in Input) {
	if p.touching {
		p.pollTouch(in)
		return
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		p.touching = true
		p.touch = ids[0]
		x, y := ebiten.TouchPosition(p.touch)
		p.moveTo(in, x, y)
		in.PointerDown(float64(x), float64(y))
		return
	}
	p.pollMouse(in)
}

func (p *pointer) pollMouse(in Input) {
	x, y := ebiten.CursorPosition()
	if !p.seen {
		// the cursor starts at the origin before the mouse ever moves
		p.x, p.y, p.seen = x, y, true
	}
	p.moveTo(in, x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.PointerDown(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.PointerUp(float64(x), float64(y))
	}
}

func (p *pointer) pollTouch(in Input) {
	if inpututil.IsTouchJustReleased(p.touch) {
		x, y := inpututil.TouchPositionInPreviousTick(p.touch)
		p.touching = false
		in.PointerUp(float64(x), float64(y))
		return
	}
	x, y := ebiten.TouchPosition(p.touch)
	p.moveTo(in, x, y)
}

// moveTo reports a move only when the position actually changed.
func (p *pointer) moveTo(in Input, x, y int) {
	if p.seen && x == p.x && y == p.y {
		return
	}
	p.x, p.y, p.seen = x, y, true
	in.PointerMove(float64(x), float64(y))
}
