// Package render draws a fishing session. It only reads the scene it is given.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fishing/internal/entity"
)

// Power meter layout.
const (
	MeterWidth  = 200.0
	MeterHeight = 20.0
	MeterY      = 50.0
	MeterPad    = 5.0
)

const (
	hookRadius      = 5
	rippleRadius    = 15
	rippleSwell     = 3
	rippleFrequency = 0.1
)

// Scene is the read-only view of the game the renderer needs.
type Scene interface {
	Width() float64
	Height() float64
	Waterline() float64
	Frame() int
	Player() entity.Player
	Hook() entity.Hook
	Fish() []entity.Fish
	Particles() []entity.Particle
	Waves() []entity.Wave
}

// Renderer keeps scratch buffers between frames; it holds no game state.
type Renderer struct {
	brush *brush
	waves []point
}

func NewRenderer() *Renderer {
	return &Renderer{brush: newBrush()}
}

// Draw paints the whole scene onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, s Scene) {
	screen.Fill(ColSky)

	r.drawWater(screen, s)
	for _, f := range s.Fish() {
		if !f.Caught {
			r.drawFish(screen, f)
		}
	}

	p := s.Player()
	drawAngler(screen, p)
	drawLine(screen, p, s.Hook())
	drawHook(screen, s.Hook(), s.Frame())
	drawParticles(screen, s.Particles())

	if p.Casting {
		r.drawMeter(screen, s.Width(), p.Power)
	}
}

func (r *Renderer) drawWater(dst *ebiten.Image, s Scene) {
	wl := s.Waterline()
	vector.DrawFilledRect(dst, 0, float32(wl), float32(s.Width()), float32(s.Height()-wl), ColWater, false)

	r.waves = wavePoints(r.waves[:0], s.Waves(), wl, s.Frame())
	for i := 1; i < len(r.waves); i++ {
		a, b := r.waves[i-1], r.waves[i]
		vector.StrokeLine(dst, float32(a.x), float32(a.y), float32(b.x), float32(b.y), 3, ColWaveLine, true)
	}
}

// wavePoints appends the surface outline for the given frame to dst.
func wavePoints(dst []point, waves []entity.Wave, waterline float64, frame int) []point {
	for _, w := range waves {
		dst = append(dst, point{w.X, w.Y(waterline, frame)})
	}
	return dst
}

func drawLine(dst *ebiten.Image, p entity.Player, h entity.Hook) {
	tx, ty := p.RodTip()
	vector.StrokeLine(dst, float32(tx), float32(ty), float32(h.X), float32(h.Y), 2, ColLine, true)
}

func drawHook(dst *ebiten.Image, h entity.Hook, frame int) {
	hx, hy := float32(h.X), float32(h.Y)
	vector.DrawFilledCircle(dst, hx, hy, hookRadius, ColHook, true)
	if h.InWater {
		vector.StrokeCircle(dst, hx, hy, float32(rippleRadiusAt(frame)), 2, ColRipple, true)
	}
}

func rippleRadiusAt(frame int) float64 {
	return rippleRadius + math.Sin(float64(frame)*rippleFrequency)*rippleSwell
}

func drawParticles(dst *ebiten.Image, ps []entity.Particle) {
	for _, p := range ps {
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Size), particleColor(p), true)
	}
}

// drawMeter shows the charge as a slice of a full-width gradient.
func (r *Renderer) drawMeter(dst *ebiten.Image, width, power float64) {
	x := width/2 - MeterWidth/2
	vector.DrawFilledRect(dst, float32(x-MeterPad), float32(MeterY-MeterPad),
		float32(MeterWidth+2*MeterPad), float32(MeterHeight+2*MeterPad), ColMeterBack, false)
	vector.DrawFilledRect(dst, float32(x), MeterY, MeterWidth, MeterHeight, ColMeterBar, false)

	for _, seg := range meterSegments(power) {
		x0, x1 := x+seg[0]*MeterWidth, x+seg[1]*MeterWidth
		c0, c1 := meterColor(seg[0]), meterColor(seg[1])
		quad := []point{{x0, MeterY}, {x1, MeterY}, {x1, MeterY + MeterHeight}, {x0, MeterY + MeterHeight}}
		r.brush.shade(dst, quad, func(i int) color.Color {
			if i == 1 || i == 2 {
				return c1
			}
			return c0
		})
	}
}

// meterSegments splits the filled part of the meter, as fractions of the
// full bar, at each gradient stop so every piece blends between two colours.
func meterSegments(power float64) [][2]float64 {
	fill := min(max(power/100, 0), 1)
	if fill == 0 {
		return nil
	}

	var segs [][2]float64
	step := 1 / float64(len(meterStops)-1)
	for start := 0.0; start < fill; start += step {
		segs = append(segs, [2]float64{start, min(start+step, fill)})
	}
	return segs
}
