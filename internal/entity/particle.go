package entity

import "image/color"

// Particle is a short-lived spark. Color carries straight (non-premultiplied)
// alpha; the renderer scales it by Life.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Decay  float64
	Size   float64
	Color  color.NRGBA
}

// Update advances the particle one frame and reports whether it is still alive.
func (p *Particle) Update() bool {
	p.X += p.VX
	p.Y += p.VY
	p.VY += Gravity
	p.Life -= p.Decay
	return p.Life > 0
}

// AppendSplash appends a burst of water droplets thrown upward from (x, y).
func AppendSplash(dst []Particle, r Rand, x, y float64) []Particle {
	for i := 0; i < SplashCount; i++ {
		dst = append(dst, Particle{
			X:     x,
			Y:     y,
			VX:    (r.Float64() - 0.5) * 10,
			VY:    r.Float64()*-8 - 2,
			Life:  1,
			Decay: SplashDecay,
			Size:  r.Float64()*4 + 2,
			Color: color.NRGBA{135, 206, 235, uint8((r.Float64()*0.8 + 0.2) * 0xff)},
		})
	}
	return dst
}

// AppendCatch appends a burst of golden sparks scattered around (x, y).
func AppendCatch(dst []Particle, r Rand, x, y float64) []Particle {
	for i := 0; i < CatchCount; i++ {
		c := hsl(r.Float64()*60+30, 1, 0.6, 0xff)
		dst = append(dst, Particle{
			X:     x,
			Y:     y,
			VX:    (r.Float64() - 0.5) * 15,
			VY:    (r.Float64() - 0.5) * 15,
			Life:  1,
			Decay: CatchDecay,
			Size:  r.Float64()*6 + 3,
			Color: color.NRGBA{c.R, c.G, c.B, c.A},
		})
	}
	return dst
}

// StepParticles advances every particle and compacts the survivors into the
// front of ps. The returned slice shares ps's backing array.
func StepParticles(ps []Particle) []Particle {
	live := ps[:0]
	for i := range ps {
		p := ps[i]
		if p.Update() {
			live = append(live, p)
		}
	}
	// drop references past the live set so stale sparks are not drawn
	clear(ps[len(live):])
	return live
}
