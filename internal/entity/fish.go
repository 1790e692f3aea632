package entity

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Rand is the subset of *rand.Rand the entities draw from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Bounds is the rectangle a fish swims in.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Fish is one swimmer. A caught fish is frozen until its slot is respawned.
type Fish struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA
	Caught bool
	Type   int
}

// SpawnFish returns a fresh fish somewhere in the water below waterline.
func SpawnFish(r Rand, width, height, waterline float64) Fish {
	band := height - waterline - 2*SpawnMargin
	return Fish{
		X:     r.Float64() * width,
		Y:     waterline + SpawnMargin + r.Float64()*band,
		VX:    (r.Float64() - 0.5) * SpawnSpeedX,
		VY:    (r.Float64() - 0.5) * SpawnSpeedY,
		Size:  r.Float64()*FishSizeRange + MinFishSize,
		Color: hsl(r.Float64()*FishHueRange+FishHueMin, 0.7, 0.5, 0xff),
		Type:  r.Intn(FishTypes),
	}
}

// SwimBounds is the area fish turn around in for a surface of the given size.
func SwimBounds(width, height, waterline float64) Bounds {
	return Bounds{
		MinX: 0,
		MaxX: width,
		MinY: waterline + SwimMargin,
		MaxY: height - SwimMargin,
	}
}

// Update moves an uncaught fish one frame, bouncing off b and occasionally
// wandering.
func (f *Fish) Update(b Bounds, r Rand) {
	if f.Caught {
		return
	}

	f.X += f.VX
	f.Y += f.VY

	if f.X < b.MinX || f.X > b.MaxX {
		f.VX = -f.VX
	}
	if f.Y < b.MinY || f.Y > b.MaxY {
		f.VY = -f.VY
	}

	if r.Float64() < WanderChance {
		f.VX += (r.Float64() - 0.5) * WanderKickX
		f.VY += (r.Float64() - 0.5) * WanderKickY
		f.VX = clamp(f.VX, -MaxSpeedX, MaxSpeedX)
		f.VY = clamp(f.VY, -MaxSpeedY, MaxSpeedY)
	}
}

// Hooked reports whether a hook at (x, y) is inside the fish's catch radius.
func (f *Fish) Hooked(x, y float64) bool {
	return !f.Caught && math.Hypot(f.X-x, f.Y-y) < f.Size
}

// FacingLeft is true when the fish swims toward smaller x.
func (f *Fish) FacingLeft() bool {
	return f.VX < 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func hsl(h, s, l float64, a uint8) color.RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{r, g, b, a}
}
