package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"fishing/internal/entity"
)

var (
	ColSky       = color.RGBA{0x1b, 0x26, 0x3b, 0xff}
	ColWater     = color.NRGBA{30, 75, 59, 77}
	ColWaveLine  = color.NRGBA{135, 206, 235, 204}
	ColRipple    = color.NRGBA{135, 206, 235, 128}
	ColBoat      = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	ColRod       = color.RGBA{0x65, 0x43, 0x21, 0xff}
	ColLine      = color.NRGBA{100, 100, 100, 204}
	ColHook      = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	ColHighlight = color.NRGBA{255, 255, 255, 204}
	ColPupil     = color.RGBA{0, 0, 0, 0xff}
	ColMeterBack = color.NRGBA{0, 0, 0, 128}
	ColMeterBar  = color.RGBA{0x33, 0x33, 0x33, 0xff}

	ColPandaWhite = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColPandaBlack = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

// meterStops is the power meter gradient: green, yellow, red.
var meterStops = [...]colorful.Color{
	{R: 0, G: 1, B: 0},
	{R: 1, G: 1, B: 0},
	{R: 1, G: 0, B: 0},
}

// meterColor returns the gradient colour at t in [0,1].
func meterColor(t float64) color.RGBA {
	t = min(max(t, 0), 1)
	seg := t * float64(len(meterStops)-1)
	i := min(int(seg), len(meterStops)-2)
	r, g, b := meterStops[i].BlendRgb(meterStops[i+1], seg-float64(i)).Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// particleColor fades a particle's colour with its remaining life.
func particleColor(p entity.Particle) color.NRGBA {
	c := p.Color
	c.A = uint8(float64(c.A) * min(max(p.Life, 0), 1))
	return c
}
