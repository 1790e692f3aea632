package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

type point struct{ x, y float64 }

// ellipse approximates an axis-aligned ellipse with n points.
func ellipse(cx, cy, rx, ry float64, n int) []point {
	pts := make([]point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = point{cx + math.Cos(a)*rx, cy + math.Sin(a)*ry}
	}
	return pts
}

// mirror flips points horizontally around ox when flip is set.
func mirror(pts []point, ox float64, flip bool) []point {
	if !flip {
		return pts
	}
	for i := range pts {
		pts[i].x = 2*ox - pts[i].x
	}
	return pts
}

// brush fills convex polygons through DrawTriangles with a 1x1 white source.
type brush struct {
	src *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

func newBrush() *brush {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &brush{src: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// fill draws a convex polygon in one colour.
func (b *brush) fill(dst *ebiten.Image, pts []point, clr color.Color) {
	b.shade(dst, pts, func(int) color.Color { return clr })
}

// shade draws a convex polygon with a colour per vertex; the GPU blends
// between them.
func (b *brush) shade(dst *ebiten.Image, pts []point, at func(i int) color.Color) {
	if len(pts) < 3 {
		return
	}

	b.vs = b.vs[:0]
	b.is = b.is[:0]
	for i, p := range pts {
		c := color.NRGBAModel.Convert(at(i)).(color.NRGBA)
		b.vs = append(b.vs, ebiten.Vertex{
			DstX:   float32(p.x),
			DstY:   float32(p.y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.R) / 0xff,
			ColorG: float32(c.G) / 0xff,
			ColorB: float32(c.B) / 0xff,
			ColorA: float32(c.A) / 0xff,
		})
	}
	for i := 1; i < len(pts)-1; i++ {
		b.is = append(b.is, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(b.vs, b.is, b.src, op)
}
