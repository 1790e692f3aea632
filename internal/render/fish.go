package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fishing/internal/entity"
)

const ellipseSegments = 24

// fishShape is a fish laid out in screen space, already mirrored for
// direction of travel.
type fishShape struct {
	body   []point
	tail   []point
	fin    []point // only for type 2
	stripe [2]point
	eye    point
	eyeR   float64
	pupilR float64
}

func layoutFish(f entity.Fish) fishShape {
	s := f.Size
	flip := f.FacingLeft()

	eye := mirror([]point{{f.X - s*0.3, f.Y - s*0.2}}, f.X, flip)[0]
	shape := fishShape{
		body: ellipse(f.X, f.Y, s, s*0.6, ellipseSegments),
		tail: mirror([]point{
			{f.X + s*0.8, f.Y},
			{f.X + s*1.3, f.Y - s*0.3},
			{f.X + s*1.3, f.Y + s*0.3},
		}, f.X, flip),
		eye:    eye,
		eyeR:   s * 0.2,
		pupilR: s * 0.1,
	}

	switch f.Type {
	case 1:
		st := mirror([]point{{f.X + s*0.2, f.Y - s*0.5}, {f.X + s*0.2, f.Y + s*0.5}}, f.X, flip)
		shape.stripe = [2]point{st[0], st[1]}
	case 2:
		shape.fin = mirror([]point{
			{f.X - s*0.2, f.Y - s*0.5},
			{f.X + s*0.3, f.Y - s*0.9},
			{f.X + s*0.4, f.Y - s*0.45},
		}, f.X, flip)
	}
	return shape
}

func (r *Renderer) drawFish(dst *ebiten.Image, f entity.Fish) {
	sh := layoutFish(f)

	if sh.fin != nil {
		r.brush.fill(dst, sh.fin, f.Color)
	}
	r.brush.fill(dst, sh.body, f.Color)
	r.brush.fill(dst, sh.tail, f.Color)
	if f.Type == 1 {
		vector.StrokeLine(dst,
			float32(sh.stripe[0].x), float32(sh.stripe[0].y),
			float32(sh.stripe[1].x), float32(sh.stripe[1].y),
			float32(f.Size*0.12), color.NRGBA{255, 255, 255, 90}, true)
	}

	vector.DrawFilledCircle(dst, float32(sh.eye.x), float32(sh.eye.y), float32(sh.eyeR), ColHighlight, true)
	vector.DrawFilledCircle(dst, float32(sh.eye.x), float32(sh.eye.y), float32(sh.pupilR), ColPupil, true)
}
