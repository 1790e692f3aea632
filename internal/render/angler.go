package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fishing/internal/entity"
)

// drawAngler draws the boat, a small panda sitting in it and the rod.
func drawAngler(dst *ebiten.Image, p entity.Player) {
	px, py := float32(p.X), float32(p.Y)

	// Panda, half scale, peeking over the gunwale
	vector.DrawFilledCircle(dst, px-6, py-22, 4, ColPandaBlack, true)
	vector.DrawFilledCircle(dst, px+6, py-22, 4, ColPandaBlack, true)
	vector.DrawFilledCircle(dst, px, py-15, 10, ColPandaWhite, true)
	vector.DrawFilledCircle(dst, px-4, py-16, 3, ColPandaBlack, true)
	vector.DrawFilledCircle(dst, px+4, py-16, 3, ColPandaBlack, true)
	vector.DrawFilledCircle(dst, px-4, py-16.5, 1, ColPandaWhite, true)
	vector.DrawFilledCircle(dst, px+4, py-16.5, 1, ColPandaWhite, true)
	vector.DrawFilledCircle(dst, px, py-12, 1.5, ColPandaBlack, true)

	// Boat
	vector.DrawFilledRect(dst, px-15, py-10, 30, 20, ColBoat, true)

	// Rod
	tx, ty := p.RodTip()
	vector.StrokeLine(dst, px, py, float32(tx), float32(ty), 4, ColRod, true)
}
