// Package hud shows the score, the catch count and how long the session has run.
package hud

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD is the text overlay in the top-left corner.
type HUD struct {
	Score   float64
	Caught  int
	Elapsed time.Duration

	// Last is the size of the most recent catch, shown for a moment after it lands.
	Last      float64
	lastShown time.Duration
}

// LastCatchDuration is how long the "+size" note stays on screen.
const LastCatchDuration = 1500 * time.Millisecond

func New() *HUD {
	return &HUD{}
}

// Record takes the running totals after a catch.
func (h *HUD) Record(score float64, caught int, size float64) {
	h.Score = score
	h.Caught = caught
	h.Last = size
	h.lastShown = LastCatchDuration
}

// Update advances the session clock.
func (h *HUD) Update(dt time.Duration) {
	h.Elapsed += dt
	if h.lastShown > 0 {
		h.lastShown -= dt
	}
}

// Text is the overlay content for the current state.
func (h *HUD) Text() string {
	// Format Duration: "05:07"
	minutes := int(h.Elapsed.Minutes())
	seconds := int(h.Elapsed.Seconds()) % 60

	msg := fmt.Sprintf("SCORE: %d\nFISH:  %d\nTIME:  %02d:%02d",
		int(math.Floor(h.Score)), h.Caught, minutes, seconds)
	if h.lastShown > 0 {
		msg += fmt.Sprintf("\n+%d", int(math.Floor(h.Last)))
	}
	return msg
}

func (h *HUD) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, h.Text(), 8, 8)
}
