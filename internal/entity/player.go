package entity

import "math"

// RodLength is the distance from the player to the rod tip.
const RodLength = 80.0

// Player is the angler. X and Y never change after construction.
type Player struct {
	X, Y     float64
	RodAngle float64 // radians, 0 points right
	Casting  bool
	Power    float64 // 0..100
}

// Aim points the rod at (x, y).
func (p *Player) Aim(x, y float64) {
	p.RodAngle = math.Atan2(y-p.Y, x-p.X)
}

// RodTip returns where the line leaves the rod.
func (p *Player) RodTip() (float64, float64) {
	return p.X + math.Cos(p.RodAngle)*RodLength, p.Y + math.Sin(p.RodAngle)*RodLength
}

// Hook is the end of the line. Moving and InWater are never both set once
// the hook has settled.
type Hook struct {
	X, Y             float64
	TargetX, TargetY float64
	Moving           bool
	InWater          bool
}

// NewHook returns an idle hook resting at (x, y).
func NewHook(x, y float64) Hook {
	return Hook{X: x, Y: y, TargetX: x, TargetY: y}
}

// Throw sends the hook toward (x, y).
func (h *Hook) Throw(x, y float64) {
	h.TargetX, h.TargetY = x, y
	h.Moving = true
	h.InWater = false
}

// Step eases a moving hook toward its target and reports whether it arrived
// on this frame. On arrival the hook sits exactly on the target and InWater
// reflects whether the target is below waterline.
func (h *Hook) Step(waterline float64) (arrived bool) {
	if !h.Moving {
		return false
	}

	dx := h.TargetX - h.X
	dy := h.TargetY - h.Y
	if math.Hypot(dx, dy) > HookSnap {
		h.X += dx * HookEase
		h.Y += dy * HookEase
		return false
	}

	h.X, h.Y = h.TargetX, h.TargetY
	h.Moving = false
	h.InWater = h.Y > waterline
	return true
}

// Settled reports whether the hook is resting in the water.
func (h *Hook) Settled() bool {
	return h.InWater && !h.Moving
}

// Bob nudges a settled hook up or down for the given frame.
func (h *Hook) Bob(frame int) {
	h.Y += math.Sin(float64(frame)*BobFrequency) * BobAmplitude
}

// DistanceToTarget is the remaining travel of a moving hook.
func (h *Hook) DistanceToTarget() float64 {
	return math.Hypot(h.TargetX-h.X, h.TargetY-h.Y)
}
