package session

import "math"

// PointerDown starts charging a cast unless the hook is still in flight.
func (s *Session) PointerDown(x, y float64) {
	if s.hook.Moving {
		return
	}
	s.player.Casting = true
	s.player.Power = 0
}

// PointerMove swings the rod toward the pointer while the hook is idle.
func (s *Session) PointerMove(x, y float64) {
	if s.hook.Moving {
		return
	}
	s.player.Aim(x, y)
}

// PointerUp releases a charged cast toward (x, y).
func (s *Session) PointerUp(x, y float64) {
	if !s.player.Casting {
		return
	}
	s.cast(x, y)
	s.player.Casting = false
}

func (s *Session) cast(x, y float64) {
	p := s.player
	distance := CastDistance(p.Power)
	angle := math.Atan2(y-p.Y, x-p.X)

	tx := p.X + math.Cos(angle)*distance
	ty := math.Max(s.waterline+CastFloor, p.Y+math.Sin(angle)*distance)

	s.hook.Throw(tx, ty)
	s.splash(tx, ty)
}

// CastDistance converts charged power into how far the hook flies.
func CastDistance(power float64) float64 {
	return math.Min(power*PowerToDistance, MaxCastDistance)
}
