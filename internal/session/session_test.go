package session

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

const frame = time.Second / 60

func newTestSession(seed int64) *Session {
	return New(Options{Width: 800, Height: 600, Rand: rand.New(rand.NewSource(seed))})
}

// parkFish moves every fish far from the play area so only the ones a test
// places explicitly can be hooked.
func parkFish(s *Session) {
	for i := range s.fish {
		s.fish[i].X = -10000
		s.fish[i].Y = -10000
		s.fish[i].VX = 0
		s.fish[i].VY = 0
	}
}

// settleHookAt leaves the hook resting in the water at (x, y) as if it had
// arrived on an earlier frame.
func settleHookAt(s *Session, x, y float64) {
	s.hook.X, s.hook.Y = x, y
	s.hook.TargetX, s.hook.TargetY = x, y
	s.hook.Moving = false
	s.hook.InWater = true
}

func TestNewSessionStartingState(t *testing.T) {
	s := newTestSession(1)

	if s.Score() != 0 || s.FishCaught() != 0 {
		t.Fatalf("score=%v caught=%d, want 0 and 0", s.Score(), s.FishCaught())
	}
	if got := len(s.Fish()); got != 8 {
		t.Fatalf("fish = %d, want 8", got)
	}
	if got := len(s.Waves()); got != 20 {
		t.Fatalf("waves = %d, want 20", got)
	}
	if s.Waterline() != 240 {
		t.Fatalf("waterline = %v, want 240", s.Waterline())
	}
	p := s.Player()
	if p.X != 400 || p.Y != 100 {
		t.Fatalf("player at (%v,%v), want (400,100)", p.X, p.Y)
	}
	h := s.Hook()
	if h.X != 400 || h.Y != 150 || h.Moving || h.InWater {
		t.Fatalf("unexpected initial hook %+v", h)
	}
	for i, f := range s.Fish() {
		if f.Caught {
			t.Fatalf("fish %d starts caught", i)
		}
		if f.Y < s.Waterline()+100 || f.Y >= s.Height()-100 {
			t.Fatalf("fish %d spawned at y=%v outside the spawn band", i, f.Y)
		}
		if f.Size < 20 || f.Size >= 50 {
			t.Fatalf("fish %d size %v out of range", i, f.Size)
		}
	}
}

func TestCastDistance(t *testing.T) {
	tests := []struct {
		power float64
		want  float64
	}{
		{0, 0},
		{10, 80},
		{50, 400},
		{100, 400},
	}
	for _, tt := range tests {
		if got := CastDistance(tt.power); got != tt.want {
			t.Errorf("CastDistance(%v) = %v, want %v", tt.power, got, tt.want)
		}
	}
}

func TestPowerRampsWhileCharging(t *testing.T) {
	s := newTestSession(2)
	s.PointerDown(400, 500)

	for i := 0; i < 10; i++ {
		s.Advance(frame)
	}
	if got := s.Player().Power; got != 20 {
		t.Fatalf("power after 10 frames = %v, want 20", got)
	}

	for i := 0; i < 100; i++ {
		s.Advance(frame)
	}
	if got := s.Player().Power; got != 100 {
		t.Fatalf("power should cap at 100, got %v", got)
	}
}

func TestCastClampsTargetBelowWaterline(t *testing.T) {
	s := newTestSession(3)
	s.PointerDown(0, 0)
	for i := 0; i < 10; i++ {
		s.Advance(frame)
	}
	// aim up and to the right: unclamped target would be in the air
	s.PointerUp(500, 0)

	h := s.Hook()
	if !h.Moving || h.InWater {
		t.Fatalf("hook should be flying, got %+v", h)
	}
	if h.TargetY != s.Waterline()+50 {
		t.Fatalf("target y = %v, want %v", h.TargetY, s.Waterline()+50)
	}
	if s.Player().Casting {
		t.Fatal("casting should clear on release")
	}
	if got := len(s.Particles()); got != 15 {
		t.Fatalf("splash particles = %d, want 15", got)
	}
}

func TestCastFullPowerStraightDown(t *testing.T) {
	s := newTestSession(4)
	s.PointerDown(400, 550)
	for i := 0; i < 50; i++ {
		s.Advance(frame)
	}
	s.PointerUp(400, 550)

	h := s.Hook()
	if math.Abs(h.TargetX-400) > 1e-9 || math.Abs(h.TargetY-500) > 1e-9 {
		t.Fatalf("target = (%v,%v), want (400,500)", h.TargetX, h.TargetY)
	}
}

func TestHookConvergesAndSettles(t *testing.T) {
	s := newTestSession(5)
	parkFish(s)
	s.PointerDown(600, 450)
	for i := 0; i < 30; i++ {
		s.Advance(frame)
	}
	s.PointerUp(600, 450)

	h := s.Hook()
	tx, ty := h.TargetX, h.TargetY
	prev := h.DistanceToTarget()
	for i := 0; i < 200; i++ {
		s.Advance(frame)
		h = s.Hook()
		if !h.Moving {
			break
		}
		d := h.DistanceToTarget()
		if d > prev {
			t.Fatalf("frame %d: distance grew from %v to %v", i, prev, d)
		}
		prev = d
	}

	if h.Moving {
		t.Fatal("hook never settled")
	}
	if h.X != tx || h.Y != ty {
		t.Fatalf("settled at (%v,%v), want exactly (%v,%v)", h.X, h.Y, tx, ty)
	}
	if !h.InWater {
		t.Fatal("hook below waterline should be in water")
	}
}

func TestPointerIgnoredWhileHookMoving(t *testing.T) {
	s := newTestSession(6)
	s.PointerDown(400, 400)
	s.Advance(frame)
	s.PointerUp(400, 400)

	angle := s.Player().RodAngle
	s.PointerMove(0, 0)
	s.PointerDown(0, 0)

	if s.Player().RodAngle != angle {
		t.Fatal("rod moved while hook in flight")
	}
	if s.Player().Casting {
		t.Fatal("charge started while hook in flight")
	}
}

func TestPointerMoveAimsRod(t *testing.T) {
	s := newTestSession(7)
	s.PointerMove(500, 200)
	if got := s.Player().RodAngle; math.Abs(got-math.Pi/4) > 1e-12 {
		t.Fatalf("rod angle = %v, want pi/4", got)
	}
}

func TestCatchAndRespawn(t *testing.T) {
	var catches []Catch
	s := New(Options{
		Width:   800,
		Height:  600,
		Rand:    rand.New(rand.NewSource(8)),
		OnCatch: func(c Catch) { catches = append(catches, c) },
	})
	parkFish(s)

	const slot = 3
	s.fish[slot].X, s.fish[slot].Y = 300, 400
	size := s.fish[slot].Size
	settleHookAt(s, 300, 400)

	s.Advance(frame)

	if s.Score() != size {
		t.Fatalf("score = %v, want %v", s.Score(), size)
	}
	if s.FishCaught() != 1 {
		t.Fatalf("fishCaught = %d, want 1", s.FishCaught())
	}
	if !s.Fish()[slot].Caught {
		t.Fatal("fish should be marked caught")
	}
	if len(catches) != 1 || catches[0].Slot != slot || catches[0].Size != size {
		t.Fatalf("unexpected catch events %+v", catches)
	}
	if s.Pending() != 1 {
		t.Fatalf("pending events = %d, want 1", s.Pending())
	}
	if got := len(s.Particles()); got != 20 {
		t.Fatalf("catch particles = %d, want 20", got)
	}

	// caught fish are skipped while they wait for respawn
	s.Advance(frame)
	if s.FishCaught() != 1 {
		t.Fatalf("caught fish counted twice: %d", s.FishCaught())
	}

	// keep the fresh fish from being hooked the moment it appears
	s.hook.InWater = false

	// the respawn is due RespawnDelay after the catch frame
	s.Advance(RespawnDelay - frame - time.Millisecond)
	if !s.Fish()[slot].Caught {
		t.Fatal("fish respawned before the delay elapsed")
	}

	s.Advance(time.Millisecond)
	if s.Fish()[slot].Caught {
		t.Fatal("fish should have respawned")
	}
	if len(s.Fish()) != 8 {
		t.Fatalf("fish = %d, want 8", len(s.Fish()))
	}
	if s.Fish()[slot].X == -10000 {
		t.Fatal("respawned fish should have a new position")
	}
	if s.Pending() != 0 {
		t.Fatalf("pending events = %d, want 0", s.Pending())
	}
}

func TestCatchSeveralFishInOneFrame(t *testing.T) {
	s := newTestSession(9)
	parkFish(s)
	s.fish[0].X, s.fish[0].Y = 300, 400
	s.fish[5].X, s.fish[5].Y = 305, 400
	want := s.fish[0].Size + s.fish[5].Size
	settleHookAt(s, 300, 400)

	s.Advance(frame)

	if s.FishCaught() != 2 {
		t.Fatalf("fishCaught = %d, want 2", s.FishCaught())
	}
	if s.Score() != want {
		t.Fatalf("score = %v, want %v", s.Score(), want)
	}
	if s.Pending() != 2 {
		t.Fatalf("pending = %d, want 2", s.Pending())
	}
}

func TestHookInAirCatchesNothing(t *testing.T) {
	s := newTestSession(10)
	parkFish(s)
	s.fish[2].X, s.fish[2].Y = 300, 400
	settleHookAt(s, 300, 400)
	s.hook.InWater = false

	s.Advance(frame)

	if s.FishCaught() != 0 {
		t.Fatal("a hook out of the water must not catch")
	}
}

func TestFishPopulationStaysConstant(t *testing.T) {
	s := newTestSession(11)
	for i := 0; i < 600; i++ {
		if i%40 == 0 {
			h := s.Hook()
			if !h.Moving {
				f := s.Fish()[i%FishCount]
				settleHookAt(s, f.X, f.Y)
			}
		}
		s.Advance(frame)
		if len(s.Fish()) != FishCount {
			t.Fatalf("frame %d: fish = %d", i, len(s.Fish()))
		}
	}
}

func TestSplashOnWaterEntry(t *testing.T) {
	var splashes int
	s := New(Options{
		Width:    800,
		Height:   600,
		Rand:     rand.New(rand.NewSource(12)),
		OnSplash: func(x, y float64) { splashes++ },
	})
	parkFish(s)

	s.PointerDown(400, 500)
	s.Advance(frame)
	s.PointerUp(400, 500)
	if splashes != 1 {
		t.Fatalf("splashes after cast = %d, want 1", splashes)
	}

	for i := 0; i < 200 && s.Hook().Moving; i++ {
		s.Advance(frame)
	}
	if splashes != 2 {
		t.Fatalf("splashes after landing = %d, want 2", splashes)
	}
}
