// Package session holds the fishing game state and advances it frame by frame.
package session

import (
	"math"
	"math/rand"
	"time"

	"fishing/internal/entity"
)

// Catch describes one fish landed by the hook.
type Catch struct {
	Slot       int
	X, Y       float64
	Size       float64
	Score      float64 // running score after this catch
	FishCaught int     // running count after this catch
}

// Options configures a new Session.
type Options struct {
	Width, Height float64
	Rand          *rand.Rand

	// OnCatch is called synchronously for every fish caught.
	OnCatch func(Catch)

	// OnSplash is called when a cast is thrown and when the hook enters the water.
	OnSplash func(x, y float64)
}

// Session is one play-through. It is not safe for concurrent use; every
// mutation happens inside its own methods on the caller's goroutine.
type Session struct {
	width, height float64
	waterline     float64
	rng           *rand.Rand

	player    entity.Player
	hook      entity.Hook
	fish      [FishCount]entity.Fish
	particles []entity.Particle
	waves     []entity.Wave

	score      float64
	fishCaught int

	frame  int
	clock  time.Duration
	events scheduler

	onCatch  func(Catch)
	onSplash func(x, y float64)
}

// New builds a session with a fresh school of fish and a calm rod.
func New(opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		width:     opts.Width,
		height:    opts.Height,
		waterline: opts.Height * WaterlineRatio,
		rng:       rng,
		onCatch:   opts.OnCatch,
		onSplash:  opts.OnSplash,
	}

	s.player = entity.Player{X: s.width / 2, Y: PlayerY}
	s.hook = entity.NewHook(s.player.X, s.player.Y+HookRestOffset)
	s.waves = entity.NewWaves(rng, s.width)
	for i := range s.fish {
		s.fish[i] = s.spawnFish()
	}

	return s
}

// Advance moves the session forward by one frame that took dt of wall time.
func (s *Session) Advance(dt time.Duration) {
	s.clock += dt
	s.events.runDue(s.clock)

	s.frame++
	if s.player.Casting {
		s.player.Power = math.Min(MaxPower, s.player.Power+PowerPerFrame)
	}

	s.updateHook()
	s.updateFish()
	s.particles = entity.StepParticles(s.particles)
}

func (s *Session) updateHook() {
	arrived := s.hook.Step(s.waterline)
	if arrived && s.hook.InWater {
		s.splash(s.hook.X, s.waterline)
	}

	if !s.hook.Settled() {
		return
	}
	if !arrived {
		s.hook.Bob(s.frame)
	}
	s.checkCatch()
}

// checkCatch lands every uncaught fish within reach of the hook. More than
// one fish may be landed on the same frame.
func (s *Session) checkCatch() {
	for i := range s.fish {
		f := &s.fish[i]
		if !f.Hooked(s.hook.X, s.hook.Y) {
			continue
		}

		f.Caught = true
		s.score += f.Size
		s.fishCaught++
		s.particles = entity.AppendCatch(s.particles, s.rng, f.X, f.Y)

		slot := i
		s.events.at(s.clock+RespawnDelay, func() { s.respawn(slot) })

		if s.onCatch != nil {
			s.onCatch(Catch{
				Slot:       slot,
				X:          f.X,
				Y:          f.Y,
				Size:       f.Size,
				Score:      s.score,
				FishCaught: s.fishCaught,
			})
		}
	}
}

func (s *Session) updateFish() {
	b := entity.SwimBounds(s.width, s.height, s.waterline)
	for i := range s.fish {
		s.fish[i].Update(b, s.rng)
	}
}

func (s *Session) respawn(slot int) {
	s.fish[slot] = s.spawnFish()
}

func (s *Session) spawnFish() entity.Fish {
	return entity.SpawnFish(s.rng, s.width, s.height, s.waterline)
}

func (s *Session) splash(x, y float64) {
	s.particles = entity.AppendSplash(s.particles, s.rng, x, y)
	if s.onSplash != nil {
		s.onSplash(x, y)
	}
}

func (s *Session) Width() float64     { return s.width }
func (s *Session) Height() float64    { return s.height }
func (s *Session) Waterline() float64 { return s.waterline }

// Frame is the number of frames advanced so far; animations key off it.
func (s *Session) Frame() int { return s.frame }

// Clock is the total simulated time.
func (s *Session) Clock() time.Duration { return s.clock }

func (s *Session) Score() float64  { return s.score }
func (s *Session) FishCaught() int { return s.fishCaught }

func (s *Session) Player() entity.Player { return s.player }
func (s *Session) Hook() entity.Hook     { return s.hook }

// Fish returns the fish arena. The slice aliases session state and must be
// treated as read-only.
func (s *Session) Fish() []entity.Fish { return s.fish[:] }

// Particles returns the live particles; read-only, valid until the next Advance.
func (s *Session) Particles() []entity.Particle { return s.particles }

// Waves returns the water surface control points; read-only.
func (s *Session) Waves() []entity.Wave { return s.waves }

// Pending is the number of scheduled events not yet run.
func (s *Session) Pending() int { return s.events.pending() }
