package entity

// Hook
const (
	HookEase     = 0.15 // fraction of the remaining distance covered per frame
	HookSnap     = 5.0  // snap to target at or below this distance
	BobAmplitude = 0.5
	BobFrequency = 0.05 // radians per frame
)

// Fish
const (
	MinFishSize   = 20.0
	FishSizeRange = 30.0
	FishTypes     = 3
	FishHueMin    = 180.0
	FishHueRange  = 60.0
	SwimMargin    = 50.0  // keeps fish away from the waterline and the floor
	SpawnMargin   = 100.0 // spawn band is narrower than the swim band
	WanderChance  = 0.02
	WanderKickX   = 0.5
	WanderKickY   = 0.3
	MaxSpeedX     = 3.0
	MaxSpeedY     = 1.0
	SpawnSpeedX   = 3.0
	SpawnSpeedY   = 1.0
)

// Particles
const (
	Gravity = 0.3 // added to vy every frame

	SplashCount = 15
	SplashDecay = 0.02
	CatchCount  = 20
	CatchDecay  = 0.015
)

// Waves
const (
	WaveCount        = 20
	WaveAmplitudeMin = 5.0
	WaveAmplitudeVar = 10.0
	WaveFreqMin      = 0.01
	WaveFreqVar      = 0.02
)
