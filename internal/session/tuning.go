package session

import "time"

const (
	FishCount = 8

	PlayerY        = 100.0
	HookRestOffset = 50.0 // idle hook hangs this far below the player
	WaterlineRatio = 0.4  // waterline as a fraction of surface height
	CastFloor      = 50.0 // cast targets never land shallower than waterline + CastFloor

	PowerPerFrame   = 2.0
	MaxPower        = 100.0
	PowerToDistance = 8.0
	MaxCastDistance = 400.0

	RespawnDelay = 2000 * time.Millisecond
)
