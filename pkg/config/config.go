package config

import "time"

// Game board dimensions. The board is a torus: both axes wrap around.
const (
	Cols = 32
	Rows = 32
)

// Snake settings
const (
	InitialLength = 3
)

// Scoring (flat rewards, not level-scaled)
const (
	RegularReward = 10
	SpecialReward = 40
)

// Special (bonus) food settings
const (
	SpecialChance        = 0.18 // chance per regular-food spawn event
	SpecialDuration      = 8 * time.Second
	SpecialPlaceAttempts = 200
)

// Speed settings. The snake moves BaseSpeed*level cells per second.
const (
	BaseSpeed = 4.0
	MinLevel  = 1
	MaxLevel  = 3
)

// Client loop pacing
const (
	BaseTick = 16 * time.Millisecond // ~60 FPS
)
