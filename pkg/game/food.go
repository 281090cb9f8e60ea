package game

import (
	"math/rand"
	"time"

	"github.com/oshadapramod/snake-game/pkg/config"
)

// PlaceFood samples uniformly random cells until one not covered by occupied
// is found. Precondition: at least one free cell exists. A snake covering the
// entire 32x32 board would spin forever here; practical runs never get close,
// so the degenerate case is documented rather than guarded.
func PlaceFood(rng *rand.Rand, occupied func(Point) bool) Point {
	for {
		p := Point{X: rng.Intn(config.Cols), Y: rng.Intn(config.Rows)}
		if !occupied(p) {
			return p
		}
	}
}

// MaybeSpawnSpecial rolls the bonus-food chance for one regular-food spawn
// event. On a successful roll it tries a bounded number of samples for a cell
// distinct from the regular food and not covered by occupied. If the budget
// runs out it colocates with the regular food, never with the snake. The
// second return value is false when no special spawns this cycle.
func MaybeSpawnSpecial(rng *rand.Rand, food Point, occupied func(Point) bool) (Point, bool) {
	if rng.Float64() >= config.SpecialChance {
		return Point{}, false
	}
	for attempts := 0; attempts < config.SpecialPlaceAttempts; attempts++ {
		p := Point{X: rng.Intn(config.Cols), Y: rng.Intn(config.Rows)}
		if p != food && !occupied(p) {
			return p, true
		}
	}
	return food, true
}

// SpecialFood is the time-limited bonus food. At most one exists at a time.
type SpecialFood struct {
	Pos           Point         `json:"pos"`
	SpawnTime     time.Time     `json:"-"`
	PausedAtSpawn time.Duration `json:"-"` // total session pause time when spawned
}

// elapsed returns how long the special has been live, excluding pause time
// accrued after it spawned.
func (f *SpecialFood) elapsed(now time.Time, totalPaused time.Duration) time.Duration {
	pausedSinceSpawn := totalPaused - f.PausedAtSpawn
	return now.Sub(f.SpawnTime) - pausedSinceSpawn
}

// Expired reports whether the bonus window has closed.
func (f *SpecialFood) Expired(now time.Time, totalPaused time.Duration) bool {
	return f.elapsed(now, totalPaused) >= config.SpecialDuration
}

// RemainingFraction returns the unexpired share of the bonus window, 0..1.
func (f *SpecialFood) RemainingFraction(now time.Time, totalPaused time.Duration) float64 {
	remaining := config.SpecialDuration - f.elapsed(now, totalPaused)
	if remaining <= 0 {
		return 0
	}
	return float64(remaining) / float64(config.SpecialDuration)
}
