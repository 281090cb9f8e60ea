package renderer

import (
	"math"
	"math/rand"

	"github.com/oshadapramod/snake-game/pkg/config"
	"github.com/oshadapramod/snake-game/pkg/game"
)

// Particle is a render-side spark. The core never sees these; it only emits
// the events that trigger bursts.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64
	Life   float64
}

// ParticleField owns the live particles for one client.
type ParticleField struct {
	rng   *rand.Rand
	parts []Particle
}

func NewParticleField(seed int64) *ParticleField {
	return &ParticleField{rng: rand.New(rand.NewSource(seed))}
}

// Burst spawns n particles radiating out of cell at.
func (f *ParticleField) Burst(at game.Point, n int) {
	for i := 0; i < n; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		speed := 2 + f.rng.Float64()*6 // cells per second
		f.parts = append(f.parts, Particle{
			X:    float64(at.X),
			Y:    float64(at.Y),
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: 0.3 + f.rng.Float64()*0.4,
		})
	}
}

// Update ages and moves all particles by dt seconds, dropping expired ones.
func (f *ParticleField) Update(dt float64) {
	alive := f.parts[:0]
	for _, p := range f.parts {
		p.Age += dt
		if p.Age >= p.Life {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		alive = append(alive, p)
	}
	f.parts = alive
}

// Cells returns the board cells currently covered by a particle, wrapped onto
// the torus like everything else.
func (f *ParticleField) Cells() []game.Point {
	out := make([]game.Point, 0, len(f.parts))
	for _, p := range f.parts {
		x := ((int(math.Round(p.X)) % config.Cols) + config.Cols) % config.Cols
		y := ((int(math.Round(p.Y)) % config.Rows) + config.Rows) % config.Rows
		out = append(out, game.Point{X: x, Y: y})
	}
	return out
}

// Len returns the live particle count.
func (f *ParticleField) Len() int {
	return len(f.parts)
}
