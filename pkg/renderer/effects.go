package renderer

import (
	"fmt"

	"github.com/oshadapramod/snake-game/pkg/game"
)

// Burst sizes per event.
const (
	regularBurst = 8
	specialBurst = 20
	crashBurst   = 30
)

// Effects is the render layer's event sink: it turns the session's discrete
// events into particle bursts and a status-line message.
type Effects struct {
	Field   *ParticleField
	message string
}

func NewEffects(seed int64) *Effects {
	return &Effects{Field: NewParticleField(seed)}
}

// Message returns the most recent event message.
func (e *Effects) Message() string {
	return e.message
}

func (e *Effects) Started() { e.message = "" }
func (e *Effects) Paused()  {}
func (e *Effects) Resumed() {}
func (e *Effects) Quit()    { e.message = "" }

func (e *Effects) AteRegular(at game.Point, delta int) {
	e.Field.Burst(at, regularBurst)
	e.message = fmt.Sprintf("+%d", delta)
}

func (e *Effects) AteSpecial(at game.Point, delta int) {
	e.Field.Burst(at, specialBurst)
	e.message = fmt.Sprintf("🌟 BONUS +%d!", delta)
}

func (e *Effects) Collided(at game.Point) {
	e.Field.Burst(at, crashBurst)
	e.message = ""
}
