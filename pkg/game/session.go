package game

import (
	"math/rand"
	"time"

	"github.com/oshadapramod/snake-game/pkg/config"
)

// Session owns all mutable game state for one run of the game: snake, food,
// score, clock and phase. It is single-threaded by construction: one loop
// drives it through Advance and the input intents, and collaborators only see
// copies via Snapshot. The RNG stream and clock source are per-session so
// runs are reproducible under test.
type Session struct {
	rng  *rand.Rand
	now  func() time.Time
	sink Sink

	phase      Phase
	snake      *Snake
	dir        Point // direction committed by the last performed step
	pending    Point // direction the next step will commit
	food       Point
	special    *SpecialFood
	score      int
	difficulty Difficulty
	skin       Skin
	clock      StepClock

	pausedTotal time.Duration // completed pause intervals
	pauseStart  time.Time
	crash       Point // cell of the fatal step, valid while GameOver
}

// NewSession creates a session in the NotStarted phase. A nil sink is
// replaced with NopSink.
func NewSession(seed int64, sink Sink) *Session {
	if sink == nil {
		sink = NopSink{}
	}
	s := &Session{
		rng:        rand.New(rand.NewSource(seed)),
		now:        time.Now,
		sink:       sink,
		difficulty: DifficultyNormal,
		skin:       SkinClassic,
	}
	s.reset()
	return s
}

// reset reinitializes every per-run entity. Difficulty and skin survive; they
// are selections, not run state.
func (s *Session) reset() {
	head := Point{X: config.Cols / 4, Y: config.Rows / 2}
	s.snake = NewSnake(head, DirRight, config.InitialLength)
	s.dir = DirRight
	s.pending = DirRight
	s.special = nil
	s.score = 0
	s.clock.Reset()
	s.pausedTotal = 0
	s.crash = Point{}
	s.food = PlaceFood(s.rng, s.cellBlocked)
}

// cellBlocked reports whether p may not receive a food spawn.
func (s *Session) cellBlocked(p Point) bool {
	if s.snake.Hits(p) {
		return true
	}
	return s.special != nil && s.special.Pos == p
}

// Start begins play from the NotStarted phase.
func (s *Session) Start() bool {
	if s.phase != PhaseNotStarted {
		return false
	}
	s.phase = PhasePlaying
	s.sink.Started()
	return true
}

// TogglePause flips between Playing and Paused. Ignored in any other phase.
// All run state freezes while paused, including the special-food timer.
func (s *Session) TogglePause() bool {
	switch s.phase {
	case PhasePlaying:
		s.phase = PhasePaused
		s.pauseStart = s.now()
		s.sink.Paused()
	case PhasePaused:
		s.pausedTotal += s.now().Sub(s.pauseStart)
		s.phase = PhasePlaying
		s.sink.Resumed()
	default:
		return false
	}
	return true
}

// Restart reinitializes every entity and immediately enters Playing, keeping
// the currently selected difficulty and skin. Calling it repeatedly yields
// the same initial state each time.
func (s *Session) Restart() {
	s.reset()
	s.phase = PhasePlaying
	s.sink.Started()
}

// Quit abandons the current run from Paused or GameOver, reinitializing to
// the NotStarted phase. Ignored while actively playing.
func (s *Session) Quit() bool {
	if s.phase != PhasePaused && s.phase != PhaseGameOver {
		return false
	}
	s.reset()
	s.phase = PhaseNotStarted
	s.sink.Quit()
	return true
}

// SetDirection buffers a direction intent for the next step. Rejected while
// not Playing, for non-unit vectors, and for the exact reverse of the last
// committed direction (which would fold the head into the neck).
func (s *Session) SetDirection(d Point) bool {
	if s.phase != PhasePlaying {
		return false
	}
	if !isUnitDir(d) {
		return false
	}
	if d.X == -s.dir.X && d.Y == -s.dir.Y {
		return false
	}
	s.pending = d
	return true
}

// SelectDifficulty changes the speed level. Allowed only while the current
// run has not scored yet, so speed cannot be retuned mid-run.
func (s *Session) SelectDifficulty(d Difficulty) bool {
	if s.score > 0 || !d.Valid() {
		return false
	}
	s.difficulty = d
	return true
}

// SelectSkin records the cosmetic selection. Never gated; the core only
// passes it through to the snapshot.
func (s *Session) SelectSkin(sk Skin) {
	s.skin = sk
}

// Advance drives the simulation by dt seconds of frame time. All due logical
// steps run first, then the tick's time-based housekeeping (special-food
// expiry). A no-op outside the Playing phase.
func (s *Session) Advance(dt float64) {
	if s.phase != PhasePlaying {
		return
	}
	steps := s.clock.Tick(dt, s.stepInterval())
	for i := 0; i < steps && s.phase == PhasePlaying; i++ {
		s.step()
	}
	s.expireSpecial()
}

func (s *Session) stepInterval() float64 {
	return 1 / s.difficulty.Speed()
}

// step performs one logical move: commit the buffered direction, resolve
// collision, then consumption, then the deferred tail pop.
func (s *Session) step() {
	s.dir = s.pending
	next := Wrap(s.snake.Head(), s.dir)

	if s.snake.Hits(next) {
		s.phase = PhaseGameOver
		s.crash = next
		s.sink.Collided(next)
		return
	}

	s.snake.Push(next)

	// Special first: bonus consumption wins event ordering even though the
	// two foods never share a cell.
	switch {
	case s.special != nil && next == s.special.Pos:
		s.score += config.SpecialReward
		s.special = nil
		s.snake.Grow(2)
		s.sink.AteSpecial(next, config.SpecialReward)
	case next == s.food:
		s.score += config.RegularReward
		s.snake.Grow(1)
		s.sink.AteRegular(next, config.RegularReward)
		s.food = PlaceFood(s.rng, s.cellBlocked)
		if p, ok := MaybeSpawnSpecial(s.rng, s.food, s.snake.Hits); ok {
			s.special = &SpecialFood{
				Pos:           p,
				SpawnTime:     s.now(),
				PausedAtSpawn: s.pausedTotal,
			}
		}
	}

	s.snake.Settle()
}

// expireSpecial clears the bonus food once its window closes. No score.
func (s *Session) expireSpecial() {
	if s.special == nil {
		return
	}
	if s.special.Expired(s.now(), s.totalPaused()) {
		s.special = nil
	}
}

// totalPaused returns accumulated pause time including a pause in progress.
func (s *Session) totalPaused() time.Duration {
	total := s.pausedTotal
	if s.phase == PhasePaused {
		total += s.now().Sub(s.pauseStart)
	}
	return total
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Difficulty returns the selected speed level.
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// Skin returns the selected skin.
func (s *Session) Skin() Skin {
	return s.skin
}

// Snapshot copies the externally observable state for this tick.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Snake:      s.snake.Body(),
		Food:       s.food,
		Score:      s.score,
		Phase:      s.phase.String(),
		Difficulty: int(s.difficulty),
		Skin:       string(s.skin),
	}
	if s.special != nil {
		snap.Special = &SpecialInfo{
			Pos:       s.special.Pos,
			Remaining: s.special.RemainingFraction(s.now(), s.totalPaused()),
		}
	}
	if s.phase == PhaseGameOver {
		crash := s.crash
		snap.CrashPoint = &crash
	}
	return snap
}

// Board returns the static board settings DTO sent to clients on connect.
func Board() BoardConfig {
	return BoardConfig{
		Cols:         config.Cols,
		Rows:         config.Rows,
		BaseTickMs:   int(config.BaseTick.Milliseconds()),
		MaxLevel:     config.MaxLevel,
		SpecialSecs:  int(config.SpecialDuration.Seconds()),
		RegularScore: config.RegularReward,
		SpecialScore: config.SpecialReward,
	}
}
