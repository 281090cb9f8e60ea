package game

import (
	"testing"
	"time"

	"github.com/oshadapramod/snake-game/pkg/config"
)

const (
	normalStep = 0.125 // 1 / (BaseSpeed * normal level)
	easyStep   = 0.25
)

func newTestSession() (*Session, *CollectSink) {
	sink := &CollectSink{}
	s := NewSession(42, sink)
	return s, sink
}

// freeze pins the session clock to a controllable instant.
func freeze(s *Session) *time.Time {
	cur := time.Now()
	s.now = func() time.Time { return cur }
	return &cur
}

func lastEvent(t *testing.T, sink *CollectSink) Event {
	t.Helper()
	events := sink.Drain()
	if len(events) == 0 {
		t.Fatal("expected at least one event")
	}
	return events[len(events)-1]
}

func TestInitialState(t *testing.T) {
	s, _ := newTestSession()

	if s.Phase() != PhaseNotStarted {
		t.Errorf("new session should be NotStarted, got %v", s.Phase())
	}

	snap := s.Snapshot()
	want := []Point{{X: 8, Y: 16}, {X: 7, Y: 16}, {X: 6, Y: 16}}
	if len(snap.Snake) != len(want) {
		t.Fatalf("expected initial length %d, got %d", len(want), len(snap.Snake))
	}
	for i := range want {
		if snap.Snake[i] != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], snap.Snake[i])
		}
	}
	if snap.Score != 0 {
		t.Errorf("expected score 0, got %d", snap.Score)
	}
	if bodyHits(snap.Snake, snap.Food) {
		t.Errorf("initial food %v overlaps the snake", snap.Food)
	}
}

func TestStartTransition(t *testing.T) {
	s, sink := newTestSession()

	if s.SetDirection(DirUp) {
		t.Error("direction intents must be rejected before the game starts")
	}
	if !s.Start() {
		t.Fatal("Start from NotStarted should succeed")
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("expected Playing, got %v", s.Phase())
	}
	if ev := lastEvent(t, sink); ev.Kind != EventStarted {
		t.Errorf("expected started event, got %q", ev.Kind)
	}
	if s.Start() {
		t.Error("Start is a no-op once playing")
	}
}

// TestSingleStepScenario is the reference end-to-end move: 32x32 board, body
// (8,16),(7,16),(6,16) heading east, no food ahead. One logical step yields
// (9,16),(8,16),(7,16).
func TestSingleStepScenario(t *testing.T) {
	s, _ := newTestSession()
	s.Start()
	s.food = Point{X: 0, Y: 0}
	s.special = nil

	s.Advance(normalStep)

	snap := s.Snapshot()
	want := []Point{{X: 9, Y: 16}, {X: 8, Y: 16}, {X: 7, Y: 16}}
	if len(snap.Snake) != 3 {
		t.Fatalf("length should stay 3, got %d", len(snap.Snake))
	}
	for i := range want {
		if snap.Snake[i] != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], snap.Snake[i])
		}
	}
}

func TestAdvanceDrainsAllDueSteps(t *testing.T) {
	s, _ := newTestSession()
	s.SelectDifficulty(DifficultyEasy)
	s.Start()
	s.food = Point{X: 0, Y: 0}

	// One second at 4 cells/s: four steps in a single tick.
	s.Advance(1.0)

	if head := s.Snapshot().Snake[0]; head != (Point{X: 12, Y: 16}) {
		t.Errorf("expected head at (12,16) after 4 steps, got %v", head)
	}
}

func TestPartialStepsAccumulate(t *testing.T) {
	s, _ := newTestSession()
	s.Start()
	s.food = Point{X: 0, Y: 0}

	s.Advance(normalStep / 2)
	if head := s.Snapshot().Snake[0]; head != (Point{X: 8, Y: 16}) {
		t.Errorf("half a step interval should not move the snake, head at %v", head)
	}

	s.Advance(normalStep / 2)
	if head := s.Snapshot().Snake[0]; head != (Point{X: 9, Y: 16}) {
		t.Errorf("accumulated interval should move one cell, head at %v", head)
	}
}

func TestReversalRejected(t *testing.T) {
	s, _ := newTestSession()
	s.Start()
	s.food = Point{X: 0, Y: 0}

	if s.SetDirection(DirLeft) {
		t.Error("reverse of the committed direction must be rejected")
	}
	s.Advance(normalStep)
	if head := s.Snapshot().Snake[0]; head != (Point{X: 9, Y: 16}) {
		t.Errorf("rejected reversal must not alter movement, head at %v", head)
	}

	if !s.SetDirection(DirUp) {
		t.Error("perpendicular turn should be accepted")
	}
	s.Advance(normalStep)
	if head := s.Snapshot().Snake[0]; head != (Point{X: 9, Y: 15}) {
		t.Errorf("expected head at (9,15) after turning up, got %v", head)
	}

	// The reversal guard follows the committed direction.
	if s.SetDirection(DirDown) {
		t.Error("reverse of the newly committed direction must be rejected")
	}
}

func TestLastBufferedDirectionWins(t *testing.T) {
	s, _ := newTestSession()
	s.Start()
	s.food = Point{X: 0, Y: 0}

	s.SetDirection(DirUp)
	s.SetDirection(DirDown) // still legal: committed direction is right
	s.Advance(normalStep)

	if head := s.Snapshot().Snake[0]; head != (Point{X: 8, Y: 17}) {
		t.Errorf("expected the last buffered intent to commit, head at %v", head)
	}
}

func TestEatRegularFood(t *testing.T) {
	s, sink := newTestSession()
	s.Start()
	s.food = Point{X: 9, Y: 16}
	sink.Drain()

	s.Advance(normalStep)

	snap := s.Snapshot()
	if snap.Score != config.RegularReward {
		t.Errorf("expected score %d, got %d", config.RegularReward, snap.Score)
	}
	if len(snap.Snake) != 4 {
		t.Errorf("expected length 4 after eating, got %d", len(snap.Snake))
	}
	if snap.Food == (Point{X: 9, Y: 16}) {
		t.Error("regular food should relocate after being eaten")
	}
	if bodyHits(snap.Snake, snap.Food) {
		t.Errorf("relocated food %v overlaps the snake", snap.Food)
	}

	events := sink.Drain()
	if len(events) != 1 || events[0].Kind != EventAteRegular {
		t.Fatalf("expected a single ateRegular event, got %v", events)
	}
	if events[0].At != (Point{X: 9, Y: 16}) || events[0].Delta != config.RegularReward {
		t.Errorf("ateRegular payload wrong: %+v", events[0])
	}
}

func TestEatSpecialFood(t *testing.T) {
	s, sink := newTestSession()
	cur := freeze(s)
	s.Start()
	s.food = Point{X: 0, Y: 0}
	s.special = &SpecialFood{Pos: Point{X: 9, Y: 16}, SpawnTime: *cur}
	sink.Drain()

	s.Advance(normalStep)

	snap := s.Snapshot()
	if snap.Score != config.SpecialReward {
		t.Errorf("expected score %d, got %d", config.SpecialReward, snap.Score)
	}
	if snap.Special != nil {
		t.Error("special food should be cleared after being eaten")
	}
	if len(snap.Snake) != 4 {
		t.Errorf("first growth segment should land on the eating step, length %d", len(snap.Snake))
	}

	if ev := lastEvent(t, sink); ev.Kind != EventAteSpecial || ev.Delta != config.SpecialReward {
		t.Errorf("expected ateSpecial event with delta %d, got %+v", config.SpecialReward, ev)
	}

	// The second segment arrives on the following step, then length holds.
	s.Advance(normalStep)
	if n := len(s.Snapshot().Snake); n != 5 {
		t.Errorf("expected length 5 after the second growth step, got %d", n)
	}
	s.Advance(normalStep)
	if n := len(s.Snapshot().Snake); n != 5 {
		t.Errorf("expected length to hold at 5, got %d", n)
	}
}

func TestSelfCollisionEndsSession(t *testing.T) {
	s, sink := newTestSession()
	s.Start()
	s.food = Point{X: 0, Y: 0}

	// A hook shape: moving down from (5,5) runs into the neck loop.
	s.snake = &Snake{body: []Point{
		{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 6}, {X: 5, Y: 6}, {X: 6, Y: 6},
	}}
	s.dir = DirRight
	s.pending = DirDown
	before := s.snake.Body()
	sink.Drain()

	s.Advance(normalStep)

	if s.Phase() != PhaseGameOver {
		t.Fatalf("expected GameOver, got %v", s.Phase())
	}
	after := s.snake.Body()
	if len(after) != len(before) {
		t.Fatalf("body must be unchanged on the fatal step")
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("segment %d changed on the fatal step: %v -> %v", i, before[i], after[i])
		}
	}

	snap := s.Snapshot()
	if snap.CrashPoint == nil || *snap.CrashPoint != (Point{X: 5, Y: 6}) {
		t.Errorf("expected crash point (5,6), got %v", snap.CrashPoint)
	}
	if ev := lastEvent(t, sink); ev.Kind != EventCollided || ev.At != (Point{X: 5, Y: 6}) {
		t.Errorf("expected collided event at (5,6), got %+v", ev)
	}

	// The session is frozen: no movement, no intents.
	s.Advance(1.0)
	if head := s.Snapshot().Snake[0]; head != before[0] {
		t.Error("Advance must be a no-op after GameOver")
	}
	if s.SetDirection(DirUp) {
		t.Error("direction intents must be rejected after GameOver")
	}
}

func TestPauseFreezesState(t *testing.T) {
	s, sink := newTestSession()
	s.Start()
	s.food = Point{X: 0, Y: 0}
	sink.Drain()

	if !s.TogglePause() {
		t.Fatal("pause from Playing should succeed")
	}
	if ev := lastEvent(t, sink); ev.Kind != EventPaused {
		t.Errorf("expected paused event, got %q", ev.Kind)
	}

	s.Advance(1.0)
	if head := s.Snapshot().Snake[0]; head != (Point{X: 8, Y: 16}) {
		t.Errorf("Advance while paused must not move the snake, head at %v", head)
	}
	if s.SetDirection(DirUp) {
		t.Error("direction intents must be rejected while paused")
	}

	if !s.TogglePause() {
		t.Fatal("resume from Paused should succeed")
	}
	if ev := lastEvent(t, sink); ev.Kind != EventResumed {
		t.Errorf("expected resumed event, got %q", ev.Kind)
	}
}

func TestPausePreservesSpecialWindow(t *testing.T) {
	s, _ := newTestSession()
	cur := freeze(s)
	s.Start()
	s.food = Point{X: 0, Y: 0}
	s.special = &SpecialFood{Pos: Point{X: 20, Y: 20}, SpawnTime: *cur}

	s.TogglePause()
	*cur = cur.Add(10 * time.Second) // well past the bonus window
	s.TogglePause()

	s.Advance(0.001)
	snap := s.Snapshot()
	if snap.Special == nil {
		t.Fatal("special food must not expire during a pause")
	}
	if snap.Special.Remaining < 0.95 {
		t.Errorf("bonus window should be nearly untouched, remaining %.2f", snap.Special.Remaining)
	}
}

func TestSpecialExpiresWithoutScore(t *testing.T) {
	s, _ := newTestSession()
	cur := freeze(s)
	s.Start()
	s.food = Point{X: 0, Y: 0}
	s.special = &SpecialFood{
		Pos:       Point{X: 20, Y: 20},
		SpawnTime: cur.Add(-config.SpecialDuration - time.Second),
	}

	s.Advance(0.001)

	snap := s.Snapshot()
	if snap.Special != nil {
		t.Error("expired special food should be removed")
	}
	if snap.Score != 0 {
		t.Errorf("expiry must not award score, got %d", snap.Score)
	}
}

func TestDifficultyLocksAfterScoring(t *testing.T) {
	s, _ := newTestSession()

	// Selectable before play and before scoring.
	if !s.SelectDifficulty(DifficultyHard) {
		t.Fatal("difficulty selection should succeed at score 0")
	}
	s.Start()
	if !s.SelectDifficulty(DifficultyNormal) {
		t.Fatal("difficulty selection should still succeed while playing at score 0")
	}

	s.food = Point{X: 9, Y: 16}
	s.Advance(normalStep)
	if s.Score() == 0 {
		t.Fatal("sanity: the snake should have eaten")
	}

	if s.SelectDifficulty(DifficultyEasy) {
		t.Error("difficulty must lock once the session has scored")
	}
	if s.Difficulty() != DifficultyNormal {
		t.Errorf("locked difficulty changed to %v", s.Difficulty())
	}
}

func TestDifficultyChangesStepInterval(t *testing.T) {
	s, _ := newTestSession()
	s.SelectDifficulty(DifficultyEasy)
	s.Start()
	s.food = Point{X: 0, Y: 0}

	// At easy speed half an interval is not enough to move.
	s.Advance(easyStep / 2)
	if head := s.Snapshot().Snake[0]; head != (Point{X: 8, Y: 16}) {
		t.Errorf("snake moved early at easy speed, head at %v", head)
	}
	s.Advance(easyStep / 2)
	if head := s.Snapshot().Snake[0]; head != (Point{X: 9, Y: 16}) {
		t.Errorf("expected one step after a full easy interval, head at %v", head)
	}
}

func TestInvalidDifficultyRejected(t *testing.T) {
	s, _ := newTestSession()
	if s.SelectDifficulty(0) || s.SelectDifficulty(99) {
		t.Error("out-of-range difficulty levels must be rejected")
	}
}

func TestRestartIsIdempotent(t *testing.T) {
	s, _ := newTestSession()
	s.SelectDifficulty(DifficultyHard)
	s.SelectSkin(SkinNeon)
	s.Start()
	s.food = Point{X: 9, Y: 16}
	s.Advance(normalStep) // eat, grow, score

	initial := []Point{{X: 8, Y: 16}, {X: 7, Y: 16}, {X: 6, Y: 16}}
	for run := 0; run < 2; run++ {
		s.Restart()
		snap := s.Snapshot()
		if snap.Score != 0 {
			t.Errorf("restart %d: expected score 0, got %d", run, snap.Score)
		}
		if s.Phase() != PhasePlaying {
			t.Errorf("restart %d: expected Playing, got %v", run, s.Phase())
		}
		if len(snap.Snake) != config.InitialLength {
			t.Fatalf("restart %d: expected length %d, got %d", run, config.InitialLength, len(snap.Snake))
		}
		for i := range initial {
			if snap.Snake[i] != initial[i] {
				t.Errorf("restart %d: segment %d is %v, want %v", run, i, snap.Snake[i], initial[i])
			}
		}
		// Selections survive the restart.
		if s.Difficulty() != DifficultyHard {
			t.Errorf("restart %d: difficulty reset to %v", run, s.Difficulty())
		}
		if s.Skin() != SkinNeon {
			t.Errorf("restart %d: skin reset to %v", run, s.Skin())
		}
	}
}

func TestQuitGuards(t *testing.T) {
	s, sink := newTestSession()
	s.Start()

	if s.Quit() {
		t.Error("quit must be rejected while actively playing")
	}

	s.TogglePause()
	sink.Drain()
	if !s.Quit() {
		t.Fatal("quit from Paused should succeed")
	}
	if s.Phase() != PhaseNotStarted {
		t.Errorf("expected NotStarted after quit, got %v", s.Phase())
	}
	if ev := lastEvent(t, sink); ev.Kind != EventQuit {
		t.Errorf("expected quit event, got %q", ev.Kind)
	}
	if s.Snapshot().Score != 0 {
		t.Error("quit must reinitialize run state")
	}
}

func TestSkinIsNeverGated(t *testing.T) {
	s, _ := newTestSession()

	s.SelectSkin(SkinMono)
	s.Start()
	s.food = Point{X: 9, Y: 16}
	s.Advance(normalStep)

	// Scoring locks difficulty but never the skin.
	s.SelectSkin(SkinNeon)
	if s.Snapshot().Skin != string(SkinNeon) {
		t.Errorf("skin selection should pass through, got %q", s.Snapshot().Skin)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestSession()
	s.Start()

	snap := s.Snapshot()
	snap.Snake[0] = Point{X: 0, Y: 0}

	if s.Snapshot().Snake[0] == (Point{X: 0, Y: 0}) {
		t.Error("mutating a snapshot must not affect session state")
	}
}

func BenchmarkAdvance(b *testing.B) {
	s := NewSession(7, nil)
	s.Start()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Advance(normalStep)
		if s.Phase() == PhaseGameOver {
			s.Restart()
		}
	}
}
