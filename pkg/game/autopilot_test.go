package game

import "testing"

func TestAutopilotChasesFood(t *testing.T) {
	snap := Snapshot{
		Snake: []Point{{X: 8, Y: 16}, {X: 7, Y: 16}, {X: 6, Y: 16}},
		Food:  Point{X: 12, Y: 16},
	}

	dir, ok := Autopilot{}.Decide(snap)
	if !ok {
		t.Fatal("expected a decision with open board")
	}
	if dir != DirRight {
		t.Errorf("expected right toward the food, got %v", dir)
	}
}

func TestAutopilotPrefersSpecialFood(t *testing.T) {
	snap := Snapshot{
		Snake:   []Point{{X: 8, Y: 16}, {X: 7, Y: 16}, {X: 6, Y: 16}},
		Food:    Point{X: 12, Y: 16},
		Special: &SpecialInfo{Pos: Point{X: 8, Y: 10}, Remaining: 0.5},
	}

	dir, ok := Autopilot{}.Decide(snap)
	if !ok {
		t.Fatal("expected a decision with open board")
	}
	if dir != DirUp {
		t.Errorf("expected up toward the special food, got %v", dir)
	}
}

func TestAutopilotAvoidsBody(t *testing.T) {
	// Food is straight ahead but the cell in between belongs to the body.
	snap := Snapshot{
		Snake: []Point{{X: 8, Y: 16}, {X: 9, Y: 16}, {X: 9, Y: 15}, {X: 8, Y: 15}},
		Food:  Point{X: 10, Y: 16},
	}

	dir, ok := Autopilot{}.Decide(snap)
	if !ok {
		t.Fatal("expected a decision with escape routes available")
	}
	next := Wrap(snap.Snake[0], dir)
	if bodyHits(snap.Snake, next) {
		t.Errorf("autopilot steered into the body via %v", dir)
	}
}

func TestAutopilotUsesWrapDistance(t *testing.T) {
	// The food is one wrap step to the left; going right would take 30 moves.
	snap := Snapshot{
		Snake: []Point{{X: 0, Y: 16}},
		Food:  Point{X: 31, Y: 16},
	}

	dir, ok := Autopilot{}.Decide(snap)
	if !ok {
		t.Fatal("expected a decision")
	}
	if dir != DirLeft {
		t.Errorf("expected left across the seam, got %v", dir)
	}
}

func TestAutopilotBoxedIn(t *testing.T) {
	head := Point{X: 8, Y: 16}
	snap := Snapshot{
		Snake: []Point{
			head,
			Wrap(head, DirUp), Wrap(head, DirDown), Wrap(head, DirLeft), Wrap(head, DirRight),
		},
		Food: Point{X: 0, Y: 0},
	}

	if _, ok := (Autopilot{}).Decide(snap); ok {
		t.Error("expected no decision when every neighbor is body")
	}
}
