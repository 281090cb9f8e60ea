package game

// Controller decides the next direction intent for a session. It sees only
// the public snapshot, the same view a human player gets.
type Controller interface {
	Decide(snap Snapshot) (Point, bool)
}

// Autopilot is the demo-mode controller: a greedy chaser that heads for the
// special food while its window is open, otherwise for the regular food,
// picking whichever safe move shortens the toroidal distance most.
type Autopilot struct{}

func (Autopilot) Decide(snap Snapshot) (Point, bool) {
	if len(snap.Snake) == 0 {
		return Point{}, false
	}
	head := snap.Snake[0]

	target := snap.Food
	if snap.Special != nil {
		target = snap.Special.Pos
	}

	var (
		best     Point
		bestDist = -1
	)
	for _, d := range []Point{DirUp, DirDown, DirLeft, DirRight} {
		next := Wrap(head, d)
		if bodyHits(snap.Snake, next) {
			continue
		}
		dist := TorusDist(next, target)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	if bestDist < 0 {
		// Boxed in: no safe move exists, keep whatever the session has.
		return Point{}, false
	}
	return best, true
}

func bodyHits(body []Point, p Point) bool {
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}
