package game

import (
	"github.com/oshadapramod/snake-game/pkg/config"
)

// Point represents a cell coordinate on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// The four movement directions as unit vectors.
var (
	DirUp    = Point{X: 0, Y: -1}
	DirDown  = Point{X: 0, Y: 1}
	DirLeft  = Point{X: -1, Y: 0}
	DirRight = Point{X: 1, Y: 0}
)

// isUnitDir reports whether d is one of the four movement directions.
func isUnitDir(d Point) bool {
	return d == DirUp || d == DirDown || d == DirLeft || d == DirRight
}

// Phase is the session's coarse lifecycle state. Exactly one is active.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "notStarted"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Difficulty is the selected speed level. It multiplies the base speed and
// locks once the session has scored.
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyNormal Difficulty = 2
	DifficultyHard   Difficulty = 3
)

// Speed returns the movement rate in cells per second.
func (d Difficulty) Speed() float64 {
	return config.BaseSpeed * float64(d)
}

func (d Difficulty) Valid() bool {
	return d >= config.MinLevel && d <= config.MaxLevel
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Skin is a purely cosmetic selector carried in the snapshot for the render
// layer. The core never interprets it.
type Skin string

const (
	SkinClassic Skin = "classic"
	SkinNeon    Skin = "neon"
	SkinMono    Skin = "mono"
)

// Next cycles through the available skins.
func (s Skin) Next() Skin {
	switch s {
	case SkinClassic:
		return SkinNeon
	case SkinNeon:
		return SkinMono
	default:
		return SkinClassic
	}
}

// SpecialInfo is a DTO describing the active bonus food, if any.
type SpecialInfo struct {
	Pos       Point   `json:"pos"`
	Remaining float64 `json:"remaining"` // fraction of the bonus window left, 0..1
}

// Snapshot is a copy of the externally observable state, taken once per tick
// by rendering/audio/UI collaborators.
type Snapshot struct {
	Snake      []Point      `json:"snake"`
	Food       Point        `json:"food"`
	Special    *SpecialInfo `json:"special,omitempty"`
	Score      int          `json:"score"`
	Phase      string       `json:"phase"`
	Difficulty int          `json:"difficulty"`
	Skin       string       `json:"skin"`
	CrashPoint *Point       `json:"crashPoint,omitempty"`
}

// BoardConfig is a DTO for board settings sent to web clients on connect.
type BoardConfig struct {
	Cols         int `json:"cols"`
	Rows         int `json:"rows"`
	BaseTickMs   int `json:"baseTickMs"`
	MaxLevel     int `json:"maxLevel"`
	SpecialSecs  int `json:"specialSecs"`
	RegularScore int `json:"regularScore"`
	SpecialScore int `json:"specialScore"`
}
