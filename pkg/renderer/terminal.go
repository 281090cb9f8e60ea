package renderer

import (
	"fmt"
	"strings"

	"github.com/oshadapramod/snake-game/pkg/config"
	"github.com/oshadapramod/snake-game/pkg/game"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellHead
	cellBody
	cellFood
	cellSpecial
	cellCrash
	cellSpark
)

// charset is one skin's cell glyphs. Each glyph is two columns wide.
type charset struct {
	Empty   string
	Frame   string
	Head    string
	Body    string
	Food    string
	Special string
	Crash   string
	Spark   string
}

var skins = map[game.Skin]charset{
	game.SkinClassic: {
		Empty: "  ", Frame: "⬜", Head: "🟢", Body: "🟩",
		Food: "🔴", Special: "🌟", Crash: "💥", Spark: "✨",
	},
	game.SkinNeon: {
		Empty: "  ", Frame: "🟪", Head: "🔵", Body: "🟦",
		Food: "🟡", Special: "💠", Crash: "💥", Spark: "⚡",
	},
	game.SkinMono: {
		Empty: "  ", Frame: "██", Head: "▓▓", Body: "▒▒",
		Food: "()", Special: "$$", Crash: "XX", Spark: "··",
	},
}

func skinFor(name string) charset {
	if cs, ok := skins[game.Skin(name)]; ok {
		return cs
	}
	return skins[game.SkinClassic]
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, config.Rows)
	for i := range board {
		board[i] = make([]int, config.Cols)
	}

	return &TerminalRenderer{board: board}
}

// clearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	fmt.Print("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Print("\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Print("\033[?25l")
}

// Render draws one frame to the terminal.
func (r *TerminalRenderer) Render(snap game.Snapshot, field *ParticleField, message string, autopilot bool) {
	r.clearScreen()
	fmt.Print(r.Frame(snap, field, message, autopilot))
}

// Frame builds one frame as a string. Split from Render so it can be
// benchmarked and tested without touching stdout.
func (r *TerminalRenderer) Frame(snap game.Snapshot, field *ParticleField, message string, autopilot bool) string {
	r.buffer.Reset()
	cs := skinFor(snap.Skin)

	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	if field != nil {
		for _, p := range field.Cells() {
			r.board[p.Y][p.X] = cellSpark
		}
	}

	r.board[snap.Food.Y][snap.Food.X] = cellFood
	if snap.Special != nil {
		r.board[snap.Special.Pos.Y][snap.Special.Pos.X] = cellSpecial
	}

	for i, p := range snap.Snake {
		if i == 0 {
			r.board[p.Y][p.X] = cellHead
		} else {
			r.board[p.Y][p.X] = cellBody
		}
	}

	if snap.CrashPoint != nil {
		r.board[snap.CrashPoint.Y][snap.CrashPoint.X] = cellCrash
	}

	r.buffer.WriteString("\n  🐍 SNAKE ON A TORUS 🐍\n")

	pilotStr := ""
	if autopilot {
		pilotStr = "  |  🤖 AUTOPILOT"
	}
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Level: %s  |  Skin: %s%s\n",
		snap.Score, game.Difficulty(snap.Difficulty), snap.Skin, pilotStr))

	if snap.Special != nil {
		r.buffer.WriteString(fmt.Sprintf("  🌟 Bonus food! %s\n", bonusBar(snap.Special.Remaining)))
	} else if message != "" {
		r.buffer.WriteString("  " + message + "\n")
	} else {
		r.buffer.WriteString("\n")
	}
	r.buffer.WriteString("\n")

	// Decorative frame only: both board edges wrap, nothing collides here.
	edge := "  " + strings.Repeat(cs.Frame, config.Cols+2) + "\n"
	r.buffer.WriteString(edge)
	for _, row := range r.board {
		r.buffer.WriteString("  " + cs.Frame)
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(cs.Empty)
			case cellHead:
				r.buffer.WriteString(cs.Head)
			case cellBody:
				r.buffer.WriteString(cs.Body)
			case cellFood:
				r.buffer.WriteString(cs.Food)
			case cellSpecial:
				r.buffer.WriteString(cs.Special)
			case cellCrash:
				r.buffer.WriteString(cs.Crash)
			case cellSpark:
				r.buffer.WriteString(cs.Spark)
			}
		}
		r.buffer.WriteString(cs.Frame + "\n")
	}
	r.buffer.WriteString(edge)

	r.buffer.WriteString("\n  WASD/arrows to move, P pause, R restart, Q quit\n")
	r.buffer.WriteString("  1-3 difficulty (until first bite), T skin, O autopilot\n")

	switch snap.Phase {
	case game.PhaseNotStarted.String():
		r.buffer.WriteString("\n  Press Enter or any direction to start\n")
	case game.PhasePaused.String():
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	case game.PhaseGameOver.String():
		r.buffer.WriteString("\n  💀 GAME OVER! Press R to restart or Q to quit\n")
	}

	return r.buffer.String()
}

// bonusBar renders the special food's remaining window as a ten-slot bar.
func bonusBar(remaining float64) string {
	if remaining < 0 {
		remaining = 0
	}
	if remaining > 1 {
		remaining = 1
	}
	filled := int(remaining * 10)
	return "[" + strings.Repeat("■", filled) + strings.Repeat(" ", 10-filled) + "]"
}
