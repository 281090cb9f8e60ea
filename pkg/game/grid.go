package game

import "github.com/oshadapramod/snake-game/pkg/config"

// Wrap moves p one cell along d, wrapping each axis independently so that
// leaving one edge re-enters the opposite one.
func Wrap(p, d Point) Point {
	return Point{
		X: (p.X + d.X + config.Cols) % config.Cols,
		Y: (p.Y + d.Y + config.Rows) % config.Rows,
	}
}

// TorusDist returns the Manhattan distance between a and b on the wrapped
// board, taking the shorter way around on each axis.
func TorusDist(a, b Point) int {
	dx := absInt(a.X - b.X)
	if config.Cols-dx < dx {
		dx = config.Cols - dx
	}
	dy := absInt(a.Y - b.Y)
	if config.Rows-dy < dy {
		dy = config.Rows - dy
	}
	return dx + dy
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
