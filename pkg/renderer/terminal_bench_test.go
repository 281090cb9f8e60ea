package renderer

import (
	"strings"
	"testing"

	"github.com/oshadapramod/snake-game/pkg/game"
)

func sampleSnapshot() game.Snapshot {
	snake := make([]game.Point, 20)
	for i := range snake {
		snake[i] = game.Point{X: 10 - i%10, Y: 10 + i/10}
	}
	return game.Snapshot{
		Snake:      snake,
		Food:       game.Point{X: 3, Y: 3},
		Special:    &game.SpecialInfo{Pos: game.Point{X: 20, Y: 20}, Remaining: 0.5},
		Score:      120,
		Phase:      game.PhasePlaying.String(),
		Difficulty: int(game.DifficultyNormal),
		Skin:       string(game.SkinClassic),
	}
}

func TestFrameContainsBoardAndStats(t *testing.T) {
	r := NewTerminalRenderer()
	frame := r.Frame(sampleSnapshot(), nil, "", false)

	if !strings.Contains(frame, "Score: 120") {
		t.Error("frame is missing the score line")
	}
	if !strings.Contains(frame, "Bonus food!") {
		t.Error("frame is missing the bonus countdown")
	}
}

func TestFrameUnknownSkinFallsBack(t *testing.T) {
	r := NewTerminalRenderer()
	snap := sampleSnapshot()
	snap.Skin = "no-such-skin"

	frame := r.Frame(snap, nil, "", false)
	if !strings.Contains(frame, skins[game.SkinClassic].Head) {
		t.Error("unknown skin should fall back to classic glyphs")
	}
}

func BenchmarkFrame(b *testing.B) {
	r := NewTerminalRenderer()
	snap := sampleSnapshot()
	field := NewParticleField(1)
	field.Burst(game.Point{X: 3, Y: 3}, 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Frame(snap, field, "+10", false)
	}
}
