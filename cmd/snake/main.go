package main

import (
	"fmt"
	"time"

	"github.com/oshadapramod/snake-game/pkg/config"
	"github.com/oshadapramod/snake-game/pkg/game"
	"github.com/oshadapramod/snake-game/pkg/input"
	"github.com/oshadapramod/snake-game/pkg/renderer"
)

func main() {
	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	// Initialize renderer
	render := renderer.NewTerminalRenderer()
	render.HideCursor()
	defer render.ShowCursor()

	// Create the session with its own RNG stream and the render-side effects
	// as event sink.
	seed := time.Now().UnixNano()
	effects := renderer.NewEffects(seed)
	sess := game.NewSession(seed, effects)

	inputChan := inputHandler.GetInputChan()

	ticker := time.NewTicker(config.BaseTick)
	defer ticker.Stop()

	var (
		autopilot bool
		pilot     game.Autopilot
		last      = time.Now()
	)

	// Initial render
	render.Render(sess.Snapshot(), effects.Field, effects.Message(), autopilot)

	// Main game loop
	for {
		select {
		case in := <-inputChan:
			if input.IsQuit(in) {
				sess.Quit()
				fmt.Println("\n  Thanks for playing! 👋")
				return
			}

			if input.IsRestart(in) {
				sess.Restart()
			}
			if input.IsPause(in) {
				sess.TogglePause()
			}
			if input.IsStart(in) {
				sess.Start()
			}
			if d, ok := input.ParseDifficulty(in); ok {
				sess.SelectDifficulty(d)
			}
			if input.IsSkinCycle(in) {
				sess.SelectSkin(sess.Skin().Next())
			}
			if input.IsAutopilot(in) {
				autopilot = !autopilot
			}

			if dir, ok := input.ParseDirection(in); ok {
				sess.Start() // first direction key doubles as start
				sess.SetDirection(dir)
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			if autopilot && sess.Phase() == game.PhasePlaying {
				if dir, ok := pilot.Decide(sess.Snapshot()); ok {
					sess.SetDirection(dir)
				}
			}

			sess.Advance(dt)
			effects.Field.Update(dt)
			render.Render(sess.Snapshot(), effects.Field, effects.Message(), autopilot)
		}
	}
}
