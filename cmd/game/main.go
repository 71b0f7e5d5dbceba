// cmd/game/main.go
package main

import (
	"os"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"vector-defense/internal/audio"
	"vector-defense/internal/config"
	"vector-defense/internal/defs"
	"vector-defense/internal/score"
	"vector-defense/internal/state"
)

func main() {
	log.SetReportTimestamp(true)
	if os.Getenv("VECTOR_DEFENSE_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Warn("loading settings, using defaults", "err", err)
	}
	if err := defs.Load(); err != nil {
		log.Fatal("loading definitions", "err", err)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Vector Defense | Prime Edition")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)
	// Escape is used to leave the pause screen, not to quit.
	rl.SetExitKey(rl.KeyNull)

	env := &state.Env{
		Settings: settings,
		Audio:    audio.NewService(settings.Audio.Enabled, settings.Audio.Volume),
		Scores:   score.NewStore(settings.ScoreFile),
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, env))

	for !rl.WindowShouldClose() {
		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		sm.Update(deltaTime)

		rl.BeginDrawing()
		sm.Draw()
		rl.EndDrawing()
	}
}
