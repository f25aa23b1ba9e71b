// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/audio"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
	width        int
	height       int
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	levelPath := flag.String("level", config.DefaultLevelPath, "level file")
	defsPath := flag.String("defs", config.DefaultDefsPath, "definitions file")
	mute := flag.Bool("mute", false, "disable sound")
	spawnKind := flag.String("spawn", "enemy_1", "enemy queued by the N key")
	flag.Parse()

	lib, err := defs.LoadLibrary(*defsPath)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}
	lvl, err := config.LoadLevel(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	g, err := app.LoadLevel(lvl, lib)
	if err != nil {
		log.Fatalf("Failed to start level: %v", err)
	}

	var sound *audio.SoundManager
	if !*mute {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		}
		defer sound.Cleanup()
	}

	sm := state.NewStateMachine()
	gs := state.NewGameState(sm, g, app.Markers(lvl.Markers), sound, *spawnKind)
	sm.SetState(gs)

	width, height := gs.Layout()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle + " - " + lvl.Name)
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, width: width, height: height}); err != nil {
		log.Fatal(err)
	}
}
