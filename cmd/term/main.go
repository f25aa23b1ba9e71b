// cmd/term/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/pkg/render"
	"go-tower-sim/pkg/tilemap"

	"github.com/gdamore/tcell/v2"
)

type termGame struct {
	screen   tcell.Screen
	game     *app.Game
	renderer *render.TermRenderer
	markers  tilemap.Markers
	spawn    string
	speed    int
	paused   bool
}

func main() {
	levelPath := flag.String("level", config.DefaultLevelPath, "level file")
	defsPath := flag.String("defs", config.DefaultDefsPath, "definitions file")
	spawnKind := flag.String("spawn", "enemy_1", "enemy queued by the n key")
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	tg := &termGame{
		screen:   screen,
		game:     g,
		renderer: render.NewTermRenderer(screen, lvl.TileSize),
		markers:  app.Markers(lvl.Markers),
		spawn:    *spawnKind,
		speed:    1,
	}
	tg.run()
}

func (t *termGame) run() {
	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if !t.paused {
				for i := 0; i < t.speed; i++ {
					t.game.Step()
				}
			}
			t.draw()
		}
	}
}

func (t *termGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'p', ' ':
			t.paused = !t.paused
		case 'n':
			if err := t.game.RequestSpawn(t.spawn); err != nil {
				log.Printf("term: %v", err)
			}
		case '+':
			t.speed = nextSpeed(t.speed)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// nextSpeed cycles through the configured multipliers.
func nextSpeed(current int) int {
	for i, m := range config.SpeedMultipliers {
		if m == current {
			return config.SpeedMultipliers[(i+1)%len(config.SpeedMultipliers)]
		}
	}
	return config.SpeedMultipliers[0]
}

func (t *termGame) draw() {
	t.screen.Clear()
	t.renderer.DrawGrid(t.game.Grid, t.markers)
	t.game.Draw(t.renderer)

	rows, _ := t.game.Grid.Dimensions()
	s := t.game.Snapshot()
	status := fmt.Sprintf("%s  speed x%d", s, t.speed)
	if t.paused {
		status += "  PAUSED"
	}
	if s.Lost {
		status += "  GAME OVER"
	}
	t.renderer.DrawText(0, rows+1, status)
	t.renderer.DrawText(0, rows+2, "n: spawn  p: pause  +: speed  q: quit")
	t.screen.Show()
}
