// cmd/headless/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"

	"github.com/atotto/clipboard"
)

type runResult struct {
	runIndex  int
	seed      int64
	snap      app.Snapshot
	lostTick  int
	clearTick int
}

func main() {
	var levelPath, defsPath string
	var runs, ticks int
	var seedBase, seedStep int64
	var copyReport bool

	flag.StringVar(&levelPath, "level", config.DefaultLevelPath, "level file")
	flag.StringVar(&defsPath, "defs", config.DefaultDefsPath, "definitions file")
	flag.IntVar(&runs, "runs", 1, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 60*config.TicksPerSecond, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 0, "RNG seed for run 1 (0 keeps the level seed)")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&copyReport, "copy", false, "copy the report to the clipboard")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	lib, err := defs.LoadLibrary(defsPath)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}
	lvl, err := config.LoadLevel(levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	if seedBase == 0 {
		seedBase = lvl.Seed
	}

	results := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		res, err := runLevel(lvl, lib, seed, ticks)
		if err != nil {
			log.Fatalf("Run %d: %v", i+1, err)
		}
		res.runIndex = i + 1
		results = append(results, res)
	}

	report := formatReport(lvl.Name, ticks, results)
	fmt.Print(report)
	if copyReport {
		if err := clipboard.WriteAll(report); err != nil {
			log.Printf("Failed to copy report: %v", err)
		} else {
			fmt.Println("(report copied to clipboard)")
		}
	}
}

// runLevel plays a copy of lvl for up to ticks steps, stopping early once the game is finished.
func runLevel(lvl *config.LevelConfig, lib *defs.Library, seed int64, ticks int) (runResult, error) {
	cfg := *lvl
	cfg.Seed = seed
	g, err := app.LoadLevel(&cfg, lib)
	if err != nil {
		return runResult{}, err
	}

	res := runResult{seed: seed, lostTick: -1, clearTick: -1}
	for i := 0; i < ticks && !g.Finished(); i++ {
		g.Step()
	}
	res.snap = g.Snapshot()
	if g.Lost() {
		res.lostTick = g.Tick()
	} else if g.Finished() {
		res.clearTick = g.Tick()
	}
	return res, nil
}

func outcome(r runResult) string {
	switch {
	case r.lostTick >= 0:
		return fmt.Sprintf("lost at tick %d", r.lostTick)
	case r.clearTick >= 0:
		return fmt.Sprintf("cleared at tick %d", r.clearTick)
	default:
		return "running"
	}
}

func formatReport(level string, ticks int, results []runResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Headless Level Report ===\n")
	fmt.Fprintf(&b, "level=%q runs=%d ticks=%d\n\n", level, len(results), ticks)

	var kills, escapes, shots, hits int
	for _, r := range results {
		s := r.snap
		fmt.Fprintf(&b, "run %d seed=%d: %s\n", r.runIndex, r.seed, outcome(r))
		fmt.Fprintf(&b, "  wave %d/%d lives=%d spawned=%d kills=%d escapes=%d\n",
			s.Wave, s.Waves, s.Lives, s.Spawned, s.Kills, s.Escapes)
		fmt.Fprintf(&b, "  shots=%d hits=%d accuracy=%.1f%% damage=%d\n",
			s.Shots, s.Hits, s.Accuracy()*100, s.Damage)
		kills += s.Kills
		escapes += s.Escapes
		shots += s.Shots
		hits += s.Hits
	}

	if len(results) > 1 {
		n := float64(len(results))
		acc := 0.0
		if shots > 0 {
			acc = float64(hits) / float64(shots) * 100
		}
		fmt.Fprintf(&b, "\naverage: kills=%.1f escapes=%.1f accuracy=%.1f%%\n",
			float64(kills)/n, float64(escapes)/n, acc)
	}
	return b.String()
}
