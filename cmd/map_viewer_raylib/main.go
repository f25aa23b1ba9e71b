// cmd/map_viewer_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/tilemap"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	coordScale   = 0.25
	fogStart     = 250.0
	fogEnd       = 600.0
)

// Vector3Lerp linearly interpolates between two vectors.
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

// ColorLerp linearly interpolates between two colours.
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(utils.Lerp(float32(c1.R), float32(c2.R), t)),
		uint8(utils.Lerp(float32(c1.G), float32(c2.G), t)),
		uint8(utils.Lerp(float32(c1.B), float32(c2.B), t)),
		uint8(utils.Lerp(float32(c1.A), float32(c2.A), t)),
	)
}

func clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// scene is everything the viewer draws, in world pixels.
type scene struct {
	grid    *tilemap.TileGrid
	markers tilemap.Markers
	path    []tilemap.Point
	pathErr error
	towers  []config.TowerPlacement
	width   float64
	height  float64
}

func loadScene(levelPath string) (*scene, error) {
	lvl, err := config.LoadLevel(levelPath)
	if err != nil {
		return nil, err
	}
	grid, err := tilemap.NewTileGrid(lvl.Tiles, lvl.TileSize)
	if err != nil {
		return nil, err
	}
	s := &scene{
		grid:    grid,
		markers: app.Markers(lvl.Markers),
		towers:  lvl.Towers,
	}
	rows, cols := grid.Dimensions()
	s.width, s.height = float64(cols)*lvl.TileSize, float64(rows)*lvl.TileSize
	// Planning errors are reported on screen instead of aborting.
	s.path, s.pathErr = tilemap.PlanPath(grid, s.markers)
	return s, nil
}

// toWorld maps a pixel position to the 3D plane, centring the map on the origin.
func (s *scene) toWorld(x, y float64, height float32) rl.Vector3 {
	return rl.NewVector3(float32(x-s.width/2)*coordScale, height, float32(y-s.height/2)*coordScale)
}

func (s *scene) tileColor(id int) rl.Color {
	switch {
	case s.markers.Start.Contains(id):
		return rl.SkyBlue
	case s.markers.End.Contains(id):
		return rl.Red
	case s.markers.Path.Contains(id):
		return rl.NewColor(194, 178, 128, 255)
	default:
		return rl.NewColor(100, 140, 110, 255)
	}
}

func main() {
	levelPath := flag.String("level", config.DefaultLevelPath, "level file")
	flag.Parse()

	s, err := loadScene(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	if s.pathErr != nil {
		log.Printf("Path planning failed: %v", s.pathErr)
	}

	backgroundColor := rl.NewColor(10, 10, 20, 255)
	rl.InitWindow(screenWidth, screenHeight, "Raylib Level Viewer | Q/E - Rotate, Mouse Wheel - Change Angle")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(120, 260, 260)
	topDownPos := rl.NewVector3(0, 520, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(40.0)
	cameraAngleT := float32(0.5)

	tileSize := float32(s.grid.TileSize()) * coordScale
	rows, cols := s.grid.Dimensions()

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cameraAngleT = clamp01(cameraAngleT + wheel*0.05)
			if cameraAngleT > 0.99 {
				cameraAngleT = 0.99
			}
		}

		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = utils.Lerp(isoFovy, topDownFovy, cameraAngleT)

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				x, y := s.grid.PixelCenter(row, col)
				id := s.grid.TileAt(row, col)
				height := float32(4)
				if s.markers.Path.Contains(id) {
					height = 1
				}
				pos := s.toWorld(x, y, height/2)
				fog := clamp01((rl.Vector3Distance(camera.Position, pos) - fogStart) / (fogEnd - fogStart))
				rl.DrawCube(pos, tileSize, height, tileSize, ColorLerp(s.tileColor(id), backgroundColor, fog))
				rl.DrawCubeWires(pos, tileSize, height, tileSize, ColorLerp(rl.DarkGray, backgroundColor, fog))
			}
		}

		for i, p := range s.path {
			t := float32(0)
			if len(s.path) > 1 {
				t = float32(i) / float32(len(s.path)-1)
			}
			pos := s.toWorld(p.X, p.Y, 2)
			rl.DrawSphere(pos, tileSize*0.15, ColorLerp(rl.SkyBlue, rl.Red, t))
			if i > 0 {
				prev := s.path[i-1]
				rl.DrawLine3D(s.toWorld(prev.X, prev.Y, 2), pos, rl.Gold)
			}
		}

		for _, tw := range s.towers {
			x, y := s.grid.PixelCenter(tw.Row, tw.Col)
			base := s.toWorld(x, y, 0)
			rl.DrawCylinder(base, tileSize*0.3, tileSize*0.3, 12, 12, rl.Blue)
			rl.DrawCylinderWires(base, tileSize*0.3, tileSize*0.3, 12, 12, rl.White)
		}

		rl.EndMode3D()

		rl.DrawText("Use Q/E to rotate and Mouse Wheel to change angle", 10, 10, 20, rl.White)
		if s.pathErr != nil {
			rl.DrawText(fmt.Sprintf("path: %v", s.pathErr), 10, 40, 20, rl.Red)
		} else {
			rl.DrawText(fmt.Sprintf("path: %d waypoints", len(s.path)), 10, 40, 20, rl.White)
		}
		rl.DrawFPS(10, 70)

		rl.EndDrawing()
	}

	rl.CloseWindow()
}
