// internal/state/pause_state.go
package state

import (
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the simulation and draws the previous state under a dim overlay.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	button        *ui.PauseButton
}

// NewPauseState pauses over prevState. button may be nil; when set, clicking it resumes.
func NewPauseState(sm *StateMachine, prevState State, button *ui.PauseButton) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		button:        button,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Exit() {}

func (s *PauseState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.resume()
		return nil
	}
	if s.button != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if s.button.IsClicked(float32(mx), float32(my)) {
			s.resume()
		}
	}
	return nil
}

func (s *PauseState) resume() {
	if s.button != nil {
		s.button.TogglePause()
	}
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.PauseOverlay, false)
	ui.DrawCentered(screen, "PAUSED", config.TextLightColor)
}
