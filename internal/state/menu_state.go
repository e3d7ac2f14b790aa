// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-arena-shooter/internal/config"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "ARENA SHOOTER", basicfont.Face7x13,
		config.ScreenWidth/2-50, config.ScreenHeight/2-20, config.TextLightColor)
	text.Draw(screen, "press Enter or click to start", basicfont.Face7x13,
		config.ScreenWidth/2-100, config.ScreenHeight/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {}
