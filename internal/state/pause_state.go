// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-arena-shooter/internal/config"
)

// PauseState рисует замороженную игру поверх и ждёт возврата.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (p *PauseState) Enter() {
	p.previous.game.SetPaused(true)
}

func (p *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(p.previous)
	}
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	p.previous.Draw(screen)
	text.Draw(screen, "PAUSED  (F9 to resume)", basicfont.Face7x13,
		config.ScreenWidth/2-80, config.ScreenHeight/2, config.TextLightColor)
}

func (p *PauseState) Exit() {
	p.previous.game.SetPaused(false)
}
