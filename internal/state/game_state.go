// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-arena-shooter/internal/app"
	"go-arena-shooter/internal/input"
)

// GameState — основное игровое состояние: читает ввод, тикает
// симуляцию и рисует арену.
type GameState struct {
	sm     *StateMachine
	game   *game.Game
	reader *input.Reader
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{
		sm:     sm,
		game:   game.NewGame(0),
		reader: input.NewReader(),
	}
}

func (g *GameState) Enter() {
	g.game.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	in := g.reader.Read()
	if in.FireJust {
		// Клик по HUD не должен стрелять.
		if mx, my := ebiten.CursorPosition(); g.game.HandleClick(mx, my) {
			in.FireJust = false
		}
	}
	g.game.Update(deltaTime, in)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
}

func (g *GameState) Exit() {}
