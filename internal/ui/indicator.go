// internal/ui/indicator.go
package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/event"
)

// ScoreIndicator показывает счёт и пульсирует на подборе оружия.
type ScoreIndicator struct {
	X, Y       float32
	lastPickup time.Time
}

func NewScoreIndicator(x, y float32, dispatcher *event.Dispatcher) *ScoreIndicator {
	si := &ScoreIndicator{X: x, Y: y}
	dispatcher.Subscribe(event.WeaponPickedUp, si)
	return si
}

func (si *ScoreIndicator) OnEvent(e event.Event) {
	si.lastPickup = time.Now()
}

func (si *ScoreIndicator) Draw(screen *ebiten.Image, score int) {
	elapsed := time.Since(si.lastPickup).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	radius := float32(config.IndicatorRadius) * float32(scale)

	vector.DrawFilledCircle(screen, si.X, si.Y, radius, config.BulletColor, true)
	text.Draw(screen, fmt.Sprintf("score: %d", score), basicfont.Face7x13, int(si.X)+20, int(si.Y)+4, config.TextLightColor)
}

// DifficultyIndicator показывает текущий уровень сложности и
// вспыхивает на каждом тике.
type DifficultyIndicator struct {
	X, Y      float32
	lastRaise time.Time
}

func NewDifficultyIndicator(x, y float32, dispatcher *event.Dispatcher) *DifficultyIndicator {
	di := &DifficultyIndicator{X: x, Y: y}
	dispatcher.Subscribe(event.DifficultyRaised, di)
	return di
}

func (di *DifficultyIndicator) OnEvent(e event.Event) {
	di.lastRaise = time.Now()
}

func (di *DifficultyIndicator) Draw(screen *ebiten.Image, level int) {
	elapsed := time.Since(di.lastRaise).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	radius := float32(config.IndicatorRadius) * float32(scale)

	vector.DrawFilledCircle(screen, di.X, di.Y, radius, config.PauseColor, true)
	text.Draw(screen, fmt.Sprintf("difficulty: %d", level), basicfont.Face7x13, int(di.X)+20, int(di.Y)+4, config.TextLightColor)
}
