// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton циклически переключает множитель скорости симуляции.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	r, g, bl, a := b.StateColors[b.CurrentState].RGBA()
	c := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}

	// Двойная стрелка "перемотки" из линий.
	height := size * 1.2
	width := size
	for _, offset := range []float32{-width * 0.4, width * 0.4} {
		x1, y1 := b.X+offset-width/2, b.Y-height/2
		x2, y2 := b.X+offset+width/2, b.Y
		x3, y3 := b.X+offset-width/2, b.Y+height/2
		vector.StrokeLine(screen, x1, y1, x2, y2, 3, c, true)
		vector.StrokeLine(screen, x2, y2, x3, y3, 3, c, true)
	}
}

// IsClicked — попал ли клик в зону кнопки.
func (b *SpeedButton) IsClicked(mx, my int) bool {
	dx := float64(float32(mx) - b.X)
	dy := float64(float32(my) - b.Y)
	return math.Sqrt(dx*dx+dy*dy) <= float64(b.Size)*1.5
}

// NextState переключает состояние по кругу.
func (b *SpeedButton) NextState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}
