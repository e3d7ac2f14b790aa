// internal/input/input.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arena-shooter/internal/utils"
)

// Snapshot — цифровое состояние ввода на один тик. Системы читают только
// снимок, что держит их тестируемыми без ebiten.
type Snapshot struct {
	Left, Right         bool    // зажато
	LeftJust, RightJust bool    // фронт нажатия
	JumpJust            bool
	FireJust            bool
	PointerX, PointerY  float64 // позиция указателя в мировых координатах
}

// Reader снимает состояние клавиатуры и мыши через ebiten.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) Read() Snapshot {
	mx, my := ebiten.CursorPosition()
	wx, wy := utils.ScreenToWorld(mx, my)

	return Snapshot{
		Left:      ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right:     ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		LeftJust:  inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyLeft),
		RightJust: inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyRight),
		JumpJust:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW),
		FireJust:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PointerX:  wx,
		PointerY:  wy,
	}
}
