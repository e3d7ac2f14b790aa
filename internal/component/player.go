// internal/component/player.go
package component

// Player — компонент игрока. Живой экземпляр ровно один.
type Player struct {
	JumpHeight float64
	LookingAt  float64  // угол прицеливания в радианах
	Location   Position // копия трансформа, обновляется каждый тик
}

// Dashing — активный рывок. Пока компонент присоединён, скорость
// обнуляется и игрок переносится кинематически.
type Dashing struct {
	Direction int // -1 влево, +1 вправо
	Timer     Timer
}

// DashMemory — глобальная память последнего нажатия направления.
// Повторное нажатие той же стороны до истечения окна превращается в рывок.
type DashMemory struct {
	Direction int
	Timer     Timer
}
