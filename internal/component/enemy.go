// internal/component/enemy.go
package component

// BehaviorVariant — закрытый набор типов врагов.
type BehaviorVariant int

const (
	BehaviorWalker BehaviorVariant = iota
	BehaviorJumper
	BehaviorShooter
	BehaviorBurstShooter
)

func (v BehaviorVariant) String() string {
	switch v {
	case BehaviorWalker:
		return "walker"
	case BehaviorJumper:
		return "jumper"
	case BehaviorShooter:
		return "shooter"
	case BehaviorBurstShooter:
		return "burst_shooter"
	}
	return "unknown"
}

// BehaviorState — текущая фаза поведения. Одно поле вместо набора
// тег-компонентов: два активных состояния невозможны по построению.
type BehaviorState int

const (
	StateDormant BehaviorState = iota
	StateJumping
	StateSliding
	StateShooting
	StateBurstShooting
)

// Enemy — вражеская сущность.
type Enemy struct {
	Behavior  BehaviorVariant
	Health    int     // пока только хранится, путь урона — точка расширения
	Direction float64 // ±1
	DelayMove Timer   // циклический таймер входа в активную фазу
	State     BehaviorState
	Active    Timer // таймер текущей активной фазы
}

// Dormant — враг без активной фазы, может войти в новую.
func (e *Enemy) Dormant() bool {
	return e.State == StateDormant
}
