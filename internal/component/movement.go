// internal/component/movement.go
package component

// Position — компонент позиции в мировых координатах (ось Y вверх).
type Position struct {
	X, Y float64
}

// Velocity — желаемая скорость; интегрируется физикой.
type Velocity struct {
	X, Y float64
}

// Rotation — угол в радианах.
type Rotation struct {
	Angle float64
}

// Scale — визуальный масштаб, единица = без искажения.
type Scale struct {
	X, Y float64
}
