// internal/component/render.go
package component

import "image/color"

// ShapeKind — примитив отрисовки.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Renderable — как рисовать сущность. Трансформ (позиция, поворот,
// масштаб) берётся из соответствующих компонентов.
type Renderable struct {
	Shape     ShapeKind
	Color     color.RGBA
	Radius    float32 // для круга
	W, H      float32 // для прямоугольника
	HasStroke bool
}

// LineRender — отрезок в мировых координатах (трассеры выстрелов,
// ствол оружия в руке).
type LineRender struct {
	StartX, StartY float64
	EndX, EndY     float64
	Color          color.RGBA
}
