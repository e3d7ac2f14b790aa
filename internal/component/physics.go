// internal/component/physics.go
package component

// Layer — слой коллизий. Контакт между парой тел возникает, только если
// группа каждого входит в маску другого.
type Layer uint8

const (
	LayerWorld Layer = 1 << iota
	LayerPlayer
	LayerEnemies
	LayerWeapons
	LayerProjectiles
)

// BodyKind — классификация тела для физики.
type BodyKind int

const (
	BodyStatic BodyKind = iota
	BodyDynamic
)

// Body — физическое тело: полуразмеры AABB, слой и маска.
// Sensor-тела сообщают о пересечениях, но не получают отклика.
type Body struct {
	Kind         BodyKind
	HalfW, HalfH float64
	Layer        Layer
	Mask         Layer
	Sensor       bool
	Gravity      bool
}
