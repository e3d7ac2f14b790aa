// internal/defs/types.go
package defs

import "image/color"

// Visuals describes how an entity of this definition is drawn.
type Visuals struct {
	Radius float32 `json:"radius" yaml:"radius"`
	R      uint8   `json:"r" yaml:"r"`
	G      uint8   `json:"g" yaml:"g"`
	B      uint8   `json:"b" yaml:"b"`
	A      uint8   `json:"a" yaml:"a"`
}

// RGBA возвращает цвет определения.
func (v Visuals) RGBA() color.RGBA {
	return color.RGBA{v.R, v.G, v.B, v.A}
}

// EnemyDefinition holds all the static data for a specific enemy variant.
// Поля, не относящиеся к варианту, остаются нулевыми.
type EnemyDefinition struct {
	Name           string  `json:"name" yaml:"name"`
	Health         int     `json:"health" yaml:"health"`
	DelayMove      float64 `json:"delay_move" yaml:"delay_move"`           // период входа в активную фазу
	ActiveDuration float64 `json:"active_duration" yaml:"active_duration"` // длительность активной фазы
	SlideSpeed     float64 `json:"slide_speed" yaml:"slide_speed"`         // walker
	StretchRate    float64 `json:"stretch_rate" yaml:"stretch_rate"`       // walker: прирост масштаба за секунду
	SquashDepth    float64 `json:"squash_depth" yaml:"squash_depth"`       // jumper: глубина приседания к концу заряда
	ImpulseXMin    float64 `json:"impulse_x_min" yaml:"impulse_x_min"`     // jumper
	ImpulseXMax    float64 `json:"impulse_x_max" yaml:"impulse_x_max"`
	ImpulseYMin    float64 `json:"impulse_y_min" yaml:"impulse_y_min"`
	ImpulseYMax    float64 `json:"impulse_y_max" yaml:"impulse_y_max"`
	ShotSpeed      float64 `json:"shot_speed" yaml:"shot_speed"` // shooter, burst_shooter
	ShotLifetime   float64 `json:"shot_lifetime" yaml:"shot_lifetime"`
	Visuals        Visuals `json:"visuals" yaml:"visuals"`
}

// WeaponDefinition holds all the static data for a weapon asset.
type WeaponDefinition struct {
	Name           string  `json:"name" yaml:"name"`
	BulletSpeed    float64 `json:"bullet_speed" yaml:"bullet_speed"`
	BulletLifetime float64 `json:"bullet_lifetime" yaml:"bullet_lifetime"`
	BulletRadius   float32 `json:"bullet_radius" yaml:"bullet_radius"`
	Recoil         float64 `json:"recoil" yaml:"recoil"` // отдача, единиц скорости против прицела
	SpentLifetime  float64 `json:"spent_lifetime" yaml:"spent_lifetime"`
	SpentSpin      float64 `json:"spent_spin" yaml:"spent_spin"` // рад/с вращения корпуса
	Visuals        Visuals `json:"visuals" yaml:"visuals"`
}
