// internal/defs/enemies.go
package defs

import "go-arena-shooter/internal/component"

// EnemyLibrary — библиотека определений врагов по варианту поведения.
// Значения по умолчанию можно переопределить через LoadEnemyDefinitions.
var EnemyLibrary = map[component.BehaviorVariant]EnemyDefinition{
	component.BehaviorWalker: {
		Name:           "Walker",
		Health:         100,
		DelayMove:      1.5,
		ActiveDuration: 0.5,
		SlideSpeed:     20.0,
		StretchRate:    0.5,
		Visuals:        Visuals{Radius: 12, R: 120, G: 200, B: 120, A: 255},
	},
	component.BehaviorJumper: {
		Name:           "Jumper",
		Health:         100,
		DelayMove:      2.0,
		ActiveDuration: 2.5,
		SquashDepth:    0.4,
		ImpulseXMin:    20.0,
		ImpulseXMax:    100.0,
		ImpulseYMin:    200.0,
		ImpulseYMax:    500.0,
		Visuals:        Visuals{Radius: 12, R: 100, G: 140, B: 230, A: 255},
	},
	component.BehaviorShooter: {
		Name:           "Shooter",
		Health:         80,
		DelayMove:      2.5,
		ActiveDuration: 1.0,
		ShotSpeed:      220.0,
		ShotLifetime:   5.0,
		Visuals:        Visuals{Radius: 11, R: 230, G: 120, B: 100, A: 255},
	},
	component.BehaviorBurstShooter: {
		Name:           "BurstShooter",
		Health:         80,
		DelayMove:      3.0,
		ActiveDuration: 1.4,
		ShotSpeed:      220.0,
		ShotLifetime:   5.0,
		Visuals:        Visuals{Radius: 11, R: 230, G: 80, B: 160, A: 255},
	},
}
