// internal/defs/weapons.go
package defs

import "go-arena-shooter/internal/component"

// WeaponLibrary — библиотека определений оружия по виду. Минимальная
// ротация дропа использует только Base, остальные определены и
// настраиваются через LoadWeaponDefinitions.
var WeaponLibrary = map[component.WeaponAsset]WeaponDefinition{
	component.WeaponBase: {
		Name:           "Base",
		BulletSpeed:    300.0,
		BulletLifetime: 5.0,
		BulletRadius:   3,
		Recoil:         120.0,
		SpentLifetime:  0.6,
		SpentSpin:      12.0,
		Visuals:        Visuals{Radius: 6, R: 255, G: 215, B: 0, A: 255},
	},
	component.WeaponRocket: {
		Name:           "Rocket",
		BulletSpeed:    180.0,
		BulletLifetime: 6.0,
		BulletRadius:   5,
		Recoil:         220.0,
		SpentLifetime:  0.6,
		SpentSpin:      8.0,
		Visuals:        Visuals{Radius: 7, R: 220, G: 90, B: 60, A: 255},
	},
	component.WeaponSniper: {
		Name:           "Sniper",
		BulletSpeed:    600.0,
		BulletLifetime: 3.0,
		BulletRadius:   2,
		Recoil:         260.0,
		SpentLifetime:  0.6,
		SpentSpin:      16.0,
		Visuals:        Visuals{Radius: 6, R: 140, G: 200, B: 240, A: 255},
	},
	component.WeaponShotgun: {
		Name:           "Shotgun",
		BulletSpeed:    260.0,
		BulletLifetime: 2.0,
		BulletRadius:   3,
		Recoil:         300.0,
		SpentLifetime:  0.6,
		SpentSpin:      10.0,
		Visuals:        Visuals{Radius: 6, R: 200, G: 160, B: 90, A: 255},
	},
	component.WeaponRock: {
		Name:           "Rock",
		BulletSpeed:    160.0,
		BulletLifetime: 4.0,
		BulletRadius:   4,
		Recoil:         60.0,
		SpentLifetime:  0.4,
		SpentSpin:      6.0,
		Visuals:        Visuals{Radius: 5, R: 128, G: 128, B: 128, A: 255},
	},
	component.WeaponAirplane: {
		Name:           "Airplane",
		BulletSpeed:    240.0,
		BulletLifetime: 7.0,
		BulletRadius:   4,
		Recoil:         90.0,
		SpentLifetime:  0.8,
		SpentSpin:      20.0,
		Visuals:        Visuals{Radius: 7, R: 230, G: 230, B: 230, A: 255},
	},
}
