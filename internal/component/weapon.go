// internal/component/weapon.go
package component

// WeaponAsset — закрытый набор видов оружия.
type WeaponAsset int

const (
	WeaponBase WeaponAsset = iota
	WeaponRocket
	WeaponSniper
	WeaponShotgun
	WeaponRock
	WeaponAirplane
)

func (a WeaponAsset) String() string {
	switch a {
	case WeaponBase:
		return "base"
	case WeaponRocket:
		return "rocket"
	case WeaponSniper:
		return "sniper"
	case WeaponShotgun:
		return "shotgun"
	case WeaponRock:
		return "rock"
	case WeaponAirplane:
		return "airplane"
	}
	return "unknown"
}

// WeaponPickup — оружие, лежащее на арене и ждущее подбора.
type WeaponPickup struct {
	Asset WeaponAsset
}

// HeldItem — оружие в руке, следует за точкой прицеливания игрока.
// Одновременно существует не больше одного.
type HeldItem struct {
	Asset WeaponAsset
}

// SpentWeapon — отброшенный после выстрела корпус, крутится и исчезает.
type SpentWeapon struct {
	SpinSpeed float64 // рад/с
}
