// internal/component/spawn.go
package component

// SpawnKind — что материализуется на месте предупреждения.
type SpawnKind int

const (
	SpawnEnemy SpawnKind = iota
	SpawnWeapon
)

// SpawnWarning — телеграф появления: короткоживущая метка, после
// отсчёта заменяется настоящей сущностью в той же точке.
type SpawnWarning struct {
	Kind      SpawnKind
	Behavior  BehaviorVariant // для SpawnEnemy
	Asset     WeaponAsset     // для SpawnWeapon
	Countdown Timer
}
