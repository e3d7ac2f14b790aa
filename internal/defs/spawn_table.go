// internal/defs/spawn_table.go
package defs

import "go-arena-shooter/internal/component"

// SpawnWeights — взвешенная таблица выбора варианта врага.
// Индекс — decider % 12; перекос в сторону Jumper/Shooter намеренный,
// равномерность по типам не является целью.
var SpawnWeights = [12]component.BehaviorVariant{
	0:  component.BehaviorWalker,
	1:  component.BehaviorJumper,
	2:  component.BehaviorShooter,
	3:  component.BehaviorBurstShooter,
	4:  component.BehaviorJumper,
	5:  component.BehaviorJumper,
	6:  component.BehaviorShooter,
	7:  component.BehaviorJumper,
	8:  component.BehaviorBurstShooter,
	9:  component.BehaviorWalker,
	10: component.BehaviorShooter,
	11: component.BehaviorShooter,
}

// BehaviorForDecider отображает decider в вариант поведения.
// Отрицательный decider отдаёт вариант по умолчанию — Jumper.
func BehaviorForDecider(decider int) component.BehaviorVariant {
	if decider < 0 {
		return component.BehaviorJumper
	}
	return SpawnWeights[decider%len(SpawnWeights)]
}
