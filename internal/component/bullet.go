// internal/component/bullet.go
package component

import "go-arena-shooter/internal/types"

// Bullet помечает снаряд. Время жизни лежит в ECS.Lifetimes; снаряд
// исчезает по таймеру или по первому контакту, что раньше.
type Bullet struct {
	Owner types.EntityID // источник, пока только для телеметрии
}
