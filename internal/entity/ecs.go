// internal/entity/ecs.go
package entity

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/types"
)

// ECS хранит компоненты по картам и глобальные ресурсы симуляции.
// Удаления сущностей откладываются до конца тика, создания становятся
// видимыми только со следующего тика — системы внутри одного тика
// всегда видят согласованное состояние.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions    map[types.EntityID]*component.Position
	Velocities   map[types.EntityID]*component.Velocity
	Rotations    map[types.EntityID]*component.Rotation
	Scales       map[types.EntityID]*component.Scale
	Bodies       map[types.EntityID]*component.Body
	Renderables  map[types.EntityID]*component.Renderable
	LineRenders  map[types.EntityID]*component.LineRender
	Players      map[types.EntityID]*component.Player
	Dashes       map[types.EntityID]*component.Dashing
	Enemies      map[types.EntityID]*component.Enemy
	Warnings     map[types.EntityID]*component.SpawnWarning
	Pickups      map[types.EntityID]*component.WeaponPickup
	HeldItems    map[types.EntityID]*component.HeldItem
	SpentWeapons map[types.EntityID]*component.SpentWeapon
	Bullets      map[types.EntityID]*component.Bullet
	Lifetimes    map[types.EntityID]*component.Timer

	// Глобальные ресурсы; у каждого ровно одна пишущая система за тик.
	Difficulty  *component.Difficulty
	EnemyWaves  *component.EnemyWaves
	WeaponDrops *component.WeaponDrops
	Score       *component.Score
	DashMemory  *component.DashMemory

	pendingSpawns   []func(*ECS)
	pendingDespawns []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:       1,
		Positions:    make(map[types.EntityID]*component.Position),
		Velocities:   make(map[types.EntityID]*component.Velocity),
		Rotations:    make(map[types.EntityID]*component.Rotation),
		Scales:       make(map[types.EntityID]*component.Scale),
		Bodies:       make(map[types.EntityID]*component.Body),
		Renderables:  make(map[types.EntityID]*component.Renderable),
		LineRenders:  make(map[types.EntityID]*component.LineRender),
		Players:      make(map[types.EntityID]*component.Player),
		Dashes:       make(map[types.EntityID]*component.Dashing),
		Enemies:      make(map[types.EntityID]*component.Enemy),
		Warnings:     make(map[types.EntityID]*component.SpawnWarning),
		Pickups:      make(map[types.EntityID]*component.WeaponPickup),
		HeldItems:    make(map[types.EntityID]*component.HeldItem),
		SpentWeapons: make(map[types.EntityID]*component.SpentWeapon),
		Bullets:      make(map[types.EntityID]*component.Bullet),
		Lifetimes:    make(map[types.EntityID]*component.Timer),
		Difficulty: &component.Difficulty{
			Level: 1,
			Timer: component.NewRepeating(config.InitialDifficultyTick),
		},
		EnemyWaves: &component.EnemyWaves{
			Timer: component.NewRepeating(config.InitialWaveInterval),
		},
		WeaponDrops: &component.WeaponDrops{
			Timer: component.NewRepeating(config.WeaponDropInterval),
		},
		Score: &component.Score{},
		DashMemory: &component.DashMemory{
			Timer: component.NewTimer(config.DashRearmWindow),
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// PlayerID возвращает единственного живого игрока.
func (ecs *ECS) PlayerID() (types.EntityID, bool) {
	for id := range ecs.Players {
		return id, true
	}
	return 0, false
}

// Defer откладывает создание сущности: функция выполнится после всех
// систем текущего тика, результат виден запросам со следующего.
func (ecs *ECS) Defer(fn func(*ECS)) {
	ecs.pendingSpawns = append(ecs.pendingSpawns, fn)
}

// QueueDespawn помечает сущность на удаление в конце тика. Повторные
// запросы на ту же сущность безопасны.
func (ecs *ECS) QueueDespawn(id types.EntityID) {
	ecs.pendingDespawns = append(ecs.pendingDespawns, id)
}

// Flush применяет отложенные удаления, затем отложенные создания.
// Вызывается приложением ровно один раз в конце тика.
func (ecs *ECS) Flush() {
	for _, id := range ecs.pendingDespawns {
		ecs.RemoveEntity(id)
	}
	ecs.pendingDespawns = ecs.pendingDespawns[:0]

	spawns := ecs.pendingSpawns
	ecs.pendingSpawns = nil
	for _, fn := range spawns {
		fn(ecs)
	}
}

// PendingDespawn — запрошено ли уже удаление сущности в этом тике.
func (ecs *ECS) PendingDespawn(id types.EntityID) bool {
	for _, d := range ecs.pendingDespawns {
		if d == id {
			return true
		}
	}
	return false
}

// RemoveEntity немедленно вычищает сущность из всех карт.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Rotations, id)
	delete(ecs.Scales, id)
	delete(ecs.Bodies, id)
	delete(ecs.Renderables, id)
	delete(ecs.LineRenders, id)
	delete(ecs.Players, id)
	delete(ecs.Dashes, id)
	delete(ecs.Enemies, id)
	delete(ecs.Warnings, id)
	delete(ecs.Pickups, id)
	delete(ecs.HeldItems, id)
	delete(ecs.SpentWeapons, id)
	delete(ecs.Bullets, id)
	delete(ecs.Lifetimes, id)
}
