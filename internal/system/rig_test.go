package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/physics"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/utils"
)

// rig собирает системы в боевом порядке тика для интеграционных
// проверок без ebiten-оболочки.
type rig struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	world      *physics.World

	timers    *TimerSystem
	spawn     *SpawnSystem
	behavior  *BehaviorSystem
	player    *PlayerSystem
	weapon    *WeaponSystem
	collision *CollisionSystem
}

func newRig(seed int64) *rig {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	world := physics.NewWorld(ecs)

	return &rig{
		ecs:        ecs,
		dispatcher: dispatcher,
		rng:        rng,
		world:      world,
		timers:     NewTimerSystem(ecs),
		spawn:      NewSpawnSystem(ecs, dispatcher, rng),
		behavior:   NewBehaviorSystem(ecs, rng),
		player:     NewPlayerSystem(ecs),
		weapon:     NewWeaponSystem(ecs, dispatcher),
		collision:  NewCollisionSystem(ecs, world, dispatcher),
	}
}

func (r *rig) tick(dt float64, in input.Snapshot) {
	r.timers.Update(dt)
	r.spawn.Update(dt)
	r.behavior.Update(dt)
	r.player.Update(dt, in)
	r.weapon.Update(dt, in)
	r.world.Step(dt)
	r.collision.Update(dt)
	r.ecs.Flush()
}

func (r *rig) addPlayer() types.EntityID {
	id := r.ecs.NewEntity()
	start := component.Position{X: 0, Y: config.GroundY + config.PlayerHalfSize}
	r.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	r.ecs.Velocities[id] = &component.Velocity{}
	r.ecs.Scales[id] = &component.Scale{X: 1, Y: 1}
	r.ecs.Bodies[id] = &component.Body{
		Kind:    component.BodyDynamic,
		HalfW:   config.PlayerHalfSize,
		HalfH:   config.PlayerHalfSize,
		Layer:   component.LayerPlayer,
		Mask:    component.LayerWorld | component.LayerEnemies | component.LayerWeapons | component.LayerProjectiles,
		Gravity: true,
	}
	r.ecs.Players[id] = &component.Player{
		JumpHeight: config.PlayerJumpHeight,
		Location:   start,
	}
	return id
}

func (r *rig) addEnemy(variant component.BehaviorVariant, x, y, delay float64) types.EntityID {
	id := r.ecs.NewEntity()
	r.ecs.Positions[id] = &component.Position{X: x, Y: y}
	r.ecs.Velocities[id] = &component.Velocity{}
	r.ecs.Scales[id] = &component.Scale{X: 1, Y: 1}
	r.ecs.Enemies[id] = &component.Enemy{
		Behavior:  variant,
		Health:    100,
		Direction: 1,
		DelayMove: component.NewRepeating(delay),
		State:     component.StateDormant,
	}
	return id
}

// idle — снимок без ввода.
func idle() input.Snapshot {
	return input.Snapshot{}
}
