// internal/system/behavior.go
package system

import (
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/utils"
)

// BehaviorSystem — машина состояний поведения врагов. Спящий враг
// входит в активную фазу по срабатыванию delay_move; активная фаза
// всегда ровно одна и по завершении возвращает врага в сон.
type BehaviorSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewBehaviorSystem(ecs *entity.ECS, rng *utils.PRNGService) *BehaviorSystem {
	return &BehaviorSystem{ecs: ecs, rng: rng}
}

func (s *BehaviorSystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		def := defs.EnemyLibrary[enemy.Behavior]

		switch enemy.State {
		case component.StateDormant:
			// Вход только по срабатыванию таймера и только из сна.
			if enemy.DelayMove.Finished() {
				s.enterActive(enemy, def)
			}

		case component.StateSliding:
			s.updateSliding(id, enemy, def)

		case component.StateJumping:
			s.updateJumping(id, enemy, def)

		case component.StateShooting:
			s.updateShooting(id, enemy, def)

		case component.StateBurstShooting:
			// Зарезервировано под очередь выстрелов; пока стреляет
			// как Shooter, но с собственной длительностью.
			s.updateShooting(id, enemy, def)
		}
	}
}

// enterActive выбирает активную фазу по варианту поведения.
func (s *BehaviorSystem) enterActive(enemy *component.Enemy, def defs.EnemyDefinition) {
	enemy.Active = component.NewTimer(def.ActiveDuration)
	switch enemy.Behavior {
	case component.BehaviorWalker:
		enemy.State = component.StateSliding
	case component.BehaviorJumper:
		enemy.State = component.StateJumping
	case component.BehaviorShooter:
		enemy.State = component.StateShooting
	case component.BehaviorBurstShooter:
		enemy.State = component.StateBurstShooting
	}
}

// updateSliding: горизонтальный скольз с растяжением; на выходе масштаб
// сбрасывается и враг останавливается.
func (s *BehaviorSystem) updateSliding(id types.EntityID, enemy *component.Enemy, def defs.EnemyDefinition) {
	if vel, ok := s.ecs.Velocities[id]; ok {
		vel.X = def.SlideSpeed * enemy.Direction
	}
	if scale, ok := s.ecs.Scales[id]; ok {
		scale.X = 1 + def.StretchRate*enemy.Active.Elapsed
	}

	if enemy.Active.Finished() {
		if vel, ok := s.ecs.Velocities[id]; ok {
			vel.X = 0
		}
		if scale, ok := s.ecs.Scales[id]; ok {
			scale.X = 1
		}
		enemy.State = component.StateDormant
	}
}

// updateJumping: приседание во время заряда, случайный импульс на
// выходе; delay_move перезапускается сразу.
func (s *BehaviorSystem) updateJumping(id types.EntityID, enemy *component.Enemy, def defs.EnemyDefinition) {
	if scale, ok := s.ecs.Scales[id]; ok && enemy.Active.Duration > 0 {
		progress := utils.Clamp(enemy.Active.Elapsed/enemy.Active.Duration, 0, 1)
		scale.Y = 1 - def.SquashDepth*progress
	}

	if enemy.Active.Finished() {
		if scale, ok := s.ecs.Scales[id]; ok {
			scale.Y = 1
		}
		if vel, ok := s.ecs.Velocities[id]; ok {
			vel.X = s.rng.Range(def.ImpulseXMin, def.ImpulseXMax) * s.rng.Sign()
			vel.Y = s.rng.Range(def.ImpulseYMin, def.ImpulseYMax)
		}
		enemy.DelayMove.Reset()
		enemy.State = component.StateDormant
	}
}

// updateShooting: пока фаза активна — трассер каждый тик; на выходе
// один снаряд в текущую позицию игрока.
func (s *BehaviorSystem) updateShooting(id types.EntityID, enemy *component.Enemy, def defs.EnemyDefinition) {
	pos, hasPos := s.ecs.Positions[id]
	if !hasPos {
		return
	}

	player, hasPlayer := s.playerLocation()
	if hasPlayer {
		s.spawnTracer(*pos, player)
	}

	if enemy.Active.Finished() {
		if hasPlayer {
			s.fireAt(id, *pos, player, def)
		}
		enemy.State = component.StateDormant
	}
}

func (s *BehaviorSystem) playerLocation() (component.Position, bool) {
	for _, player := range s.ecs.Players {
		return player.Location, true
	}
	return component.Position{}, false
}

// spawnTracer — короткоживущая линия прицеливания от врага к игроку.
func (s *BehaviorSystem) spawnTracer(from, to component.Position) {
	s.ecs.Defer(func(e *entity.ECS) {
		id := e.NewEntity()
		e.LineRenders[id] = &component.LineRender{
			StartX: from.X,
			StartY: from.Y,
			EndX:   to.X,
			EndY:   to.Y,
			Color:  config.TracerColor,
		}
		lifetime := component.NewTimer(0.1)
		e.Lifetimes[id] = &lifetime
	})
}

// fireAt выпускает самонаводящийся по углу снаряд: направление
// фиксируется на позицию игрока в момент выстрела.
func (s *BehaviorSystem) fireAt(owner types.EntityID, from, to component.Position, def defs.EnemyDefinition) {
	angle := utils.AngleTo(from.X, from.Y, to.X, to.Y)
	vx := def.ShotSpeed * math.Cos(angle)
	vy := def.ShotSpeed * math.Sin(angle)

	s.ecs.Defer(func(e *entity.ECS) {
		id := e.NewEntity()
		e.Positions[id] = &component.Position{X: from.X, Y: from.Y}
		e.Velocities[id] = &component.Velocity{X: vx, Y: vy}
		e.Rotations[id] = &component.Rotation{Angle: angle}
		e.Bodies[id] = &component.Body{
			Kind:   component.BodyDynamic,
			HalfW:  3,
			HalfH:  3,
			Layer:  component.LayerProjectiles,
			Mask:   component.LayerWorld | component.LayerPlayer,
			Sensor: true,
		}
		e.Renderables[id] = &component.Renderable{
			Shape:  component.ShapeCircle,
			Color:  config.BulletColor,
			Radius: 3,
		}
		e.Bullets[id] = &component.Bullet{Owner: owner}
		lifetime := component.NewTimer(def.ShotLifetime)
		e.Lifetimes[id] = &lifetime
	})
}
