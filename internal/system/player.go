// internal/system/player.go
package system

import (
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/types"
)

// PlayerSystem — движение игрока, рывок двойным нажатием, прыжок и
// прицеливание. Без живого игрока все операции вырождаются в no-op.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

func (s *PlayerSystem) Update(deltaTime float64, in input.Snapshot) {
	id, ok := s.ecs.PlayerID()
	if !ok {
		return
	}
	player := s.ecs.Players[id]
	pos, hasPos := s.ecs.Positions[id]
	vel, hasVel := s.ecs.Velocities[id]
	if !hasPos || !hasVel {
		return
	}

	// Прицел обновляется каждый тик, в рывке тоже.
	player.LookingAt = math.Atan2(in.PointerY-pos.Y, in.PointerX-pos.X)

	if dash, dashing := s.ecs.Dashes[id]; dashing {
		// Рывок кинематический: скорость обнулена, перенос напрямую.
		vel.X, vel.Y = 0, 0
		pos.X += config.DashSpeed * float64(dash.Direction) * deltaTime
		if dash.Timer.Finished() {
			delete(s.ecs.Dashes, id)
		}
	} else {
		s.handleMove(id, in, pos, vel)
		if in.JumpJust && pos.Y <= groundThreshold(id, s.ecs) {
			vel.Y = player.JumpHeight
		}
	}

	// Записанная позиция — единственный источник правды для прицела
	// врагов, обновляется из живого трансформа.
	player.Location = *pos
}

// handleMove: зажатое направление сдвигает на единицу за тик и гасит
// горизонтальную скорость; свежее нажатие той же стороны внутри окна
// перезарядки превращается в рывок.
func (s *PlayerSystem) handleMove(id types.EntityID, in input.Snapshot, pos *component.Position, vel *component.Velocity) {
	dir := 0
	just := false
	switch {
	case in.Right:
		dir, just = 1, in.RightJust
	case in.Left:
		dir, just = -1, in.LeftJust
	}
	if dir == 0 {
		return
	}

	if just {
		mem := s.ecs.DashMemory
		if mem.Direction == dir && !mem.Timer.Finished() {
			// Второе нажатие в окне: таймер расходуется, рывок
			// присоединяется, обычный сдвиг не выполняется.
			mem.Timer.Expire()
			s.ecs.Dashes[id] = &component.Dashing{
				Direction: dir,
				Timer:     component.NewTimer(config.DashDuration),
			}
			vel.X = 0
			return
		}
		mem.Direction = dir
		mem.Timer.Reset()
	}

	pos.X += config.MoveNudge * float64(dir)
	vel.X = 0
}

// groundThreshold — высота, ниже которой разрешён прыжок.
func groundThreshold(id types.EntityID, ecs *entity.ECS) float64 {
	half := 0.0
	if body, ok := ecs.Bodies[id]; ok {
		half = body.HalfH
	}
	return config.GroundY + half + config.GroundSlack
}
