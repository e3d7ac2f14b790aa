// internal/system/weapon.go
package system

import (
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/types"
)

// WeaponSystem — жизненный цикл оружия после подбора: сопровождение
// предмета в руке, выстрел по фронту нажатия и истечение времени жизни
// снарядов и отброшенных корпусов.
type WeaponSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewWeaponSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *WeaponSystem) Update(deltaTime float64, in input.Snapshot) {
	s.trackHeld()
	if in.FireJust {
		s.fire()
	}
	s.spinSpent(deltaTime)
	s.expireLifetimes()
}

// trackHeld держит предмет на коротком радиусе от игрока в направлении
// прицела; поворот повторяет угол прицеливания.
func (s *WeaponSystem) trackHeld() {
	id, ok := s.ecs.PlayerID()
	if !ok {
		return
	}
	player := s.ecs.Players[id]
	ppos, hasPos := s.ecs.Positions[id]
	if !hasPos {
		return
	}

	for heldID := range s.ecs.HeldItems {
		hpos, okPos := s.ecs.Positions[heldID]
		if !okPos {
			continue
		}
		hpos.X = ppos.X + config.HeldItemRadius*math.Cos(player.LookingAt)
		hpos.Y = ppos.Y + config.HeldItemRadius*math.Sin(player.LookingAt)
		if rot, okRot := s.ecs.Rotations[heldID]; okRot {
			rot.Angle = player.LookingAt
		}
	}
}

// fire: выстрел только при удерживаемом оружии, иначе no-op. Предмет
// в руке исчезает, появляются снаряд и крутящийся корпус; игроку
// прикладывается отдача против направления прицела.
func (s *WeaponSystem) fire() {
	playerID, ok := s.ecs.PlayerID()
	if !ok {
		return
	}
	player := s.ecs.Players[playerID]
	pvel, hasVel := s.ecs.Velocities[playerID]

	for heldID, held := range s.ecs.HeldItems {
		def := defs.WeaponLibrary[held.Asset]
		hpos, okPos := s.ecs.Positions[heldID]
		if !okPos {
			continue
		}
		at := *hpos
		angle := player.LookingAt

		s.ecs.QueueDespawn(heldID)
		s.spawnSpent(at, angle, def)
		s.spawnBullet(playerID, at, angle, def)

		if hasVel {
			pvel.X -= def.Recoil * math.Cos(angle)
			pvel.Y -= def.Recoil * math.Sin(angle)
		}

		s.eventDispatcher.Dispatch(event.Event{Type: event.WeaponFired, Data: held.Asset})
		// Предмет в руке всегда один; вторых выстрелов за тик нет.
		break
	}
}

// spawnSpent — отброшенный корпус: отлетает против прицела, крутится
// и живёт ограниченное время.
func (s *WeaponSystem) spawnSpent(at component.Position, angle float64, def defs.WeaponDefinition) {
	s.ecs.Defer(func(e *entity.ECS) {
		id := e.NewEntity()
		e.Positions[id] = &component.Position{X: at.X, Y: at.Y}
		e.Velocities[id] = &component.Velocity{
			X: -40 * math.Cos(angle),
			Y: -40*math.Sin(angle) + 60,
		}
		e.Rotations[id] = &component.Rotation{Angle: angle}
		e.Bodies[id] = &component.Body{
			Kind:    component.BodyDynamic,
			HalfW:   float64(def.Visuals.Radius),
			HalfH:   float64(def.Visuals.Radius),
			Layer:   component.LayerWeapons,
			Mask:    component.LayerWorld,
			Sensor:  true,
			Gravity: true,
		}
		e.Renderables[id] = &component.Renderable{
			Shape: component.ShapeRect,
			Color: def.Visuals.RGBA(),
			W:     def.Visuals.Radius * 2,
			H:     def.Visuals.Radius,
		}
		e.SpentWeapons[id] = &component.SpentWeapon{SpinSpeed: def.SpentSpin}
		lifetime := component.NewTimer(def.SpentLifetime)
		e.Lifetimes[id] = &lifetime
	})
}

func (s *WeaponSystem) spawnBullet(owner types.EntityID, at component.Position, angle float64, def defs.WeaponDefinition) {
	vx := def.BulletSpeed * math.Cos(angle)
	vy := def.BulletSpeed * math.Sin(angle)

	s.ecs.Defer(func(e *entity.ECS) {
		id := e.NewEntity()
		e.Positions[id] = &component.Position{X: at.X, Y: at.Y}
		e.Velocities[id] = &component.Velocity{X: vx, Y: vy}
		e.Rotations[id] = &component.Rotation{Angle: angle}
		e.Bodies[id] = &component.Body{
			Kind:   component.BodyDynamic,
			HalfW:  float64(def.BulletRadius),
			HalfH:  float64(def.BulletRadius),
			Layer:  component.LayerProjectiles,
			Mask:   component.LayerWorld | component.LayerEnemies,
			Sensor: true,
		}
		e.Renderables[id] = &component.Renderable{
			Shape:  component.ShapeCircle,
			Color:  config.BulletColor,
			Radius: def.BulletRadius,
		}
		e.Bullets[id] = &component.Bullet{Owner: owner}
		lifetime := component.NewTimer(def.BulletLifetime)
		e.Lifetimes[id] = &lifetime
	})
}

func (s *WeaponSystem) spinSpent(deltaTime float64) {
	for id, spent := range s.ecs.SpentWeapons {
		if rot, ok := s.ecs.Rotations[id]; ok {
			rot.Angle += spent.SpinSpeed * deltaTime
		}
	}
}

// expireLifetimes убирает всё, чей таймер жизни истёк. Контакт может
// опередить таймер — повторная постановка в очередь безопасна.
func (s *WeaponSystem) expireLifetimes() {
	for id, t := range s.ecs.Lifetimes {
		if t.Finished() {
			s.ecs.QueueDespawn(id)
		}
	}
}
