// internal/system/collision.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/log"
	"go-arena-shooter/internal/physics"
	"go-arena-shooter/internal/types"

	"go.uber.org/zap"
)

// CollisionSystem — реакция на контакты, которые обнаружил физический
// коллаборатор: смерть снарядов, передача оружия игроку, счёт.
type CollisionSystem struct {
	ecs             *entity.ECS
	world           *physics.World
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, world *physics.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	s.expireBullets()
	s.transferPickups()
	// Зарезервировано: контакт врага с игроком или снарядом — точка
	// расширения для урона; Health пока никем не уменьшается.
}

// expireBullets: снаряд умирает на первом же контакте, партнёр не
// различается. Контакт авторитетнее таймера жизни.
func (s *CollisionSystem) expireBullets() {
	for id := range s.ecs.Bullets {
		if len(s.world.Contacts(id)) > 0 {
			s.ecs.QueueDespawn(id)
		}
	}
}

// transferPickups: пересечение лежащего оружия с игроком переводит его
// в руку и начисляет очки пропорционально текущей сложности.
func (s *CollisionSystem) transferPickups() {
	playerID, ok := s.ecs.PlayerID()
	if !ok {
		return
	}

	for id, pickup := range s.ecs.Pickups {
		if s.ecs.PendingDespawn(id) {
			continue
		}
		// Предмет в руке всегда один: пока он есть, подбор не идёт.
		if len(s.ecs.HeldItems) > 0 {
			return
		}
		for _, other := range s.world.Contacts(id) {
			if other != playerID {
				continue
			}
			s.transfer(id, pickup.Asset, playerID)
			return
		}
	}
}

func (s *CollisionSystem) transfer(pickupID types.EntityID, asset component.WeaponAsset, playerID types.EntityID) {
	s.ecs.QueueDespawn(pickupID)

	reward := config.PickupScoreFactor * s.ecs.Difficulty.Level
	s.ecs.Score.Value += reward

	player := s.ecs.Players[playerID]
	at := player.Location
	angle := player.LookingAt

	s.ecs.Defer(func(e *entity.ECS) {
		id := e.NewEntity()
		e.Positions[id] = &component.Position{X: at.X, Y: at.Y}
		e.Rotations[id] = &component.Rotation{Angle: angle}
		def := pickupRenderable(asset)
		e.Renderables[id] = &def
		e.HeldItems[id] = &component.HeldItem{Asset: asset}
	})

	s.eventDispatcher.Dispatch(event.Event{Type: event.WeaponPickedUp, Data: asset})
	log.L().Debug("weapon picked up",
		zap.String("asset", asset.String()),
		zap.Int("reward", reward),
		zap.Int("score", s.ecs.Score.Value))
}

// Предмет в руке рисуется вытянутым прямоугольником вдоль прицела.
func pickupRenderable(asset component.WeaponAsset) component.Renderable {
	def := defs.WeaponLibrary[asset]
	return component.Renderable{
		Shape: component.ShapeRect,
		Color: def.Visuals.RGBA(),
		W:     def.Visuals.Radius * 2,
		H:     def.Visuals.Radius,
	}
}
