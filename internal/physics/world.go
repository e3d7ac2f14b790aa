// internal/physics/world.go
package physics

import (
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/types"
)

// World — физический коллаборатор ядра симуляции: интегрирует скорость,
// применяет гравитацию, держит тела над линией пола и раз в тик строит
// списки контактов по слоям/маскам. Ядро реагирует на контакты, само
// обнаружение живёт здесь.
type World struct {
	ecs      *entity.ECS
	Gravity  float64
	contacts map[types.EntityID][]types.EntityID
}

func NewWorld(ecs *entity.ECS) *World {
	return &World{
		ecs:      ecs,
		Gravity:  config.Gravity,
		contacts: make(map[types.EntityID][]types.EntityID),
	}
}

// Step выполняет один физический шаг: интеграция, затем детекция.
func (w *World) Step(dt float64) {
	w.integrate(dt)
	w.detect()
}

// Contacts возвращает партнёров по контактам сущности за последний шаг.
func (w *World) Contacts(id types.EntityID) []types.EntityID {
	return w.contacts[id]
}

func (w *World) integrate(dt float64) {
	for id, body := range w.ecs.Bodies {
		if body.Kind != component.BodyDynamic {
			continue
		}
		pos, hasPos := w.ecs.Positions[id]
		vel, hasVel := w.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		if body.Gravity {
			vel.Y += w.Gravity * dt
		}
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		// Линия пола останавливает тела, маска которых включает мир.
		if body.Mask&component.LayerWorld != 0 {
			floor := config.GroundY + body.HalfH
			if pos.Y < floor {
				pos.Y = floor
				if vel.Y < 0 {
					vel.Y = 0
				}
			}
		}
	}
}

func (w *World) detect() {
	for id := range w.contacts {
		delete(w.contacts, id)
	}

	ids := make([]types.EntityID, 0, len(w.ecs.Bodies))
	for id := range w.ecs.Bodies {
		ids = append(ids, id)
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			if !w.pairEnabled(a, b) {
				continue
			}
			if w.overlap(a, b) {
				w.contacts[a] = append(w.contacts[a], b)
				w.contacts[b] = append(w.contacts[b], a)
			}
		}
	}
}

// pairEnabled — контакт возможен, только если группа каждого тела
// входит в маску другого (двусторонняя проверка, как в слоях исходной
// физики).
func (w *World) pairEnabled(a, b types.EntityID) bool {
	ba := w.ecs.Bodies[a]
	bb := w.ecs.Bodies[b]
	return ba.Layer&bb.Mask != 0 && bb.Layer&ba.Mask != 0
}

// overlap — включающий AABB-тест; сенсоры нулевого размера засчитываются,
// когда точка лежит внутри партнёра.
func (w *World) overlap(a, b types.EntityID) bool {
	pa, okA := w.ecs.Positions[a]
	pb, okB := w.ecs.Positions[b]
	if !okA || !okB {
		return false
	}
	ba := w.ecs.Bodies[a]
	bb := w.ecs.Bodies[b]
	return math.Abs(pa.X-pb.X) <= ba.HalfW+bb.HalfW &&
		math.Abs(pa.Y-pb.Y) <= ba.HalfH+bb.HalfH
}
