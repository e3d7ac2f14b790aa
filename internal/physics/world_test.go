package physics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/types"
)

func addBody(ecs *entity.ECS, x, y, half float64, layer, mask component.Layer) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Bodies[id] = &component.Body{
		Kind:  component.BodyDynamic,
		HalfW: half,
		HalfH: half,
		Layer: layer,
		Mask:  mask,
	}
	return id
}

func TestWorld(t *testing.T) {
	t.Run("Contacts Respect Layer Masks", func(t *testing.T) {
		ecs := entity.NewECS()
		w := NewWorld(ecs)

		a := addBody(ecs, 0, 0, 10, component.LayerPlayer, component.LayerWeapons)
		b := addBody(ecs, 5, 0, 10, component.LayerWeapons, component.LayerPlayer)
		c := addBody(ecs, 0, 5, 10, component.LayerEnemies, component.LayerWorld)

		w.Step(0)
		require.Contains(t, w.Contacts(a), b)
		require.Contains(t, w.Contacts(b), a)
		// Маски не разрешают пару — контакта нет, хотя AABB пересекаются.
		require.Empty(t, w.Contacts(c))
	})

	t.Run("Zero Size Sensor Overlaps Inside Box", func(t *testing.T) {
		ecs := entity.NewECS()
		w := NewWorld(ecs)

		player := addBody(ecs, 0, 0, 14, component.LayerPlayer, component.LayerWeapons)
		sensor := ecs.NewEntity()
		ecs.Positions[sensor] = &component.Position{X: 8, Y: -6}
		ecs.Bodies[sensor] = &component.Body{
			Kind:   component.BodyDynamic,
			Layer:  component.LayerWeapons,
			Mask:   component.LayerPlayer,
			Sensor: true,
		}

		w.Step(0)
		require.Contains(t, w.Contacts(sensor), player)
	})

	t.Run("Gravity And Integration", func(t *testing.T) {
		ecs := entity.NewECS()
		w := NewWorld(ecs)

		id := addBody(ecs, 0, 100, 5, component.LayerEnemies, component.LayerPlayer)
		ecs.Bodies[id].Gravity = true
		ecs.Velocities[id].X = 10

		w.Step(0.1)
		require.InDelta(t, 1.0, ecs.Positions[id].X, 1e-9)
		require.InDelta(t, config.Gravity*0.1, ecs.Velocities[id].Y, 1e-9)
	})

	t.Run("Floor Stops Bodies Masked Against World", func(t *testing.T) {
		ecs := entity.NewECS()
		w := NewWorld(ecs)

		id := addBody(ecs, 0, config.GroundY+6, 5, component.LayerPlayer, component.LayerWorld)
		ecs.Bodies[id].Gravity = true

		for i := 0; i < 100; i++ {
			w.Step(0.05)
		}
		require.InDelta(t, config.GroundY+5, ecs.Positions[id].Y, 1e-9)
		require.GreaterOrEqual(t, ecs.Velocities[id].Y, 0.0)
	})

	t.Run("Static Bodies Do Not Integrate", func(t *testing.T) {
		ecs := entity.NewECS()
		w := NewWorld(ecs)

		id := ecs.NewEntity()
		ecs.Positions[id] = &component.Position{X: 0, Y: 50}
		ecs.Bodies[id] = &component.Body{
			Kind:  component.BodyStatic,
			HalfW: 100,
			HalfH: 5,
			Layer: component.LayerWorld,
			Mask:  component.LayerProjectiles,
		}

		w.Step(0.5)
		require.Equal(t, 50.0, ecs.Positions[id].Y)
	})
}
