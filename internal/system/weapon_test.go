package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/types"
)

// eventRecorder копит доставленные события для проверок.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *rig) addHeld(asset component.WeaponAsset) types.EntityID {
	id := r.ecs.NewEntity()
	r.ecs.Positions[id] = &component.Position{}
	r.ecs.Rotations[id] = &component.Rotation{}
	r.ecs.HeldItems[id] = &component.HeldItem{Asset: asset}
	return id
}

// aimRight — прицел строго вправо от стартовой позиции игрока.
func aimRight() input.Snapshot {
	return input.Snapshot{
		PointerX: 100,
		PointerY: config.GroundY + config.PlayerHalfSize,
	}
}

func TestHeldItemTracking(t *testing.T) {
	t.Run("Follows Aim At Fixed Radius", func(t *testing.T) {
		r := newRig(7)
		r.addPlayer()
		heldID := r.addHeld(component.WeaponBase)

		r.tick(0.1, aimRight())
		pos := r.ecs.Positions[heldID]
		require.InDelta(t, config.HeldItemRadius, pos.X, 1e-9)
		require.InDelta(t, config.GroundY+config.PlayerHalfSize, pos.Y, 1e-9)
		require.InDelta(t, 0.0, r.ecs.Rotations[heldID].Angle, 1e-9)
	})

	t.Run("Rotates With Pointer", func(t *testing.T) {
		r := newRig(7)
		r.addPlayer()
		heldID := r.addHeld(component.WeaponBase)

		// Прицел строго вверх.
		r.tick(0.1, input.Snapshot{PointerX: 0, PointerY: 100})
		pos := r.ecs.Positions[heldID]
		require.InDelta(t, 0.0, pos.X, 1e-9)
		require.InDelta(t, config.GroundY+config.PlayerHalfSize+config.HeldItemRadius, pos.Y, 1e-9)
	})
}

func TestWeaponFire(t *testing.T) {
	t.Run("Consumes Held And Spawns Bullet", func(t *testing.T) {
		r := newRig(8)
		playerID := r.addPlayer()
		r.addHeld(component.WeaponBase)
		def := defs.WeaponLibrary[component.WeaponBase]

		rec := &eventRecorder{}
		r.dispatcher.Subscribe(event.WeaponFired, rec)

		in := aimRight()
		in.FireJust = true
		r.tick(0.1, in)

		require.Empty(t, r.ecs.HeldItems, "выстрел расходует предмет в руке")
		require.Len(t, r.ecs.Bullets, 1)
		for bid, b := range r.ecs.Bullets {
			require.Equal(t, playerID, b.Owner)
			vel := r.ecs.Velocities[bid]
			require.InDelta(t, def.BulletSpeed, vel.X, 1e-9)
			require.InDelta(t, 0.0, vel.Y, 1e-9)
		}
		require.Len(t, rec.events, 1)
		require.Equal(t, component.WeaponBase, rec.events[0].Data)
	})

	t.Run("Recoil Pushes Player Back", func(t *testing.T) {
		r := newRig(8)
		playerID := r.addPlayer()
		r.addHeld(component.WeaponBase)
		def := defs.WeaponLibrary[component.WeaponBase]

		in := aimRight()
		in.FireJust = true
		r.tick(0.1, in)

		require.InDelta(t, -def.Recoil, r.ecs.Velocities[playerID].X, 1e-9,
			"отдача против прицела")
	})

	t.Run("Spent Casing Tumbles Away", func(t *testing.T) {
		r := newRig(8)
		r.addPlayer()
		r.addHeld(component.WeaponBase)

		in := aimRight()
		in.FireJust = true
		r.tick(0.1, in)

		require.Len(t, r.ecs.SpentWeapons, 1)
		var spentID types.EntityID
		for id := range r.ecs.SpentWeapons {
			spentID = id
		}
		vel := r.ecs.Velocities[spentID]
		require.Negative(t, vel.X, "корпус отлетает против прицела")
		require.Positive(t, vel.Y, "и подбрасывается вверх")

		before := r.ecs.Rotations[spentID].Angle
		r.tick(0.1, idle())
		require.Greater(t, r.ecs.Rotations[spentID].Angle, before, "корпус крутится")
	})

	t.Run("Spent Casing Expires", func(t *testing.T) {
		r := newRig(8)
		r.addPlayer()
		r.addHeld(component.WeaponBase)
		def := defs.WeaponLibrary[component.WeaponBase]

		in := aimRight()
		in.FireJust = true
		r.tick(0.1, in)
		require.Len(t, r.ecs.SpentWeapons, 1)

		steps := int(def.SpentLifetime/0.25) + 2
		for i := 0; i < steps; i++ {
			r.tick(0.25, idle())
		}
		require.Empty(t, r.ecs.SpentWeapons)
		require.Len(t, r.ecs.Bullets, 1, "снаряд живёт дольше корпуса")
	})

	t.Run("Nothing Held Is A NoOp", func(t *testing.T) {
		r := newRig(8)
		playerID := r.addPlayer()

		in := aimRight()
		in.FireJust = true
		r.tick(0.1, in)

		require.Empty(t, r.ecs.Bullets)
		require.Empty(t, r.ecs.SpentWeapons)
		require.Equal(t, 0.0, r.ecs.Velocities[playerID].X)
	})

	t.Run("Bullet Lifetime Expiry", func(t *testing.T) {
		r := newRig(8)
		r.addPlayer()
		r.addHeld(component.WeaponBase)
		def := defs.WeaponLibrary[component.WeaponBase]

		in := aimRight()
		in.FireJust = true
		r.tick(0.1, in)
		require.Len(t, r.ecs.Bullets, 1)

		steps := int(def.BulletLifetime/0.5) + 2
		for i := 0; i < steps; i++ {
			r.tick(0.5, idle())
		}
		require.Empty(t, r.ecs.Bullets, "без контакта снаряд умирает по таймеру")
	})
}
