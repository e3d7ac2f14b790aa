package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/event"
)

func TestDifficultyRamp(t *testing.T) {
	t.Run("Level Only Increases Interval Only Decreases", func(t *testing.T) {
		r := newRig(7)
		r.ecs.Difficulty.Timer = component.NewRepeating(0.1)
		r.ecs.EnemyWaves.Timer = component.NewRepeating(1.0)

		prevLevel := r.ecs.Difficulty.Level
		prevInterval := r.ecs.EnemyWaves.Timer.Duration
		for i := 0; i < 30; i++ {
			r.tick(0.1, idle())
			require.GreaterOrEqual(t, r.ecs.Difficulty.Level, prevLevel)
			require.LessOrEqual(t, r.ecs.EnemyWaves.Timer.Duration, prevInterval)
			prevLevel = r.ecs.Difficulty.Level
			prevInterval = r.ecs.EnemyWaves.Timer.Duration
		}
	})

	t.Run("Wave Interval Clamped At Floor", func(t *testing.T) {
		r := newRig(7)
		r.ecs.Difficulty.Timer = component.NewRepeating(0.05)
		r.ecs.EnemyWaves.Timer = component.NewRepeating(0.3)

		for i := 0; i < 100; i++ {
			r.tick(0.05, idle())
		}
		require.InDelta(t, config.IntervalFloor, r.ecs.EnemyWaves.Timer.Duration, 1e-9)
	})

	t.Run("Difficulty Cadence Accelerates Past Threshold", func(t *testing.T) {
		r := newRig(7)
		r.ecs.Difficulty.Level = config.DifficultyAccelLevel - 1
		r.ecs.Difficulty.Timer = component.NewRepeating(2.0)

		before := r.ecs.Difficulty.Timer.Duration
		r.tick(2.0, idle()) // уровень достигает порога
		require.Equal(t, config.DifficultyAccelLevel, r.ecs.Difficulty.Level)
		require.InDelta(t, before-config.IntervalStep, r.ecs.Difficulty.Timer.Duration, 1e-9)
	})

	t.Run("Below Threshold Cadence Unchanged", func(t *testing.T) {
		r := newRig(7)
		r.ecs.Difficulty.Timer = component.NewRepeating(2.0)

		r.tick(2.0, idle())
		require.Equal(t, 2, r.ecs.Difficulty.Level)
		require.Equal(t, 2.0, r.ecs.Difficulty.Timer.Duration)
	})
}

func TestEnemyWaves(t *testing.T) {
	t.Run("Wave Size Is Level Capped At Six", func(t *testing.T) {
		for level, want := range map[int]int{1: 1, 4: 4, 30: config.MaxWaveSize} {
			r := newRig(11)
			r.ecs.Difficulty.Level = level
			r.ecs.EnemyWaves.Timer = component.NewRepeating(0.1)

			r.tick(0.1, idle())
			require.Len(t, r.ecs.Warnings, want, "level %d", level)
		}
	})

	t.Run("Warning Materializes Into Enemy At Same Spot", func(t *testing.T) {
		r := newRig(11)
		r.ecs.Difficulty.Level = 1
		r.ecs.EnemyWaves.Timer = component.NewRepeating(0.1)

		r.tick(0.1, idle())
		require.Len(t, r.ecs.Warnings, 1)
		// Дальше волны не нужны — интересует одно предупреждение.
		r.ecs.EnemyWaves.Timer = component.NewRepeating(1000)

		var warnX float64
		for id := range r.ecs.Warnings {
			warnX = r.ecs.Positions[id].X
		}

		// Отсчёт предупреждения ~1s, затем тик материализации и тик
		// видимости отложенного спавна.
		steps := int(config.WarningDuration/0.1) + 1
		for i := 0; i < steps; i++ {
			r.tick(0.1, idle())
		}
		require.Empty(t, r.ecs.Warnings, "предупреждение исчезло")
		require.Len(t, r.ecs.Enemies, 1)
		for id := range r.ecs.Enemies {
			require.InDelta(t, warnX, r.ecs.Positions[id].X, 1e-9)
			require.Equal(t, component.StateDormant, r.ecs.Enemies[id].State)
		}
		require.Equal(t, 1, r.spawn.ActiveEnemies())
	})

	t.Run("No Wave Above Enemy Cap", func(t *testing.T) {
		r := newRig(11)
		r.ecs.Difficulty.Level = 3
		r.ecs.EnemyWaves.Timer = component.NewRepeating(0.1)
		r.spawn.activeEnemies = config.MaxLiveEnemies + 1

		r.tick(0.1, idle())
		require.Empty(t, r.ecs.Warnings)
	})

	t.Run("Enemy Removed Event Decrements Accounting", func(t *testing.T) {
		r := newRig(11)
		r.spawn.activeEnemies = 5
		r.dispatcher.Dispatch(event.Event{Type: event.EnemyRemoved})
		require.Equal(t, 4, r.spawn.ActiveEnemies())
	})

	t.Run("Stray Enemy Culled Past Arena Margin", func(t *testing.T) {
		r := newRig(11)
		r.ecs.EnemyWaves.Timer = component.NewRepeating(1000)
		r.ecs.Difficulty.Timer = component.NewRepeating(1000)
		r.spawn.activeEnemies = 1

		inside := r.addEnemy(component.BehaviorWalker, config.ArenaHalfWidth, 0, 1000)
		stray := r.addEnemy(component.BehaviorJumper, config.ArenaHalfWidth+config.CullMargin+1, 0, 1000)

		r.tick(0.05, idle())
		_, ok := r.ecs.Enemies[stray]
		require.False(t, ok, "заблудший враг убран")
		_, ok = r.ecs.Enemies[inside]
		require.True(t, ok, "враг в пределах арены остаётся")
		require.Equal(t, 0, r.spawn.ActiveEnemies())
	})
}

func TestWeaponDrops(t *testing.T) {
	t.Run("Drop Warning Then Pickup", func(t *testing.T) {
		r := newRig(13)
		r.ecs.WeaponDrops.Timer = component.NewRepeating(0.2)
		// Волны врагов не мешают проверке.
		r.ecs.EnemyWaves.Timer = component.NewRepeating(1000)
		r.ecs.Difficulty.Timer = component.NewRepeating(1000)

		r.tick(0.2, idle())
		require.Len(t, r.ecs.Warnings, 1)
		r.ecs.WeaponDrops.Timer = component.NewRepeating(1000)
		for _, w := range r.ecs.Warnings {
			require.Equal(t, component.SpawnWeapon, w.Kind)
			require.Equal(t, component.WeaponBase, w.Asset, "минимальная ротация — всегда Base")
		}

		steps := int(config.WarningDuration/0.1) + 1
		for i := 0; i < steps; i++ {
			r.tick(0.1, idle())
		}
		require.Empty(t, r.ecs.Warnings)
		require.Len(t, r.ecs.Pickups, 1)
	})

	t.Run("Warning Spawns On Ceiling Line", func(t *testing.T) {
		r := newRig(13)
		r.ecs.WeaponDrops.Timer = component.NewRepeating(0.2)
		r.ecs.EnemyWaves.Timer = component.NewRepeating(1000)

		r.tick(0.2, idle())
		for id := range r.ecs.Warnings {
			require.Equal(t, config.SpawnLineY, r.ecs.Positions[id].Y)
			require.LessOrEqual(t, r.ecs.Positions[id].X, config.ArenaHalfWidth)
			require.GreaterOrEqual(t, r.ecs.Positions[id].X, -config.ArenaHalfWidth)
		}
	})
}
