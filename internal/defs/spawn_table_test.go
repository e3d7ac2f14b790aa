package defs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-arena-shooter/internal/component"
)

func TestSpawnWeights(t *testing.T) {
	t.Run("Weighted Groups", func(t *testing.T) {
		// Перекос намеренный: Jumper и Shooter перепредставлены.
		expect := map[component.BehaviorVariant][]int{
			component.BehaviorWalker:       {0, 9},
			component.BehaviorJumper:       {1, 4, 5, 7},
			component.BehaviorShooter:      {2, 6, 10, 11},
			component.BehaviorBurstShooter: {3, 8},
		}
		for variant, indices := range expect {
			for _, i := range indices {
				require.Equal(t, variant, SpawnWeights[i], "index %d", i)
			}
		}
	})

	t.Run("Decider Wraps Modulo Table", func(t *testing.T) {
		require.Equal(t, SpawnWeights[2], BehaviorForDecider(2))
		require.Equal(t, SpawnWeights[2], BehaviorForDecider(14))
		require.Equal(t, SpawnWeights[0], BehaviorForDecider(24))
	})

	t.Run("Negative Decider Defaults To Jumper", func(t *testing.T) {
		require.Equal(t, component.BehaviorJumper, BehaviorForDecider(-1))
	})
}
