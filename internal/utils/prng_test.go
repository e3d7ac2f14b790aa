package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPRNGDeterminism(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestPRNGRange(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := s.Range(20, 100)
		require.GreaterOrEqual(t, v, 20.0)
		require.Less(t, v, 100.0)
	}
}

func TestPRNGSign(t *testing.T) {
	s := NewPRNGService(7)
	seen := map[float64]bool{}
	for i := 0; i < 100; i++ {
		v := s.Sign()
		require.Contains(t, []float64{-1, 1}, v)
		seen[v] = true
	}
	require.True(t, seen[-1] && seen[1], "обе стороны встречаются")
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0.1, Clamp(0.05, 0.1, 3.0))
	require.Equal(t, 3.0, Clamp(5.0, 0.1, 3.0))
	require.Equal(t, 1.5, Clamp(1.5, 0.1, 3.0))
}

func TestAngleTo(t *testing.T) {
	require.InDelta(t, 0.0, AngleTo(0, 0, 10, 0), 1e-9)
	require.InDelta(t, math.Pi/2, AngleTo(0, 0, 0, 10), 1e-9)
	require.InDelta(t, math.Pi, math.Abs(AngleTo(0, 0, -10, 0)), 1e-9)
}

func TestCoordinateRoundTrip(t *testing.T) {
	sx, sy := WorldToScreen(0, 0)
	wx, wy := ScreenToWorld(int(sx), int(sy))
	require.Equal(t, 0.0, wx)
	require.Equal(t, 0.0, wy)

	sx, sy = WorldToScreen(120, -45)
	wx, wy = ScreenToWorld(int(sx), int(sy))
	require.Equal(t, 120.0, wx)
	require.Equal(t, -45.0, wy)
}
