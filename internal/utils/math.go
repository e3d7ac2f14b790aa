// internal/utils/math.go
package utils

import (
	"math"

	"go-arena-shooter/internal/config"
)

// Clamp ограничивает v отрезком [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// AngleTo — угол от точки (x1,y1) к точке (x2,y2), радианы.
func AngleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// WorldToScreen переводит мировые координаты (Y вверх, центр в нуле)
// в экранные пиксели.
func WorldToScreen(wx, wy float64) (float32, float32) {
	return float32(config.ScreenWidth/2 + wx), float32(config.ScreenHeight/2 - wy)
}

// ScreenToWorld переводит экранные пиксели в мировые координаты.
func ScreenToWorld(sx, sy int) (float64, float64) {
	return float64(sx) - config.ScreenWidth/2, config.ScreenHeight/2 - float64(sy)
}
