// internal/system/render.go
package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/utils"
)

// RenderSystem рисует сущности по их трансформу: позиция, поворот,
// масштаб — единственный источник визуальной правды.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime float64) {
	s.drawGround(screen)

	// Предупреждения пульсируют, телеграфируя точку появления.
	for id, warning := range s.ecs.Warnings {
		pos, hasPos := s.ecs.Positions[id]
		render, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		progress := 0.0
		if warning.Countdown.Duration > 0 {
			progress = warning.Countdown.Elapsed / warning.Countdown.Duration
		}
		pulse := render.Radius * float32(1+0.3*math.Sin(gameTime*10))
		c := render.Color
		c.A = uint8(80 + 120*progress)
		sx, sy := utils.WorldToScreen(pos.X, pos.Y)
		vector.DrawFilledCircle(screen, sx, sy, pulse, c, true)
	}

	for id, render := range s.ecs.Renderables {
		if _, isWarning := s.ecs.Warnings[id]; isWarning {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		sx, sy := utils.WorldToScreen(pos.X, pos.Y)

		scaleX, scaleY := 1.0, 1.0
		if scale, hasScale := s.ecs.Scales[id]; hasScale {
			scaleX, scaleY = scale.X, scale.Y
		}

		switch render.Shape {
		case component.ShapeCircle:
			if render.HasStroke {
				vector.DrawFilledCircle(screen, sx, sy, render.Radius+2, config.StrokeColor, true)
			}
			radius := render.Radius * float32((scaleX+scaleY)/2)
			vector.DrawFilledCircle(screen, sx, sy, radius, render.Color, true)

		case component.ShapeRect:
			w := render.W * float32(scaleX)
			h := render.H * float32(scaleY)
			angle := 0.0
			if rot, hasRot := s.ecs.Rotations[id]; hasRot {
				angle = rot.Angle
			}
			drawRotatedRect(screen, sx, sy, w, h, angle, render)
		}
	}

	for _, line := range s.ecs.LineRenders {
		x1, y1 := utils.WorldToScreen(line.StartX, line.StartY)
		x2, y2 := utils.WorldToScreen(line.EndX, line.EndY)
		vector.StrokeLine(screen, x1, y1, x2, y2, 2.0, line.Color, true)
	}
}

func (s *RenderSystem) drawGround(screen *ebiten.Image) {
	x1, y1 := utils.WorldToScreen(-config.ArenaHalfWidth, config.GroundY)
	x2, _ := utils.WorldToScreen(config.ArenaHalfWidth, config.GroundY)
	vector.StrokeLine(screen, x1, y1, x2, y1, 4.0, config.GroundColor, true)
}

// drawRotatedRect приближает повёрнутый прямоугольник толстой линией
// вдоль угла: хватает для корпусов оружия и предмета в руке.
func drawRotatedRect(screen *ebiten.Image, cx, cy, w, h float32, angle float64, render *component.Renderable) {
	// Экранная ось Y направлена вниз, мировой угол — вверх.
	dx := float32(math.Cos(angle)) * w / 2
	dy := -float32(math.Sin(angle)) * w / 2
	vector.StrokeLine(screen, cx-dx, cy-dy, cx+dx, cy+dy, h, render.Color, true)
}
