// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Мировые координаты: ось Y направлена вверх, (0,0) в центре экрана.
	ArenaHalfWidth = 400.0
	GroundY        = -200.0 // линия пола
	SpawnLineY     = 260.0  // "потолок", линия появления предупреждений
	Gravity        = -600.0

	// Игрок
	PlayerHalfSize   = 14.0
	PlayerJumpHeight = 300.0
	GroundSlack      = 2.0 // допуск для проверки "на земле"
	MoveNudge        = 1.0 // сдвиг за тик при зажатой клавише

	// Рывок
	DashSpeed       = 250.0
	DashDuration    = 0.1
	DashRearmWindow = 0.2 // окно двойного нажатия

	// Оружие
	HeldItemRadius    = 5.0 // смещение предмета в руке от игрока
	PickupScoreFactor = 2   // очки за подбор = фактор * сложность

	// Планировщик спавна
	WarningDuration       = 1.0 // телеграф перед появлением
	CullMargin            = 120.0
	MaxLiveEnemies        = 100
	MaxWaveSize           = 6
	InitialWaveInterval   = 3.0
	InitialDifficultyTick = 5.0
	WeaponDropInterval    = 4.0
	IntervalFloor         = 0.1
	IntervalStep          = 0.1
	DifficultyAccelLevel  = 25 // с этого уровня ускоряется сам тик сложности
	SpawnDeciderModulo    = 12

	// HUD
	IndicatorOffsetX   = 30
	IndicatorRadius    = 10.0
	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0
	PauseButtonOffsetX = 130
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GroundColor     = color.RGBA{70, 100, 120, 220}
	PlayerColor     = color.RGBA{240, 240, 240, 255}
	WarningColor    = color.RGBA{220, 60, 60, 160}
	BulletColor     = color.RGBA{255, 215, 0, 255}
	TracerColor     = color.RGBA{255, 80, 80, 120}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PauseColor      = color.RGBA{220, 60, 60, 220}
	PlayColor       = color.RGBA{50, 205, 50, 220}
	StrokeColor     = color.RGBA{255, 255, 255, 255}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1.0, 2.0, 4.0}
)
