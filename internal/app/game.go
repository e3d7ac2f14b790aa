// internal/app/game.go
package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/log"
	"go-arena-shooter/internal/physics"
	"go-arena-shooter/internal/system"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/ui"
	"go-arena-shooter/internal/utils"
)

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	TimerSystem     *system.TimerSystem
	SpawnSystem     *system.SpawnSystem
	BehaviorSystem  *system.BehaviorSystem
	PlayerSystem    *system.PlayerSystem
	WeaponSystem    *system.WeaponSystem
	CollisionSystem *system.CollisionSystem
	RenderSystem    *system.RenderSystem
	Physics         *physics.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	ScoreIndicator      *ui.ScoreIndicator
	DifficultyIndicator *ui.DifficultyIndicator
	PauseButton         *ui.PauseButton
	SpeedButton         *ui.SpeedButton

	PlayerID        types.EntityID
	SpeedMultiplier float64
	isPaused        bool
}

// NewGame initializes a new game instance. Нулевой сид — случайный.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	world := physics.NewWorld(ecs)

	g := &Game{
		ECS:             ecs,
		TimerSystem:     system.NewTimerSystem(ecs),
		SpawnSystem:     system.NewSpawnSystem(ecs, eventDispatcher, rng),
		BehaviorSystem:  system.NewBehaviorSystem(ecs, rng),
		PlayerSystem:    system.NewPlayerSystem(ecs),
		WeaponSystem:    system.NewWeaponSystem(ecs, eventDispatcher),
		RenderSystem:    system.NewRenderSystem(ecs),
		Physics:         world,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		SpeedMultiplier: 1.0,
	}
	g.CollisionSystem = system.NewCollisionSystem(ecs, world, eventDispatcher)

	g.PlayerID = g.createPlayer()
	g.createFloor()
	g.initUI()

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.DifficultyRaised, listener)
	eventDispatcher.Subscribe(event.WeaponFired, listener)
	eventDispatcher.Subscribe(event.EnemySpawned, listener)
	eventDispatcher.Subscribe(event.GamePaused, listener)

	return g
}

// Update — один тик симуляции в фиксированном порядке: сначала все
// таймеры, затем системы, физика, реакция на контакты и только в конце
// применение отложенных удалений и созданий.
func (g *Game) Update(deltaTime float64, in input.Snapshot) {
	if g.isPaused {
		return
	}
	deltaTime *= g.SpeedMultiplier
	g.ECS.GameTime += deltaTime

	g.TimerSystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.BehaviorSystem.Update(deltaTime)
	g.PlayerSystem.Update(deltaTime, in)
	g.WeaponSystem.Update(deltaTime, in)
	g.Physics.Step(deltaTime)
	g.CollisionSystem.Update(deltaTime)

	g.ECS.Flush()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.RenderSystem.Draw(screen, g.ECS.GameTime)
	g.ScoreIndicator.Draw(screen, g.ECS.Score.Value)
	g.DifficultyIndicator.Draw(screen, g.ECS.Difficulty.Level)
	g.SpeedButton.Draw(screen)
	g.PauseButton.Draw(screen)
}

// HandleClick обрабатывает клики по HUD; true — клик поглощён.
func (g *Game) HandleClick(mx, my int) bool {
	if g.SpeedButton.IsClicked(mx, my) {
		g.SpeedButton.NextState()
		g.SpeedMultiplier = config.SpeedMultipliers[g.SpeedButton.CurrentState]
		return true
	}
	if g.PauseButton.IsClicked(mx, my) {
		g.TogglePause()
		return true
	}
	return false
}

func (g *Game) TogglePause() {
	g.SetPaused(!g.isPaused)
}

func (g *Game) SetPaused(paused bool) {
	if g.isPaused == paused {
		return
	}
	g.isPaused = paused
	g.PauseButton.SetPaused(paused)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GamePaused, Data: paused})
}

func (g *Game) createPlayer() types.EntityID {
	id := g.ECS.NewEntity()
	start := component.Position{X: 0, Y: config.GroundY + config.PlayerHalfSize}
	g.ECS.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Scales[id] = &component.Scale{X: 1, Y: 1}
	g.ECS.Bodies[id] = &component.Body{
		Kind:    component.BodyDynamic,
		HalfW:   config.PlayerHalfSize,
		HalfH:   config.PlayerHalfSize,
		Layer:   component.LayerPlayer,
		Mask:    component.LayerWorld | component.LayerEnemies | component.LayerWeapons | component.LayerProjectiles,
		Gravity: true,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Shape:     component.ShapeCircle,
		Color:     config.PlayerColor,
		Radius:    config.PlayerHalfSize,
		HasStroke: true,
	}
	g.ECS.Players[id] = &component.Player{
		JumpHeight: config.PlayerJumpHeight,
		Location:   start,
	}
	return id
}

// createFloor — статическое тело пола: контакты с ним убивают снаряды.
func (g *Game) createFloor() {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: 0, Y: config.GroundY - 5}
	g.ECS.Bodies[id] = &component.Body{
		Kind:  component.BodyStatic,
		HalfW: config.ArenaHalfWidth,
		HalfH: 5,
		Layer: component.LayerWorld,
		Mask:  component.LayerPlayer | component.LayerEnemies | component.LayerWeapons | component.LayerProjectiles,
	}
}

func (g *Game) initUI() {
	g.ScoreIndicator = ui.NewScoreIndicator(
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		g.EventDispatcher,
	)
	g.DifficultyIndicator = ui.NewDifficultyIndicator(
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX)+30,
		g.EventDispatcher,
	)
	g.SpeedButton = ui.NewSpeedButton(
		float32(config.ScreenWidth-config.SpeedButtonOffsetX),
		float32(config.SpeedButtonY),
		float32(config.SpeedButtonSize),
		config.SpeedButtonColors,
	)
	g.PauseButton = ui.NewPauseButton(
		float32(config.ScreenWidth-config.PauseButtonOffsetX),
		float32(config.SpeedButtonY),
		float32(config.SpeedButtonSize)*0.6,
		config.PauseColor,
		config.PlayColor,
	)
}

// GameEventListener пишет события симуляции в лог.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.DifficultyRaised:
		// Подробности уже залогированы планировщиком.
	case event.WeaponFired:
		log.L().Debug("weapon fired", zap.Any("asset", e.Data))
	case event.EnemySpawned:
		log.L().Debug("enemy spawned",
			zap.Any("variant", e.Data),
			zap.Int("active", l.game.SpawnSystem.ActiveEnemies()))
	case event.GamePaused:
		log.L().Info("pause", zap.Any("paused", e.Data))
	}
}
