// internal/system/spawn.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/log"
	"go-arena-shooter/internal/utils"

	"go.uber.org/zap"
)

// SpawnSystem — планировщик сложности и спавна: тик сложности, волны
// врагов, дроп оружия и материализация предупреждений.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	activeEnemies   int
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *SpawnSystem {
	s := &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
	eventDispatcher.Subscribe(event.EnemyRemoved, s)
	return s
}

func (s *SpawnSystem) Update(deltaTime float64) {
	s.rampDifficulty()
	s.spawnEnemyWave()
	s.spawnWeaponDrop()
	s.materializeWarnings()
	s.cullStrays()
}

// ActiveEnemies — текущее число живых врагов по учёту системы.
func (s *SpawnSystem) ActiveEnemies() int {
	return s.activeEnemies
}

func (s *SpawnSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyRemoved {
		s.activeEnemies--
	}
}

// rampDifficulty: уровень только растёт, интервал волн только убывает
// (с нижней границей); с порогового уровня ускоряется и сам тик сложности.
func (s *SpawnSystem) rampDifficulty() {
	diff := s.ecs.Difficulty
	if !diff.Timer.Finished() {
		return
	}

	diff.Level++
	waves := s.ecs.EnemyWaves
	waves.Timer.Duration = utils.Clamp(waves.Timer.Duration-config.IntervalStep, config.IntervalFloor, waves.Timer.Duration)
	if diff.Level >= config.DifficultyAccelLevel {
		diff.Timer.Duration = utils.Clamp(diff.Timer.Duration-config.IntervalStep, config.IntervalFloor, diff.Timer.Duration)
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.DifficultyRaised, Data: diff.Level})
	log.L().Info("difficulty raised",
		zap.Int("level", diff.Level),
		zap.Float64("wave_interval", waves.Timer.Duration),
		zap.Float64("difficulty_interval", diff.Timer.Duration))
}

func (s *SpawnSystem) spawnEnemyWave() {
	if !s.ecs.EnemyWaves.Timer.Finished() {
		return
	}
	if s.activeEnemies > config.MaxLiveEnemies {
		return
	}

	level := s.ecs.Difficulty.Level
	count := level
	if count > config.MaxWaveSize {
		count = config.MaxWaveSize
	}
	for i := 0; i < count; i++ {
		variant := defs.BehaviorForDecider(s.decider(level))
		s.spawnWarning(component.SpawnWarning{
			Kind:      component.SpawnEnemy,
			Behavior:  variant,
			Countdown: component.NewTimer(config.WarningDuration),
		})
	}
	log.L().Debug("enemy wave scheduled", zap.Int("count", count), zap.Int("level", level))
}

// decider — взвешенный выбор варианта: случайное число от уровня
// сложности по модулю размера таблицы.
func (s *SpawnSystem) decider(level int) int {
	if level <= 0 {
		return 0
	}
	return s.rng.Intn(level) % config.SpawnDeciderModulo
}

func (s *SpawnSystem) spawnWeaponDrop() {
	if !s.ecs.WeaponDrops.Timer.Finished() {
		return
	}
	// Минимальная ротация дропа — всегда Base.
	s.spawnWarning(component.SpawnWarning{
		Kind:      component.SpawnWeapon,
		Asset:     component.WeaponBase,
		Countdown: component.NewTimer(config.WarningDuration),
	})
}

// spawnWarning создаёт телеграф в случайной точке линии спавна.
// Создание отложено: предупреждение видно запросам со следующего тика.
func (s *SpawnSystem) spawnWarning(warning component.SpawnWarning) {
	x := s.rng.Range(-config.ArenaHalfWidth, config.ArenaHalfWidth)
	s.ecs.Defer(func(e *entity.ECS) {
		id := e.NewEntity()
		e.Positions[id] = &component.Position{X: x, Y: config.SpawnLineY}
		e.Renderables[id] = &component.Renderable{
			Shape:  component.ShapeCircle,
			Color:  config.WarningColor,
			Radius: 8,
		}
		w := warning
		e.Warnings[id] = &w
	})
}

// materializeWarnings заменяет истёкшие предупреждения настоящими
// сущностями в той же точке.
func (s *SpawnSystem) materializeWarnings() {
	for id, warning := range s.ecs.Warnings {
		if !warning.Countdown.Finished() {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		at := *pos
		s.ecs.QueueDespawn(id)

		switch warning.Kind {
		case component.SpawnEnemy:
			s.materializeEnemy(at, warning.Behavior)
		case component.SpawnWeapon:
			s.materializeWeapon(at, warning.Asset)
		}
	}
}

func (s *SpawnSystem) materializeEnemy(at component.Position, variant component.BehaviorVariant) {
	def := defs.EnemyLibrary[variant]
	direction := s.rng.Sign()
	s.activeEnemies++

	s.ecs.Defer(func(e *entity.ECS) {
		id := e.NewEntity()
		e.Positions[id] = &component.Position{X: at.X, Y: at.Y}
		e.Velocities[id] = &component.Velocity{}
		e.Scales[id] = &component.Scale{X: 1, Y: 1}
		e.Bodies[id] = &component.Body{
			Kind:    component.BodyDynamic,
			HalfW:   float64(def.Visuals.Radius),
			HalfH:   float64(def.Visuals.Radius),
			Layer:   component.LayerEnemies,
			Mask:    component.LayerWorld | component.LayerPlayer | component.LayerProjectiles,
			Gravity: true,
		}
		e.Renderables[id] = &component.Renderable{
			Shape:  component.ShapeCircle,
			Color:  def.Visuals.RGBA(),
			Radius: def.Visuals.Radius,
		}
		e.Enemies[id] = &component.Enemy{
			Behavior:  variant,
			Health:    def.Health,
			Direction: direction,
			DelayMove: component.NewRepeating(def.DelayMove),
			State:     component.StateDormant,
		}
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: variant})
}

// cullStrays убирает врагов, выпрыгнувших далеко за арену; удаление
// освобождает место под лимитом живых врагов.
func (s *SpawnSystem) cullStrays() {
	for id := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if pos.X < -config.ArenaHalfWidth-config.CullMargin || pos.X > config.ArenaHalfWidth+config.CullMargin {
			if s.ecs.PendingDespawn(id) {
				continue
			}
			s.ecs.QueueDespawn(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyRemoved, Data: s.ecs.Enemies[id].Behavior})
			log.L().Debug("stray enemy culled", zap.Float64("x", pos.X))
		}
	}
}

func (s *SpawnSystem) materializeWeapon(at component.Position, asset component.WeaponAsset) {
	def := defs.WeaponLibrary[asset]

	s.ecs.Defer(func(e *entity.ECS) {
		id := e.NewEntity()
		e.Positions[id] = &component.Position{X: at.X, Y: at.Y}
		e.Velocities[id] = &component.Velocity{}
		// Сенсор нулевого размера: пересечение засчитывается, когда
		// точка оказывается внутри тела игрока.
		e.Bodies[id] = &component.Body{
			Kind:    component.BodyDynamic,
			Layer:   component.LayerWeapons,
			Mask:    component.LayerWorld | component.LayerPlayer,
			Sensor:  true,
			Gravity: true,
		}
		e.Renderables[id] = &component.Renderable{
			Shape:  component.ShapeCircle,
			Color:  def.Visuals.RGBA(),
			Radius: def.Visuals.Radius,
		}
		e.Pickups[id] = &component.WeaponPickup{Asset: asset}
	})
}
