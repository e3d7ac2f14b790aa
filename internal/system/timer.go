// internal/system/timer.go
package system

import "go-arena-shooter/internal/entity"

// TimerSystem продвигает все активные таймеры ровно один раз за тик.
// Выполняется первым: к моменту, когда любая система проверяет
// Finished, все таймеры уже продвинуты.
type TimerSystem struct {
	ecs *entity.ECS
}

func NewTimerSystem(ecs *entity.ECS) *TimerSystem {
	return &TimerSystem{ecs: ecs}
}

func (s *TimerSystem) Update(deltaTime float64) {
	for _, t := range s.ecs.Lifetimes {
		t.Tick(deltaTime)
	}
	for _, w := range s.ecs.Warnings {
		w.Countdown.Tick(deltaTime)
	}
	for _, e := range s.ecs.Enemies {
		e.DelayMove.Tick(deltaTime)
		if !e.Dormant() {
			e.Active.Tick(deltaTime)
		}
	}
	for _, d := range s.ecs.Dashes {
		d.Timer.Tick(deltaTime)
	}

	s.ecs.DashMemory.Timer.Tick(deltaTime)
	s.ecs.Difficulty.Timer.Tick(deltaTime)
	s.ecs.EnemyWaves.Timer.Tick(deltaTime)
	s.ecs.WeaponDrops.Timer.Tick(deltaTime)
}
