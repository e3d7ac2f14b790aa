// internal/component/timer.go
package component

// Timer — обратный отсчёт. Один таймер обслуживает ровно одну цель,
// общие таймеры между системами запрещены.
type Timer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool
	finished  bool
}

// NewTimer создаёт одноразовый таймер.
func NewTimer(duration float64) Timer {
	return Timer{Duration: duration}
}

// NewRepeating создаёт циклический таймер.
func NewRepeating(duration float64) Timer {
	return Timer{Duration: duration, Repeating: true}
}

// Tick продвигает таймер. Все таймеры продвигаются ровно один раз за тик,
// до того как какая-либо система проверит Finished.
func (t *Timer) Tick(dt float64) {
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.finished = true
		if t.Repeating {
			// Перенос остатка в следующий цикл
			if t.Duration > 0 {
				for t.Elapsed >= t.Duration {
					t.Elapsed -= t.Duration
				}
			} else {
				t.Elapsed = 0
			}
		}
		return
	}
	if t.Repeating {
		// Циклический таймер сигналит только в тик пересечения порога
		t.finished = false
	}
}

// Finished — true, как только Elapsed достиг Duration. Одноразовый таймер
// остаётся завершённым, циклический — только в тик срабатывания.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset начинает отсчёт заново.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
}

// Expire принудительно "израсходует" таймер.
func (t *Timer) Expire() {
	t.Elapsed = t.Duration
	t.finished = true
}
