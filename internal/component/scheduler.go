// internal/component/scheduler.go
package component

// Difficulty — глобальный уровень сложности. Level только растёт.
type Difficulty struct {
	Level int
	Timer Timer // циклический; с порогового уровня сам ускоряется
}

// EnemyWaves — каденция волн врагов. Интервал только убывает,
// с нижней границей.
type EnemyWaves struct {
	Timer Timer
}

// WeaponDrops — независимый интервал появления оружия.
type WeaponDrops struct {
	Timer Timer
}

// Score — глобальный счёт, растёт при подборе оружия.
type Score struct {
	Value int
}
