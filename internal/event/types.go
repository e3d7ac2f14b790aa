// internal/event/types.go
package event

const (
	EnemySpawned     EventType = "EnemySpawned"     // враг материализовался из предупреждения
	EnemyRemoved     EventType = "EnemyRemoved"     // враг убран из симуляции
	WeaponPickedUp   EventType = "WeaponPickedUp"   // игрок подобрал оружие
	WeaponFired      EventType = "WeaponFired"      // выстрел из удерживаемого оружия
	DifficultyRaised EventType = "DifficultyRaised" // тик сложности
	GamePaused       EventType = "GamePaused"       // пауза включена/снята, Data — bool
)
