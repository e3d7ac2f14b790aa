// internal/event/event.go
package event

// EventType — тип события.
type EventType string

// Event — событие симуляции; Data заполняется по необходимости.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — подписчик на события.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий внутри одного тика.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe добавляет подписчика на события данного типа.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe снимает подписку; отсутствующий подписчик игнорируется.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch синхронно доставляет событие всем подписчикам. Итерация идёт
// по снимку списка: подписчик может отписаться прямо из OnEvent.
func (d *Dispatcher) Dispatch(event Event) {
	listeners, exists := d.listeners[event.Type]
	if !exists {
		return
	}
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}
