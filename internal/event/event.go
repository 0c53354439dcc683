// internal/event/event.go
package event

import "reflect"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // у каждого типа своя полезная нагрузка, см. types.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher доставляет события синхронно, в порядке подписки.
// Подписчик может подписываться и отписываться прямо из OnEvent:
// изменения вступают в силу со следующего Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe снимает первую подписку listener на eventType.
// Несравнимые подписчики (ListenerFunc) отписать нельзя, вызов для них ничего не делает.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listener == nil || !reflect.TypeOf(listener).Comparable() {
		return
	}
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if reflect.TypeOf(l).Comparable() && l == listener {
			rest := make([]Listener, 0, len(listeners)-1)
			rest = append(rest, listeners[:i]...)
			d.listeners[eventType] = append(rest, listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of subscribers for eventType.
func (d *Dispatcher) Listeners(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	// Unsubscribe не трогает старый срез, поэтому обход снимка безопасен
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// ListenerFunc позволяет использовать функцию как подписчика
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}
