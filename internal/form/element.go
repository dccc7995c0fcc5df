package form

import (
	"sync"
	"sync/atomic"
)

const EventSubmit = "submit"

type Listener func(ev *Event)

type Event struct {
	Type             string
	defaultPrevented atomic.Bool
}

func (e *Event) PreventDefault() {
	e.defaultPrevented.Store(true)
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented.Load()
}

// Element is a single node: an input (value), a status sink (text and
// color) or a form (submit listeners).
type Element struct {
	id string

	mu        sync.RWMutex
	value     string
	text      string
	color     string
	listeners map[string][]Listener
}

func (e *Element) ID() string {
	return e.id
}

func (e *Element) Value() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.value
}

func (e *Element) SetValue(v string) {
	e.mu.Lock()
	e.value = v
	e.mu.Unlock()
}

func (e *Element) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text
}

func (e *Element) Color() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.color
}

// SetStatus writes text and color together so readers never see a mix of
// two outcomes.
func (e *Element) SetStatus(text, color string) {
	e.mu.Lock()
	e.text = text
	e.color = color
	e.mu.Unlock()
}

func (e *Element) AddEventListener(eventType string, fn Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], fn)
}

// Dispatch runs every listener registered for ev.Type in registration order.
func (e *Element) Dispatch(ev *Event) *Event {
	e.mu.RLock()
	listeners := append([]Listener(nil), e.listeners[ev.Type]...)
	e.mu.RUnlock()

	for _, fn := range listeners {
		fn(ev)
	}
	return ev
}

// Submit fires a submit interaction on the element.
func (e *Element) Submit() *Event {
	return e.Dispatch(&Event{Type: EventSubmit})
}
