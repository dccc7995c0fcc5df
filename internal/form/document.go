package form

import (
	"errors"
	"fmt"
	"sync"
)

var ErrElementNotFound = errors.New("element not found")

// Document holds the elements of a page by id.
type Document struct {
	mu       sync.RWMutex
	elements map[string]*Element
}

func NewDocument() *Document {
	return &Document{
		elements: make(map[string]*Element),
	}
}

// Add creates an element with the given id, replacing any previous one.
func (d *Document) Add(id string) *Element {
	el := &Element{id: id}

	d.mu.Lock()
	d.elements[id] = el
	d.mu.Unlock()

	return el
}

// Input adds an element carrying an initial value.
func (d *Document) Input(id, value string) *Element {
	el := d.Add(id)
	el.SetValue(value)
	return el
}

func (d *Document) Lookup(id string) (*Element, error) {
	d.mu.RLock()
	el, ok := d.elements[id]
	d.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}
	return el, nil
}
