package events

import (
	"fmt"
	"log"
	"reflect"

	"github.com/Rexiusq/GameCore/internal/common/errs"
)

// Define errors
var (
	ErrNilListener = fmt.Errorf("%w: listener cannot be nil", errs.ErrInvalidArgument)
	ErrNilAction   = fmt.Errorf("%w: action cannot be nil", errs.ErrInvalidArgument)
)

// Dispatcher fans domain actions out to subscribed listeners and retains a
// complete, ordered history for replay and audit. History recording is
// independent of listener outcomes: a faulty observer cannot corrupt the
// log or block delivery to the others.
type Dispatcher struct {
	listeners []Listener
	history   []Action
}

// NewDispatcher creates a dispatcher with no listeners and an empty history
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: []Listener{},
		history:   []Action{},
	}
}

// Subscribe registers a listener. Re-subscribing the same listener identity
// is a no-op; notification order equals subscription order. Listeners of
// uncomparable dynamic types (func adapters) have no identity, so every
// registration of one counts as distinct.
func (d *Dispatcher) Subscribe(listener Listener) error {
	if listener == nil {
		return ErrNilListener
	}

	for _, l := range d.listeners {
		if sameListener(l, listener) {
			return nil
		}
	}

	d.listeners = append(d.listeners, listener)
	return nil
}

// Unsubscribe removes a listener if present; unknown listeners are a no-op
func (d *Dispatcher) Unsubscribe(listener Listener) {
	for i, l := range d.listeners {
		if sameListener(l, listener) {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// sameListener reports whether two listeners share the same identity.
// Comparing interface values of an uncomparable dynamic type panics, so
// those never match.
func sameListener(a, b Listener) bool {
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}

// Dispatch appends the action to history, then notifies every listener in
// subscription order. A panic raised by one listener is recovered and
// logged; it neither fails the dispatch nor prevents delivery to the
// listeners that follow.
func (d *Dispatcher) Dispatch(action Action) error {
	if action == nil {
		return ErrNilAction
	}

	d.history = append(d.history, action)

	// Iterate a copy so a listener that unsubscribes itself mid-dispatch
	// cannot disturb delivery order
	listeners := make([]Listener, len(d.listeners))
	copy(listeners, d.listeners)

	for _, l := range listeners {
		d.notify(l, action)
	}

	return nil
}

func (d *Dispatcher) notify(listener Listener, action Action) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("events: listener failed handling action %s: %v", action.ActionID(), r)
		}
	}()
	listener.OnGameEvent(action)
}

// GetEventsByType returns the actions whose type matches, preserving
// original dispatch order
func (d *Dispatcher) GetEventsByType(actionType ActionType) []Action {
	matches := []Action{}
	for _, a := range d.history {
		if a.Type() == actionType {
			matches = append(matches, a)
		}
	}
	return matches
}

// History returns the full action log in dispatch order. The slice is a
// copy; the actions are shared.
func (d *Dispatcher) History() []Action {
	history := make([]Action, len(d.history))
	copy(history, d.history)
	return history
}

// ClearHistory empties the action log without touching subscriptions
func (d *Dispatcher) ClearHistory() {
	d.history = []Action{}
}

// ListenerCount returns the number of subscribed listeners
func (d *Dispatcher) ListenerCount() int {
	return len(d.listeners)
}
