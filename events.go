package wirework

import (
	"reflect"
	"sync"
)

// Events is a synchronous event emitter satisfying Emitter. Views embed it
// as their semantic-event surface; it also works standalone for models,
// collections, or any object others bind to.
//
// Listeners for an event run in subscription order. Emit iterates a
// snapshot of the listener list, so listeners may subscribe or unsubscribe
// during dispatch without skipping or double-running entries.
type Events struct {
	mu        sync.RWMutex
	listeners map[string][]listenerEntry
	nextToken Token
}

// listenerEntry is one registration. The token is its identity; the code
// pointer plus the context tag is what match-based Unsubscribe compares.
type listenerEntry struct {
	fn      Listener
	ptr     uintptr
	context any
	token   Token
}

// NewEvents creates an empty emitter.
func NewEvents() *Events {
	return &Events{listeners: make(map[string][]listenerEntry)}
}

// Subscribe registers fn for event under context and returns the Token
// naming the new registration. Repeated calls with identical arguments add
// independent registrations with distinct tokens.
func (e *Events) Subscribe(event string, fn Listener, context any) Token {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listeners == nil {
		e.listeners = make(map[string][]listenerEntry)
	}
	e.nextToken++
	e.listeners[event] = append(e.listeners[event], listenerEntry{
		fn:      fn,
		ptr:     reflect.ValueOf(fn).Pointer(),
		context: context,
		token:   e.nextToken,
	})
	return e.nextToken
}

// Release removes the single registration token names. Releasing a token
// that is not live (or the zero Token) is a no-op.
func (e *Events) Release(event string, token Token) {
	e.mu.Lock()
	defer e.mu.Unlock()
	entries := e.listeners[event]
	for i, entry := range entries {
		if entry.token == token {
			e.listeners[event] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Unsubscribe removes one registration matching event, fn, and context.
// Removing a registration that does not exist is a no-op.
func (e *Events) Unsubscribe(event string, fn Listener, context any) {
	ptr := reflect.ValueOf(fn).Pointer()

	e.mu.Lock()
	defer e.mu.Unlock()
	entries := e.listeners[event]
	for i, entry := range entries {
		if entry.ptr == ptr && entry.context == context {
			e.listeners[event] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Emit calls every listener registered for event, in subscription order,
// passing args through. Dispatch runs over a snapshot taken at call time.
func (e *Events) Emit(event string, args ...any) {
	e.mu.RLock()
	entries := e.listeners[event]
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)
	e.mu.RUnlock()

	for _, entry := range snapshot {
		entry.fn(args...)
	}
}

// ListenerCount returns the number of live registrations for event.
func (e *Events) ListenerCount(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[event])
}

// RemoveAll drops every registration for every event.
func (e *Events) RemoveAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = make(map[string][]listenerEntry)
}
