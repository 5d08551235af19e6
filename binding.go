package wirework

// Subscription records one active listener registration tracked for later
// removal. Identity is the record itself: two subscriptions with identical
// fields are distinct and are unbound independently. A Subscription belongs
// to the Binder that created it and is never shared.
type Subscription struct {
	Source   Emitter
	Event    string
	Callback Listener
	Context  any

	// token names the exact registration on Source, so removal can never
	// touch a different listener that merely compares equal.
	token Token
}

// Binder is a per-owner ledger of active event subscriptions. It holds them
// in insertion order, duplicates permitted, and maintains one invariant:
// every record corresponds to exactly one live listener registration on its
// source. Adding and removing records is always paired with registering and
// deregistering the listener, so the ledger and the live listener state
// cannot drift apart.
//
// Binder carries no other state and performs no validation of its inputs -
// failures in the underlying emitter propagate to the caller.
type Binder struct {
	owner any
	subs  []*Subscription
}

// NewBinder creates a ledger owned by owner. The owner is the default
// context for Bind calls that pass a nil context.
func NewBinder(owner any) *Binder {
	return &Binder{owner: owner}
}

// Bind registers fn for event on source and appends a new Subscription to
// the ledger. A nil context defaults to the binder's owner. The returned
// record is an opaque handle for a later Unbind.
//
// No deduplication: repeated calls with identical arguments produce
// independent, independently-removable subscriptions.
func (b *Binder) Bind(source Emitter, event string, fn Listener, context any) *Subscription {
	if context == nil {
		context = b.owner
	}
	token := source.Subscribe(event, fn, context)
	sub := &Subscription{
		Source:   source,
		Event:    event,
		Callback: fn,
		Context:  context,
		token:    token,
	}
	b.subs = append(b.subs, sub)
	return sub
}

// Unbind deregisters the listener behind sub and removes exactly that
// record from the ledger, matched by identity. The registration is
// released by token, never by callback comparison, so unbinding one of two
// look-alike subscriptions always removes the right listener. A record
// that is not in the ledger (or nil) removes nothing and touches no
// listener.
func (b *Binder) Unbind(sub *Subscription) {
	for i, cur := range b.subs {
		if cur == sub {
			sub.Source.Release(sub.Event, sub.token)
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// UnbindAll deregisters every tracked subscription and empties the ledger.
//
// It iterates a snapshot of the current records, so an Unbind invoked
// reentrantly while the traversal runs cannot skip or double-process
// entries. Calling on an empty ledger is a no-op.
func (b *Binder) UnbindAll() {
	snapshot := make([]*Subscription, len(b.subs))
	copy(snapshot, b.subs)
	for _, sub := range snapshot {
		b.Unbind(sub)
	}
}

// Len returns the number of tracked subscriptions.
func (b *Binder) Len() int {
	return len(b.subs)
}

// Subscriptions returns a point-in-time copy of the ledger, in insertion
// order.
func (b *Binder) Subscriptions() []*Subscription {
	out := make([]*Subscription, len(b.subs))
	copy(out, b.subs)
	return out
}
