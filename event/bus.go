// Package event provides a one-shot publish/subscribe bus. Subscribers are
// registered for a single event or, through multisubscriptions, for any
// event matched by a selector, and are removed the first time they fire.
package event

import (
	"github.com/comanlab/coman/hooking"
	"github.com/comanlab/coman/queueing"
)

// An Event identifies something that can be raised on a Bus. Any comparable
// value can serve as an event. Application code usually uses strings or
// small struct values; the bus itself mints UniqueEvents.
type Event any

// A Subscriber is called with the event that triggered it.
type Subscriber func(e Event)

// A Selector reports whether an event should trigger a multisubscription.
type Selector func(e Event) bool

// HookPosBeforeRaise marks the moment before an event is dispatched to its
// subscribers.
var HookPosBeforeRaise = &hooking.HookPos{Name: "BeforeRaise"}

// HookPosAfterRaise marks the moment after an event has been dispatched.
var HookPosAfterRaise = &hooking.HookPos{Name: "AfterRaise"}

type multisubscription struct {
	selector   Selector
	subscriber Subscriber
}

// A Bus dispatches raised events to one-shot subscribers. It is safe for a
// subscriber to call back into the bus while it is being dispatched to,
// including for the very event being raised. The bus is not safe for
// concurrent use from multiple goroutines.
type Bus struct {
	hooking.HookableBase

	subscriptions      map[Event]*queueing.Queue[Subscriber]
	multisubscriptions []multisubscription
	nextNonce          uint64
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{
		subscriptions: make(map[Event]*queueing.Queue[Subscriber]),
	}
}

// Subscribe registers subscriber to be called the next time e is raised.
// Subscribers for the same event fire in registration order. The
// subscription is one-shot: it is removed as it fires.
func (b *Bus) Subscribe(e Event, subscriber Subscriber) {
	q, ok := b.subscriptions[e]
	if !ok {
		q = &queueing.Queue[Subscriber]{}
		b.subscriptions[e] = q
	}

	q.Push(subscriber)
}

// Multisubscribe registers subscriber to be called for the first raised
// event that selector matches. Like Subscribe, the registration is one-shot.
func (b *Bus) Multisubscribe(selector Selector, subscriber Subscriber) {
	b.multisubscriptions = append(b.multisubscriptions,
		multisubscription{selector: selector, subscriber: subscriber})
}

// RaiseEvent calls and removes every subscriber registered for e and every
// multisubscriber whose selector matches e. Subscribers registered during
// the dispatch are kept for a later raise, never invoked by this one.
func (b *Bus) RaiseEvent(e Event) {
	if b.NumHooks() > 0 {
		b.InvokeHook(hooking.HookCtx{
			Domain: b,
			Pos:    HookPosBeforeRaise,
			Item:   e,
		})
	}

	b.dispatchSubscriptions(e)
	b.dispatchMultisubscriptions(e)

	if b.NumHooks() > 0 {
		b.InvokeHook(hooking.HookCtx{
			Domain: b,
			Pos:    HookPosAfterRaise,
			Item:   e,
		})
	}
}

func (b *Bus) dispatchSubscriptions(e Event) {
	subscribers, ok := b.subscriptions[e]
	if !ok {
		return
	}

	// Only the subscribers present when the raise began are consumed. A
	// subscriber may re-subscribe to the same event; such entries stay
	// queued for the next raise.
	subscribers.Drain(func(s Subscriber) {
		s(e)
	}, queueing.DrainExistingOnly)

	if subscribers.Size() == 0 {
		delete(b.subscriptions, e)
	}
}

func (b *Bus) dispatchMultisubscriptions(e Event) {
	// The live list is snapshotted and cleared so that multisubscriptions
	// registered by the invoked subscribers accumulate separately and are
	// not evaluated against the current event.
	snapshot := b.multisubscriptions
	b.multisubscriptions = nil

	var remaining []multisubscription

	for _, ms := range snapshot {
		if ms.selector(e) {
			ms.subscriber(e)
		} else {
			remaining = append(remaining, ms)
		}
	}

	b.multisubscriptions = append(remaining, b.multisubscriptions...)
}

// UniqueEvent mints an event that is distinct from every other event this
// bus has minted or will mint.
func (b *Bus) UniqueEvent() Event {
	nonce := b.nextNonce
	b.nextNonce++

	return UniqueEvent{nonce: nonce}
}
