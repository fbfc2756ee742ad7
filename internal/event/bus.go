package event

import "time"

// Handler receives published envelopes.
type Handler func(Envelope)

// Subscription identifies one registered handler.
type Subscription struct {
	id int
}

// Bus delivers envelopes to pattern-matched subscribers, synchronously
// and in subscription order.
//
// The bus is not safe for concurrent use; like the rest of the
// framework it lives on the UI thread.
type Bus struct {
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id      int
	pattern Topic
	handler Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all topics matching the pattern.
func (b *Bus) Subscribe(pattern Topic, h Handler) Subscription {
	b.nextID++
	b.subs = append(b.subs, subscriber{id: b.nextID, pattern: pattern, handler: h})
	return Subscription{id: b.nextID}
}

// Unsubscribe removes a previously registered handler. Returns whether
// the subscription was found.
func (b *Bus) Unsubscribe(sub Subscription) bool {
	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers the payload to every matching subscriber before
// returning. A panicking handler does not stop delivery to the rest.
func (b *Bus) Publish(topic Topic, payload any) {
	env := Envelope{Topic: topic, Payload: payload, Timestamp: time.Now()}
	for _, s := range b.subs {
		if topic.Matches(s.pattern) {
			deliver(s.handler, env)
		}
	}
}

// SubscriberCount returns the number of registered handlers.
func (b *Bus) SubscriberCount() int {
	return len(b.subs)
}

// deliver invokes a handler, swallowing panics so one faulty consumer
// cannot take down the session.
func deliver(h Handler, env Envelope) {
	defer func() {
		_ = recover()
	}()
	h(env)
}
