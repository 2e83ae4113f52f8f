// Package notify is the in-process change feed for registrations. Views
// subscribe either table-wide (admin console) or filtered to one email
// (verify/dashboard); subscriptions are scoped to the view's lifetime and
// must be closed on teardown. Delivery is at-least-once from the consumer's
// point of view: a slow subscriber may miss intermediate changes but never
// blocks a publisher, and consumers merge with upsert-by-id semantics.
package notify

import (
	"strings"
	"sync"

	"github.com/gceelixir/symposium/internal/registration"
)

type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
)

type Change struct {
	Op           Op                        `json:"op"`
	Registration registration.Registration `json:"registration"`
}

type Subscription struct {
	hub   *Hub
	email string // lowercase filter, empty for table-wide
	ch    chan Change
	once  sync.Once
}

// C delivers matching changes until Close.
func (s *Subscription) C() <-chan Change { return s.ch }

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

type Hub struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Subscribe opens a table-wide stream.
func (h *Hub) Subscribe() *Subscription {
	return h.subscribe("")
}

// SubscribeEmail opens a stream limited to one registrant's records,
// matched case-insensitively.
func (h *Hub) SubscribeEmail(email string) *Subscription {
	return h.subscribe(strings.ToLower(strings.TrimSpace(email)))
}

func (h *Hub) subscribe(email string) *Subscription {
	sub := &Subscription{hub: h, email: email, ch: make(chan Change, 16)}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

// Publish fans a change out to every matching subscriber. Sends never
// block: a subscriber whose buffer is full drops the change and catches up
// on its next delivery.
func (h *Hub) Publish(c Change) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		if sub.email != "" && sub.email != strings.ToLower(c.Registration.Email) {
			continue
		}
		select {
		case sub.ch <- c:
		default:
		}
	}
}
