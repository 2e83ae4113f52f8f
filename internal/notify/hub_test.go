package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gceelixir/symposium/internal/registration"
)

func change(op Op, id, email string) Change {
	return Change{Op: op, Registration: registration.Registration{ID: id, Email: email}}
}

func TestTableWideSubscriptionSeesEverything(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()

	hub.Publish(change(OpInsert, "AAAAAAAAA", "a@example.com"))
	hub.Publish(change(OpUpdate, "BBBBBBBBB", "b@example.com"))

	first := <-sub.C()
	second := <-sub.C()
	assert.Equal(t, "AAAAAAAAA", first.Registration.ID)
	assert.Equal(t, OpUpdate, second.Op)
}

func TestEmailSubscriptionFiltersCaseInsensitively(t *testing.T) {
	hub := NewHub()
	sub := hub.SubscribeEmail("Asha@Example.COM")
	defer sub.Close()

	hub.Publish(change(OpInsert, "OTHER0001", "other@example.com"))
	hub.Publish(change(OpUpdate, "MINE00001", "ASHA@example.com"))

	got := <-sub.C()
	assert.Equal(t, "MINE00001", got.Registration.ID)
	select {
	case extra := <-sub.C():
		t.Fatalf("unexpected change delivered: %+v", extra)
	default:
	}
}

func TestSlowSubscriberNeverBlocksPublish(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()

	// Nobody is draining; publishing far past the buffer must return.
	for i := 0; i < 100; i++ {
		hub.Publish(change(OpInsert, "AAAAAAAAA", "a@example.com"))
	}

	got := <-sub.C()
	assert.Equal(t, OpInsert, got.Op)
}

func TestCloseIsIdempotentAndStopsDelivery(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	sub.Close()
	sub.Close()

	hub.Publish(change(OpInsert, "AAAAAAAAA", "a@example.com"))

	_, ok := <-sub.C()
	require.False(t, ok, "channel should be closed")
}
