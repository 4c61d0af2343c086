package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterUnregister(t *testing.T) {
	r := NewRegistry()
	a := r.Register("alice")
	b := r.Register("bob")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, r.Count())

	r.Unregister(a.ID)
	r.Unregister(a.ID) // no-op
	assert.Equal(t, 1, r.Count())

	sessions := r.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "bob", sessions[0].Username)
	assert.Equal(t, b.ID, sessions[0].ID)
}

func TestRegistrySessionsOrdered(t *testing.T) {
	r := NewRegistry()
	base := time.Unix(1000, 0)
	tick := 0
	r.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	r.Register("first")
	r.Register("second")
	r.Register("third")

	var names []string
	for _, s := range r.Sessions() {
		names = append(names, s.Username)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}

func TestRegistryShutdownNotifiesAndWaits(t *testing.T) {
	r := NewRegistry()
	h := r.Register("alice")

	go func() {
		ev := <-h.EventsCh
		if ev.Type == EventServerShutdown {
			r.Unregister(h.ID)
		}
	}()

	assert.Equal(t, 0, r.Shutdown(2*time.Second))
	assert.Zero(t, r.Count())
}

func TestRegistryShutdownTimeout(t *testing.T) {
	r := NewRegistry()
	h := r.Register("stuck")

	start := time.Now()
	assert.Equal(t, 1, r.Shutdown(100*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)

	select {
	case ev := <-h.EventsCh:
		assert.Equal(t, EventServerShutdown, ev.Type)
	default:
		t.Fatal("no shutdown event delivered")
	}
}

func TestRegistryLateJoinerSeesShutdown(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Shutdown(10*time.Millisecond))

	h := r.Register("late")
	select {
	case ev := <-h.EventsCh:
		assert.Equal(t, EventServerShutdown, ev.Type)
	default:
		t.Fatal("late session not told about shutdown")
	}
}
