package netstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_StartsOnline(t *testing.T) {
	m := NewMonitor()
	assert.True(t, m.Online())
}

func TestMonitor_SetOnline_NotifiesOnChange(t *testing.T) {
	m := NewMonitor()
	changes := m.Changes()

	m.SetOnline(false)

	select {
	case online := <-changes:
		assert.False(t, online)
	case <-time.After(time.Second):
		t.Fatal("expected a connectivity change notification")
	}

	m.SetOnline(true)

	select {
	case online := <-changes:
		assert.True(t, online)
	case <-time.After(time.Second):
		t.Fatal("expected a connectivity change notification")
	}
}

func TestMonitor_SetOnline_NoNotificationWithoutChange(t *testing.T) {
	m := NewMonitor()
	changes := m.Changes()

	m.SetOnline(true) // already online

	select {
	case <-changes:
		t.Fatal("no notification expected when the state does not change")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMonitor_Changes_CoalescesWhenSubscriberIsSlow(t *testing.T) {
	m := NewMonitor()
	changes := m.Changes()

	// subscriber not reading: rapid flaps must not block the publisher
	m.SetOnline(false)
	m.SetOnline(true)
	m.SetOnline(false)

	// only the latest state is retained
	select {
	case online := <-changes:
		assert.False(t, online)
	case <-time.After(time.Second):
		t.Fatal("expected the latest state to be buffered")
	}

	select {
	case <-changes:
		t.Fatal("intermediate states must be coalesced")
	case <-time.After(50 * time.Millisecond):
	}

	require.False(t, m.Online())
}

func TestMonitor_MultipleSubscribers(t *testing.T) {
	m := NewMonitor()
	first := m.Changes()
	second := m.Changes()

	m.SetOnline(false)

	for _, ch := range []<-chan bool{first, second} {
		select {
		case online := <-ch:
			assert.False(t, online)
		case <-time.After(time.Second):
			t.Fatal("every subscriber receives the change")
		}
	}
}
