package netstate

import "sync"

// Monitor tracks the client's current online/offline state. It is purely
// event-driven: callers feed transitions via SetOnline (typically from the
// outcome of remote calls or a host connectivity signal), and subscribers
// receive the new state on their channel. There is no polling.
//
// A Monitor starts online; the first failed remote call flips it offline.
type Monitor struct {
	mu     sync.RWMutex
	online bool
	subs   []chan bool
}

// NewMonitor returns a Monitor in the online state.
func NewMonitor() *Monitor {
	return &Monitor{online: true}
}

// Online returns the current connectivity state.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// SetOnline records a connectivity transition. Subscribers are notified only
// when the state actually changes; repeated signals of the same state are
// dropped. Notification is non-blocking: a subscriber that has not consumed
// the previous transition misses the intermediate value, which is safe
// because only the latest state matters.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.online == online {
		return
	}
	m.online = online

	for _, sub := range m.subs {
		select {
		case sub <- online:
		default:
			// Drop the stale value and replace it with the latest.
			select {
			case <-sub:
			default:
			}
			select {
			case sub <- online:
			default:
			}
		}
	}
}

// Changes returns a channel that receives the new state on every
// online/offline transition. The channel has a one-element buffer; see
// SetOnline for the coalescing behavior.
func (m *Monitor) Changes() <-chan bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan bool, 1)
	m.subs = append(m.subs, ch)
	return ch
}
