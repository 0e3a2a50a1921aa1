package audit

import "sync"

// Compile-time interface checks.
var (
	_ Hook           = (*Trail)(nil)
	_ OnTransfer     = (*Trail)(nil)
	_ OnApprove      = (*Trail)(nil)
	_ OnTransferFrom = (*Trail)(nil)
)

// Trail records every observed event in memory, in dispatch order.
// The trail guards its own slice, so it can be read while another
// goroutine drives the (externally serialized) ledger.
type Trail struct {
	mu     sync.RWMutex
	events []Event
}

// NewTrail creates an empty trail.
func NewTrail() *Trail {
	return &Trail{}
}

// Name implements Hook.
func (t *Trail) Name() string { return "audit-trail" }

// OnTransfer implements OnTransfer.
func (t *Trail) OnTransfer(e Event) error { return t.record(e) }

// OnApprove implements OnApprove.
func (t *Trail) OnApprove(e Event) error { return t.record(e) }

// OnTransferFrom implements OnTransferFrom.
func (t *Trail) OnTransferFrom(e Event) error { return t.record(e) }

func (t *Trail) record(e Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.events = append(t.events, e)
	return nil
}

// Events returns a copy of all recorded events.
func (t *Trail) Events() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Len returns the number of recorded events.
func (t *Trail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.events)
}
