package audit

import (
	"fmt"
	"log/slog"
	"sync"
)

// Registry manages all registered hooks and provides efficient dispatch.
// It caches hooks per interface at registration time so dispatch is a
// plain slice walk.
type Registry struct {
	mu     sync.RWMutex
	hooks  []Hook
	logger *slog.Logger

	// Type-cached hook lists for efficient dispatch
	onTransfer     []OnTransfer
	onApprove      []OnApprove
	onTransferFrom []OnTransferFrom
}

// NewRegistry creates a new hook registry.
func NewRegistry() *Registry {
	return &Registry{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used to report failing hooks.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// Register adds a hook to the registry and caches its interfaces.
func (r *Registry) Register(h Hook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check for duplicate
	for _, existing := range r.hooks {
		if existing.Name() == h.Name() {
			return fmt.Errorf("audit: duplicate registration: %s", h.Name())
		}
	}

	r.hooks = append(r.hooks, h)

	// Type-switch to cache interfaces
	if v, ok := h.(OnTransfer); ok {
		r.onTransfer = append(r.onTransfer, v)
	}
	if v, ok := h.(OnApprove); ok {
		r.onApprove = append(r.onApprove, v)
	}
	if v, ok := h.(OnTransferFrom); ok {
		r.onTransferFrom = append(r.onTransferFrom, v)
	}

	return nil
}

// Names returns the names of all registered hooks, in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.hooks))
	for i, h := range r.hooks {
		names[i] = h.Name()
	}
	return names
}

// Dispatch fans the event out to every hook registered for its action.
// A failing hook is logged and skipped; it never affects the ledger
// operation, which has already completed.
func (r *Registry) Dispatch(e Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	switch e.Action {
	case ActionTransfer:
		for _, h := range r.onTransfer {
			if err := h.OnTransfer(e); err != nil {
				r.hookFailed(h, e, err)
			}
		}
	case ActionApprove:
		for _, h := range r.onApprove {
			if err := h.OnApprove(e); err != nil {
				r.hookFailed(h, e, err)
			}
		}
	case ActionTransferFrom:
		for _, h := range r.onTransferFrom {
			if err := h.OnTransferFrom(e); err != nil {
				r.hookFailed(h, e, err)
			}
		}
	}
}

func (r *Registry) hookFailed(h Hook, e Event, err error) {
	r.logger.Warn("audit hook failed",
		"hook", h.Name(),
		"action", e.Action,
		"seq", e.Seq,
		"error", err,
	)
}
