package audit

import "log/slog"

// Option configures an Observed ledger.
type Option func(*Observed)

// WithLogger sets the logger used for hook failure reports.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Observed) {
		o.registry.WithLogger(logger)
	}
}

// WithHook registers a hook.
func WithHook(h Hook) Option {
	return func(o *Observed) {
		_ = o.registry.Register(h) //nolint:errcheck // best-effort hook registration during init
	}
}

// WithEnabledActions sets which actions to dispatch.
// If not called, all actions are dispatched.
func WithEnabledActions(actions ...string) Option {
	return func(o *Observed) {
		o.enabled = make(map[string]bool)
		for _, action := range actions {
			o.enabled[action] = true
		}
	}
}

// WithDisabledActions sets which actions to skip.
func WithDisabledActions(actions ...string) Option {
	return func(o *Observed) {
		if o.enabled == nil {
			// Start with all enabled
			o.enabled = make(map[string]bool)
			for _, action := range allActions() {
				o.enabled[action] = true
			}
		}
		// Disable specified actions
		for _, action := range actions {
			delete(o.enabled, action)
		}
	}
}
