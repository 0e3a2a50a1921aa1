package audit

import "log/slog"

// Compile-time interface checks.
var (
	_ Hook           = (*LogHook)(nil)
	_ OnTransfer     = (*LogHook)(nil)
	_ OnApprove      = (*LogHook)(nil)
	_ OnTransferFrom = (*LogHook)(nil)
)

// LogHook emits one slog record per observed operation: Info on success,
// Warn on rejection.
type LogHook struct {
	logger *slog.Logger
}

// NewLogHook creates a LogHook. A nil logger falls back to slog.Default.
func NewLogHook(logger *slog.Logger) *LogHook {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogHook{logger: logger}
}

// Name implements Hook.
func (h *LogHook) Name() string { return "audit-log" }

// OnTransfer implements OnTransfer.
func (h *LogHook) OnTransfer(e Event) error {
	h.log(e,
		"from", string(e.From),
		"to", string(e.To),
	)
	return nil
}

// OnApprove implements OnApprove.
func (h *LogHook) OnApprove(e Event) error {
	h.log(e,
		"owner", string(e.Owner),
		"spender", string(e.Spender),
	)
	return nil
}

// OnTransferFrom implements OnTransferFrom.
func (h *LogHook) OnTransferFrom(e Event) error {
	h.log(e,
		"spender", string(e.Spender),
		"from", string(e.From),
		"to", string(e.To),
	)
	return nil
}

func (h *LogHook) log(e Event, attrs ...any) {
	attrs = append(attrs,
		"seq", e.Seq,
		"amount", uint64(e.Amount),
	)
	if e.Rejected() {
		attrs = append(attrs, "reason", e.Reason)
		h.logger.Warn(e.Action+" rejected", attrs...)
		return
	}
	h.logger.Info(e.Action, attrs...)
}
