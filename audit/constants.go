package audit

// Action constants for audit events.
const (
	ActionTransfer     = "token.transfer"
	ActionApprove      = "token.approve"
	ActionTransferFrom = "token.transfer_from"
)

// Outcome constants for audit events.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
)

// allActions returns all known audit actions.
func allActions() []string {
	return []string{
		ActionTransfer,
		ActionApprove,
		ActionTransferFrom,
	}
}
