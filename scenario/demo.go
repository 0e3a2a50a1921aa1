package scenario

// Demo returns the built-in demonstration scenario: a direct transfer, a
// delegated spend that drains most of an allowance, and a final attempt
// that exceeds what remains.
func Demo() *Scenario {
	return &Scenario{
		Name:        "delegated-spend",
		Description: "Direct transfer, approval, and delegated spending down an allowance.",
		Genesis: Genesis{
			Creator: "alice",
			Supply:  1000,
		},
		Steps: []Step{
			{Op: OpTransfer, From: "alice", To: "bob", Amount: 300},
			{Op: OpApprove, Owner: "alice", Spender: "carol", Amount: 100},
			{Op: OpTransferFrom, Spender: "carol", From: "alice", To: "dave", Amount: 60},
			{Op: OpTransferFrom, Spender: "carol", From: "alice", To: "dave", Amount: 50,
				Expect: OutcomeInsufficientAllowance},
		},
	}
}
