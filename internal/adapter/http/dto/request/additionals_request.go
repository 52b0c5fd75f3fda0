package request

// ReasonRequest covers every decision that requires a recorded reason:
// declining, reversing and reinstating ledger entries.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"required"`
}
