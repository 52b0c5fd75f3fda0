package entities

import "errors"

// Domain validation failures. All are returned synchronously by aggregate
// operations; the HTTP layer maps them to structured error responses.
var (
	ErrInvalidRateSet           = errors.New("invalid rate set")
	ErrInvalidLineItem          = errors.New("invalid line item")
	ErrEstimateFinalized        = errors.New("estimate is finalized")
	ErrEstimateNotFinalized     = errors.New("estimate is not finalized")
	ErrLineNotFound             = errors.New("line item not found")
	ErrEntryNotFound            = errors.New("ledger entry not found")
	ErrAlreadyRemoved           = errors.New("original line already removed")
	ErrAlreadyReversed          = errors.New("entry already reversed")
	ErrInvalidTransition        = errors.New("invalid state transition")
	ErrMissingReason            = errors.New("reason is required")
	ErrInvalidDecision          = errors.New("invalid reconciliation decision")
	ErrIncompleteReconciliation = errors.New("reconciliation has undecided lines")
	ErrInvalidReference         = errors.New("invalid reference valuation")
)
