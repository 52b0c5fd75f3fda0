package response

import (
	"time"

	"vda_service/internal/domain/entities"
)

type AdditionalsEntryResponse struct {
	ID              string           `json:"id"`
	Action          string           `json:"action"`
	Status          string           `json:"status"`
	LineItem        LineItemResponse `json:"line_item"`
	OriginalLineID  string           `json:"original_line_id,omitempty"`
	ReversesEntryID string           `json:"reverses_entry_id,omitempty"`
	Reason          string           `json:"reason,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	DecidedAt       *time.Time       `json:"decided_at,omitempty"`
}

func fromAdditionalsEntry(e entities.AdditionalsEntry) AdditionalsEntryResponse {
	return AdditionalsEntryResponse{
		ID:              e.ID,
		Action:          string(e.Action),
		Status:          string(e.Status),
		LineItem:        FromLineItem(e.LineItem),
		OriginalLineID:  e.OriginalLineID,
		ReversesEntryID: e.ReversesEntryID,
		Reason:          e.Reason,
		CreatedAt:       e.CreatedAt,
		DecidedAt:       e.DecidedAt,
	}
}

type AdditionalsLedgerResponse struct {
	ID              string                     `json:"id"`
	EstimateID      string                     `json:"estimate_id"`
	RateSetSnapshot RateSetResponse            `json:"rate_set_snapshot"`
	Entries         []AdditionalsEntryResponse `json:"entries"`
	ApprovedTotal   string                     `json:"approved_total"`
	CombinedTotal   *string                    `json:"combined_total,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

func FromAdditionalsLedger(l *entities.AdditionalsLedger) AdditionalsLedgerResponse {
	entries := make([]AdditionalsEntryResponse, 0, len(l.Entries))
	for _, e := range l.Entries {
		entries = append(entries, fromAdditionalsEntry(e))
	}
	return AdditionalsLedgerResponse{
		ID:              l.ID,
		EstimateID:      l.EstimateID,
		RateSetSnapshot: FromRateSet(l.RateSetSnapshot),
		Entries:         entries,
		ApprovedTotal:   l.ApprovedTotal().String(),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

// FromAdditionalsLedgerWithEstimate adds the running combined total (frozen
// estimate total plus approved adjustments), which needs the estimate at hand.
func FromAdditionalsLedgerWithEstimate(l *entities.AdditionalsLedger, est *entities.Estimate) AdditionalsLedgerResponse {
	resp := FromAdditionalsLedger(l)
	combined := l.CombinedTotal(est).String()
	resp.CombinedTotal = &combined
	return resp
}
