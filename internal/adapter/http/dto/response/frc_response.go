package response

import (
	"time"

	"vda_service/internal/domain/entities"
)

type FRCLineResponse struct {
	ID                 string                 `json:"id"`
	SourceType         string                 `json:"source_type"`
	SourceLineID       string                 `json:"source_line_id"`
	Description        string                 `json:"description"`
	ProcessType        string                 `json:"process_type"`
	PartType           string                 `json:"part_type,omitempty"`
	Quoted             ComputedCostsResponse  `json:"quoted"`
	QuantitiesSnapshot QuantitiesResponse     `json:"quantities_snapshot"`
	RateSnapshot       RateSetResponse        `json:"rate_snapshot"`
	Decision           string                 `json:"decision"`
	Actual             *ComputedCostsResponse `json:"actual,omitempty"`
	AdjustReason       string                 `json:"adjust_reason,omitempty"`
	DecidedAt          *time.Time             `json:"decided_at,omitempty"`
}

func fromFRCLine(l entities.FRCLine) FRCLineResponse {
	resp := FRCLineResponse{
		ID:                 l.ID,
		SourceType:         string(l.SourceType),
		SourceLineID:       l.SourceLineID,
		Description:        l.Description,
		ProcessType:        string(l.ProcessType),
		PartType:           string(l.PartType),
		Quoted:             fromComputedCosts(l.Quoted),
		QuantitiesSnapshot: fromQuantities(l.QuantitiesSnapshot),
		RateSnapshot:       FromRateSet(l.RateSnapshot),
		Decision:           string(l.Decision),
		AdjustReason:       l.AdjustReason,
		DecidedAt:          l.DecidedAt,
	}
	if l.Actual != nil {
		actual := fromComputedCosts(*l.Actual)
		resp.Actual = &actual
	}
	return resp
}

type SignOffResponse struct {
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type FRCTotalsResponse struct {
	QuotedTotal  string `json:"quoted_total"`
	ActualTotal  string `json:"actual_total"`
	Variance     string `json:"variance"`
	DecidedLines int    `json:"decided_lines"`
	PendingLines int    `json:"pending_lines"`
}

type FRCResponse struct {
	ID         string            `json:"id"`
	EstimateID string            `json:"estimate_id"`
	Status     string            `json:"status"`
	Lines      []FRCLineResponse `json:"lines"`
	Totals     FRCTotalsResponse `json:"totals"`
	SignOff    *SignOffResponse  `json:"sign_off,omitempty"`
	ReopenedAt *time.Time        `json:"reopened_at,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func FromFinalRepairCosting(f *entities.FinalRepairCosting) FRCResponse {
	lines := make([]FRCLineResponse, 0, len(f.Lines))
	for _, l := range f.Lines {
		lines = append(lines, fromFRCLine(l))
	}
	totals := f.Totals()
	resp := FRCResponse{
		ID:         f.ID,
		EstimateID: f.EstimateID,
		Status:     string(f.Status),
		Lines:      lines,
		Totals: FRCTotalsResponse{
			QuotedTotal:  totals.QuotedTotal.String(),
			ActualTotal:  totals.ActualTotal.String(),
			Variance:     totals.Variance.String(),
			DecidedLines: totals.DecidedLines,
			PendingLines: totals.PendingLines,
		},
		ReopenedAt: f.ReopenedAt,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
	if f.SignOff != nil {
		resp.SignOff = &SignOffResponse{
			Name:      f.SignOff.Name,
			Role:      f.SignOff.Role,
			Timestamp: f.SignOff.Timestamp,
		}
	}
	return resp
}
