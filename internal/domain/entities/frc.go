package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FRCSourceType says where a reconciliation line came from.

type FRCSourceType string

const (
	FRCSourceEstimate   FRCSourceType = "estimate"
	FRCSourceAdditional FRCSourceType = "additional"
)

// FRCDecision is the per-line reconciliation outcome.

type FRCDecision string

const (
	FRCDecisionPending  FRCDecision = "pending"
	FRCDecisionAgreed   FRCDecision = "agreed"
	FRCDecisionAdjusted FRCDecision = "adjusted"
)

// FRCStatus is the reconciliation lifecycle state.

type FRCStatus string

const (
	FRCStatusInProgress FRCStatus = "in_progress"
	FRCStatusCompleted  FRCStatus = "completed"
)

// FRCLine is one quoted-vs-actual reconciliation row.
//
// Domain notes:
//   - Quoted values, quantities and rates are snapshotted at composition time.
//     Deriving actual costs always uses RateSnapshot, never current rates.
//   - Actual stays nil until a decision is made. "agreed" copies quoted to
//     actual verbatim; "adjusted" derives actual from caller-supplied
//     components.

type FRCLine struct {
	ID                 string         `json:"id"`
	SourceType         FRCSourceType  `json:"source_type"`
	SourceLineID       string         `json:"source_line_id"`
	Description        string         `json:"description"`
	ProcessType        ProcessType    `json:"process_type"`
	PartType           PartType       `json:"part_type,omitempty"`
	Quoted             ComputedCosts  `json:"quoted"`
	QuantitiesSnapshot Quantities     `json:"quantities_snapshot"`
	RateSnapshot       RateSet        `json:"rate_snapshot"`
	Decision           FRCDecision    `json:"decision"`
	Actual             *ComputedCosts `json:"actual,omitempty"`
	AdjustReason       string         `json:"adjust_reason,omitempty"`
	DecidedAt          *time.Time     `json:"decided_at,omitempty"`
}

// ActualComponents are invoiced quantities supplied for an "adjusted"
// decision. Any subset may be given; omitted components keep their quoted
// value. Actual costs are derived from these with the line's rate snapshot.

type ActualComponents struct {
	NettPartPrice      *decimal.Decimal `json:"nett_part_price,omitempty"`
	StripAssembleHours *decimal.Decimal `json:"strip_assemble_hours,omitempty"`
	LabourHours        *decimal.Decimal `json:"labour_hours,omitempty"`
	PaintPanels        *decimal.Decimal `json:"paint_panels,omitempty"`
	OutworkCharge      *decimal.Decimal `json:"outwork_charge,omitempty"`
}

// SignOff records who closed the reconciliation.

type SignOff struct {
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

// FinalRepairCosting reconciles every approved line of a closed estimate plus
// additionals pair against supplier invoices.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id

type FinalRepairCosting struct {
	ID         string     `json:"id"`
	EstimateID string     `json:"estimate_id"`
	Lines      []FRCLine  `json:"lines"`
	Status     FRCStatus  `json:"status"`
	SignOff    *SignOff   `json:"sign_off,omitempty"`
	ReopenedAt *time.Time `json:"reopened_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// FRCTotals aggregates the reconciliation money across lines. Actual falls
// back to quoted for still-pending lines so the variance only reflects made
// decisions.

type FRCTotals struct {
	QuotedTotal  decimal.Decimal `json:"quoted_total"`
	ActualTotal  decimal.Decimal `json:"actual_total"`
	Variance     decimal.Decimal `json:"variance"`
	DecidedLines int             `json:"decided_lines"`
	PendingLines int             `json:"pending_lines"`
}

// ComposeFinalRepairCosting snapshots every currently-approved line from the
// estimate and the ledger:
//
//   - estimate lines, skipping those with a standing approved removal
//   - approved "added" ledger entries that have not been reversed
//
// Removal and reversal entries are bookkeeping, not repair work, so they never
// become reconciliation lines themselves.
func ComposeFinalRepairCosting(id string, est *Estimate, ledger *AdditionalsLedger, newLineID func() string, now time.Time) (*FinalRepairCosting, error) {
	if !est.IsFinalized() {
		return nil, ErrEstimateNotFinalized
	}

	frc := &FinalRepairCosting{
		ID:         id,
		EstimateID: est.ID,
		Status:     FRCStatusInProgress,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, li := range est.LineItems {
		if ledger != nil && ledger.IsOriginalLineRemoved(li.ID) {
			continue
		}
		frc.Lines = append(frc.Lines, snapshotLine(newLineID(), FRCSourceEstimate, li, est.RateSet))
	}
	if ledger != nil {
		for _, entry := range ledger.Entries {
			if entry.Action != AdditionalsActionAdded || entry.Status != AdditionalsStatusApproved {
				continue
			}
			if ledger.IsReversed(entry.ID) {
				continue
			}
			frc.Lines = append(frc.Lines, snapshotLine(newLineID(), FRCSourceAdditional, entry.LineItem, ledger.RateSetSnapshot))
		}
	}
	return frc, nil
}

func snapshotLine(id string, source FRCSourceType, li LineItem, rates RateSet) FRCLine {
	return FRCLine{
		ID:                 id,
		SourceType:         source,
		SourceLineID:       li.ID,
		Description:        li.Description,
		ProcessType:        li.ProcessType,
		PartType:           li.PartType,
		Quoted:             li.Computed,
		QuantitiesSnapshot: li.Quantities,
		RateSnapshot:       rates,
		Decision:           FRCDecisionPending,
	}
}

func (f *FinalRepairCosting) Line(id string) (FRCLine, bool) {
	for _, l := range f.Lines {
		if l.ID == id {
			return l, true
		}
	}
	return FRCLine{}, false
}

// Decide records the reconciliation outcome for one line. A decided line can
// only be decided again after a reopen.
func (f *FinalRepairCosting) Decide(lineID string, decision FRCDecision, actuals *ActualComponents, adjustReason string, now time.Time) error {
	if f.Status == FRCStatusCompleted {
		return fmt.Errorf("%w: reconciliation is completed", ErrInvalidDecision)
	}
	for i := range f.Lines {
		if f.Lines[i].ID != lineID {
			continue
		}
		line := f.Lines[i]
		if line.Decision != FRCDecisionPending && !f.reopenedSince(line) {
			return fmt.Errorf("%w: line %s already decided", ErrInvalidTransition, lineID)
		}

		switch decision {
		case FRCDecisionAgreed:
			actual := line.Quoted
			line.Actual = &actual
			line.AdjustReason = ""
		case FRCDecisionAdjusted:
			if actuals == nil {
				return fmt.Errorf("%w: adjusted decision requires actual components", ErrInvalidDecision)
			}
			if strings.TrimSpace(adjustReason) == "" {
				return ErrMissingReason
			}
			actual, err := deriveActualCosts(line, *actuals)
			if err != nil {
				return err
			}
			line.Actual = &actual
			line.AdjustReason = adjustReason
		default:
			return fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
		}

		decidedAt := now
		line.Decision = decision
		line.DecidedAt = &decidedAt
		f.Lines[i] = line
		f.UpdatedAt = now
		return nil
	}
	return fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
}

func (f *FinalRepairCosting) reopenedSince(line FRCLine) bool {
	return f.ReopenedAt != nil && line.DecidedAt != nil && f.ReopenedAt.After(*line.DecidedAt)
}

// deriveActualCosts recomputes supplied components with the snapshotted rates
// and carries quoted values for the rest. Components the process type does not
// use cannot be supplied.
func deriveActualCosts(line FRCLine, actuals ActualComponents) (ComputedCosts, error) {
	usesPart, usesStrip, usesLabour, usesPaint, usesOutwork, err := componentUsage(line.ProcessType)
	if err != nil {
		return ComputedCosts{}, err
	}

	out := line.Quoted
	rates := line.RateSnapshot

	if actuals.NettPartPrice != nil {
		if !usesPart {
			return ComputedCosts{}, fmt.Errorf("%w: process type %s has no part component", ErrInvalidLineItem, line.ProcessType)
		}
		nett, err := requiredQuantity("nett_part_price", actuals.NettPartPrice)
		if err != nil {
			return ComputedCosts{}, err
		}
		markup, err := rates.MarkupPct(line.PartType)
		if err != nil {
			return ComputedCosts{}, err
		}
		factor := decimal.NewFromInt(1).Add(markup.Div(decimal.NewFromInt(100)))
		out.PartSellingPrice = nett.Mul(factor)
	}
	if actuals.StripAssembleHours != nil {
		if !usesStrip {
			return ComputedCosts{}, fmt.Errorf("%w: process type %s has no strip and assemble component", ErrInvalidLineItem, line.ProcessType)
		}
		hours, err := requiredQuantity("strip_assemble_hours", actuals.StripAssembleHours)
		if err != nil {
			return ComputedCosts{}, err
		}
		out.StripAssembleCost = hours.Mul(rates.LabourRate)
	}
	if actuals.LabourHours != nil {
		if !usesLabour {
			return ComputedCosts{}, fmt.Errorf("%w: process type %s has no labour component", ErrInvalidLineItem, line.ProcessType)
		}
		hours, err := requiredQuantity("labour_hours", actuals.LabourHours)
		if err != nil {
			return ComputedCosts{}, err
		}
		out.LabourCost = hours.Mul(rates.LabourRate)
	}
	if actuals.PaintPanels != nil {
		if !usesPaint {
			return ComputedCosts{}, fmt.Errorf("%w: process type %s has no paint component", ErrInvalidLineItem, line.ProcessType)
		}
		panels, err := requiredQuantity("paint_panels", actuals.PaintPanels)
		if err != nil {
			return ComputedCosts{}, err
		}
		out.PaintCost = panels.Mul(rates.PaintRate)
	}
	if actuals.OutworkCharge != nil {
		if !usesOutwork {
			return ComputedCosts{}, fmt.Errorf("%w: process type %s has no outwork component", ErrInvalidLineItem, line.ProcessType)
		}
		charge, err := requiredQuantity("outwork_charge", actuals.OutworkCharge)
		if err != nil {
			return ComputedCosts{}, err
		}
		out.OutworkCost = charge
	}

	out.Total = out.PartSellingPrice.
		Add(out.StripAssembleCost).
		Add(out.LabourCost).
		Add(out.PaintCost).
		Add(out.OutworkCost)
	return out, nil
}

// Complete closes the reconciliation. Every line must be decided.
func (f *FinalRepairCosting) Complete(signOff SignOff) error {
	if f.Status == FRCStatusCompleted {
		return fmt.Errorf("%w: reconciliation is completed", ErrInvalidTransition)
	}
	if strings.TrimSpace(signOff.Name) == "" {
		return fmt.Errorf("%w: sign-off name is required", ErrMissingReason)
	}
	for _, line := range f.Lines {
		if line.Decision == FRCDecisionPending {
			return fmt.Errorf("%w: line %s is pending", ErrIncompleteReconciliation, line.ID)
		}
	}
	f.Status = FRCStatusCompleted
	f.SignOff = &signOff
	f.UpdatedAt = signOff.Timestamp
	return nil
}

// Reopen reverts a completed reconciliation to in_progress, clearing the
// sign-off. Line decisions survive; each may be decided again exactly once
// before the next reopen. This is the sole sanctioned deviation from
// append-only discipline and must be audit-logged by the caller.
func (f *FinalRepairCosting) Reopen(now time.Time) error {
	if f.Status != FRCStatusCompleted {
		return fmt.Errorf("%w: reconciliation is not completed", ErrInvalidTransition)
	}
	t := now
	f.Status = FRCStatusInProgress
	f.SignOff = nil
	f.ReopenedAt = &t
	f.UpdatedAt = now
	return nil
}

// Totals derives the aggregate quoted, actual and variance money.
func (f *FinalRepairCosting) Totals() FRCTotals {
	totals := FRCTotals{}
	for _, line := range f.Lines {
		totals.QuotedTotal = totals.QuotedTotal.Add(line.Quoted.Total)
		if line.Actual != nil {
			totals.ActualTotal = totals.ActualTotal.Add(line.Actual.Total)
		} else {
			totals.ActualTotal = totals.ActualTotal.Add(line.Quoted.Total)
		}
		if line.Decision == FRCDecisionPending {
			totals.PendingLines++
		} else {
			totals.DecidedLines++
		}
	}
	totals.Variance = totals.ActualTotal.Sub(totals.QuotedTotal)
	return totals
}
