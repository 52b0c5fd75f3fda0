package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estimate is the repair-cost estimate aggregate built during an assessment.
//
// Domain notes:
//   - Line items are kept in insertion order; totals are recomputed on every
//     line or rate mutation, never stored independently of the rates.
//   - Once finalized the aggregate is frozen. All later financial change goes
//     through the AdditionalsLedger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assessment_id-index): assessment_id

type Estimate struct {
	ID           string          `json:"id"`
	AssessmentID string          `json:"assessment_id"`
	RateSet      RateSet         `json:"rate_set"`
	LineItems    []LineItem      `json:"line_items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	VATAmount    decimal.Decimal `json:"vat_amount"`
	Total        decimal.Decimal `json:"total"`
	FinalizedAt  *time.Time      `json:"finalized_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewEstimate(id, assessmentID string, rates RateSet, now time.Time) (*Estimate, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	e := &Estimate{
		ID:           id,
		AssessmentID: assessmentID,
		RateSet:      rates,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	e.recompute()
	return e, nil
}

func (e *Estimate) IsFinalized() bool {
	return e.FinalizedAt != nil
}

// Line returns a copy of the line with the given id.
func (e *Estimate) Line(id string) (LineItem, bool) {
	for _, li := range e.LineItems {
		if li.ID == id {
			return li, true
		}
	}
	return LineItem{}, false
}

// AddLine costs the line against the estimate's rate set and appends it.
func (e *Estimate) AddLine(li LineItem, now time.Time) error {
	if e.IsFinalized() {
		return ErrEstimateFinalized
	}
	computed, err := CostLineItem(li, e.RateSet)
	if err != nil {
		return err
	}
	li.Computed = computed
	e.LineItems = append(e.LineItems, li)
	e.recompute()
	e.UpdatedAt = now
	return nil
}

// UpdateLine applies a partial edit and re-derives the line's costs.
func (e *Estimate) UpdateLine(id string, patch LineItemPatch, now time.Time) error {
	if e.IsFinalized() {
		return ErrEstimateFinalized
	}
	for i := range e.LineItems {
		if e.LineItems[i].ID != id {
			continue
		}
		candidate := e.LineItems[i]
		candidate.applyPatch(patch)
		computed, err := CostLineItem(candidate, e.RateSet)
		if err != nil {
			return err
		}
		candidate.Computed = computed
		e.LineItems[i] = candidate
		e.recompute()
		e.UpdatedAt = now
		return nil
	}
	return fmt.Errorf("%w: %s", ErrLineNotFound, id)
}

func (e *Estimate) RemoveLine(id string, now time.Time) error {
	if e.IsFinalized() {
		return ErrEstimateFinalized
	}
	for i := range e.LineItems {
		if e.LineItems[i].ID != id {
			continue
		}
		e.LineItems = append(e.LineItems[:i], e.LineItems[i+1:]...)
		e.recompute()
		e.UpdatedAt = now
		return nil
	}
	return fmt.Errorf("%w: %s", ErrLineNotFound, id)
}

// UpdateRateSet replaces the rate set and re-derives every line's costs.
// Costs are rate-derived, so this is a full cascade; the estimate is not
// consistent until every line has been recomputed.
func (e *Estimate) UpdateRateSet(rates RateSet, now time.Time) error {
	if e.IsFinalized() {
		return ErrEstimateFinalized
	}
	if err := rates.Validate(); err != nil {
		return err
	}

	recomputed := make([]LineItem, len(e.LineItems))
	for i, li := range e.LineItems {
		computed, err := CostLineItem(li, rates)
		if err != nil {
			return err
		}
		li.Computed = computed
		recomputed[i] = li
	}

	e.RateSet = rates
	e.LineItems = recomputed
	e.recompute()
	e.UpdatedAt = now
	return nil
}

// Finalize freezes the aggregate. Subsequent mutations fail with
// ErrEstimateFinalized.
func (e *Estimate) Finalize(now time.Time) error {
	if e.IsFinalized() {
		return ErrEstimateFinalized
	}
	t := now
	e.FinalizedAt = &t
	e.UpdatedAt = now
	return nil
}

func (e *Estimate) recompute() {
	subtotal := decimal.Decimal{}
	for _, li := range e.LineItems {
		subtotal = subtotal.Add(li.Computed.Total)
	}
	e.Subtotal = subtotal
	e.VATAmount = subtotal.Mul(e.RateSet.VATPercentage).Div(decimal.NewFromInt(100))
	e.Total = e.Subtotal.Add(e.VATAmount)
}
