package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PartType is the sourcing category of a part, which selects the markup
// percentage applied on top of its nett price.

type PartType string

const (
	PartTypeOEM         PartType = "oem"
	PartTypeAftermarket PartType = "aftermarket"
	PartTypeSecondHand  PartType = "second_hand"
)

// RateSet is the rate configuration an estimate is costed against.
//
// Domain notes:
//   - Owned by exactly one Estimate.
//   - Copied by value into the AdditionalsLedger and the FinalRepairCosting at
//     their creation time, so later rate edits never change historical totals.

type RateSet struct {
	LabourRate           decimal.Decimal `json:"labour_rate"`
	PaintRate            decimal.Decimal `json:"paint_rate"`
	VATPercentage        decimal.Decimal `json:"vat_percentage"`
	OEMMarkupPct         decimal.Decimal `json:"oem_markup_pct"`
	AftermarketMarkupPct decimal.Decimal `json:"aftermarket_markup_pct"`
	SecondHandMarkupPct  decimal.Decimal `json:"second_hand_markup_pct"`
}

func (r RateSet) Validate() error {
	checks := []struct {
		name  string
		value decimal.Decimal
	}{
		{"labour_rate", r.LabourRate},
		{"paint_rate", r.PaintRate},
		{"vat_percentage", r.VATPercentage},
		{"oem_markup_pct", r.OEMMarkupPct},
		{"aftermarket_markup_pct", r.AftermarketMarkupPct},
		{"second_hand_markup_pct", r.SecondHandMarkupPct},
	}
	for _, c := range checks {
		if c.value.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidRateSet, c.name)
		}
	}
	return nil
}

// MarkupPct returns the markup percentage for a part sourcing category.
func (r RateSet) MarkupPct(pt PartType) (decimal.Decimal, error) {
	switch pt {
	case PartTypeOEM:
		return r.OEMMarkupPct, nil
	case PartTypeAftermarket:
		return r.AftermarketMarkupPct, nil
	case PartTypeSecondHand:
		return r.SecondHandMarkupPct, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: unknown part type %q", ErrInvalidLineItem, pt)
	}
}
