package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProcessType is the single-letter repair process code. It determines which
// quantity fields a line item requires and which cost components make up its
// total.

type ProcessType string

const (
	ProcessTypeNew     ProcessType = "N"
	ProcessTypeRepair  ProcessType = "R"
	ProcessTypePaint   ProcessType = "P"
	ProcessTypeBlend   ProcessType = "B"
	ProcessTypeAlign   ProcessType = "A"
	ProcessTypeOutwork ProcessType = "O"
)

// Quantities holds the raw inputs of a line item. Only the fields the process
// type declares are required; the rest stay nil.

type Quantities struct {
	NettPartPrice      *decimal.Decimal `json:"nett_part_price,omitempty"`
	StripAssembleHours *decimal.Decimal `json:"strip_assemble_hours,omitempty"`
	LabourHours        *decimal.Decimal `json:"labour_hours,omitempty"`
	PaintPanels        *decimal.Decimal `json:"paint_panels,omitempty"`
	OutworkCharge      *decimal.Decimal `json:"outwork_charge,omitempty"`
}

// ComputedCosts are derived from Quantities and a RateSet. They are never set
// directly; any quantity or rate edit re-derives them.

type ComputedCosts struct {
	PartSellingPrice  decimal.Decimal `json:"part_selling_price"`
	StripAssembleCost decimal.Decimal `json:"strip_assemble_cost"`
	LabourCost        decimal.Decimal `json:"labour_cost"`
	PaintCost         decimal.Decimal `json:"paint_cost"`
	OutworkCost       decimal.Decimal `json:"outwork_cost"`
	Total             decimal.Decimal `json:"total"`
}

// Negated returns the sign-inverse of every component, used by removal and
// reversal ledger entries.
func (c ComputedCosts) Negated() ComputedCosts {
	return ComputedCosts{
		PartSellingPrice:  c.PartSellingPrice.Neg(),
		StripAssembleCost: c.StripAssembleCost.Neg(),
		LabourCost:        c.LabourCost.Neg(),
		PaintCost:         c.PaintCost.Neg(),
		OutworkCost:       c.OutworkCost.Neg(),
		Total:             c.Total.Neg(),
	}
}

// LineItem is one costed row of an estimate (or of an additionals entry
// payload, where Computed may carry negative values).

type LineItem struct {
	ID          string      `json:"id"`
	ProcessType ProcessType `json:"process_type"`
	Description string      `json:"description"`
	PartType    PartType    `json:"part_type,omitempty"`
	Quantities  Quantities  `json:"quantities"`
	Computed    ComputedCosts `json:"computed"`
}

// LineItemPatch is a partial edit of a line item. Nil fields are left as-is.
// Applying a patch always re-derives Computed.

type LineItemPatch struct {
	Description *string      `json:"description,omitempty"`
	ProcessType *ProcessType `json:"process_type,omitempty"`
	PartType    *PartType    `json:"part_type,omitempty"`
	Quantities  *Quantities  `json:"quantities,omitempty"`
}

func (li *LineItem) applyPatch(p LineItemPatch) {
	if p.Description != nil {
		li.Description = *p.Description
	}
	if p.ProcessType != nil {
		li.ProcessType = *p.ProcessType
	}
	if p.PartType != nil {
		li.PartType = *p.PartType
	}
	if p.Quantities != nil {
		li.Quantities = *p.Quantities
	}
}

// CostLineItem is the pure costing engine. Given a line's process type,
// quantities and a rate set it derives every cost component and the total.
//
// Component applicability per process type:
//
//	N: part, strip&assemble, labour, paint
//	R: strip&assemble, labour, paint
//	P: strip&assemble, paint
//	B: strip&assemble, paint
//	A: labour
//	O: outwork (pass-through, no markup)
func CostLineItem(li LineItem, rates RateSet) (ComputedCosts, error) {
	if err := rates.Validate(); err != nil {
		return ComputedCosts{}, err
	}

	var out ComputedCosts
	usesPart, usesStrip, usesLabour, usesPaint, usesOutwork, err := componentUsage(li.ProcessType)
	if err != nil {
		return ComputedCosts{}, err
	}

	if usesPart {
		nett, err := requiredQuantity("nett_part_price", li.Quantities.NettPartPrice)
		if err != nil {
			return ComputedCosts{}, err
		}
		markup, err := rates.MarkupPct(li.PartType)
		if err != nil {
			return ComputedCosts{}, err
		}
		factor := decimal.NewFromInt(1).Add(markup.Div(decimal.NewFromInt(100)))
		out.PartSellingPrice = nett.Mul(factor)
	}
	if usesStrip {
		hours, err := requiredQuantity("strip_assemble_hours", li.Quantities.StripAssembleHours)
		if err != nil {
			return ComputedCosts{}, err
		}
		out.StripAssembleCost = hours.Mul(rates.LabourRate)
	}
	if usesLabour {
		hours, err := requiredQuantity("labour_hours", li.Quantities.LabourHours)
		if err != nil {
			return ComputedCosts{}, err
		}
		out.LabourCost = hours.Mul(rates.LabourRate)
	}
	if usesPaint {
		panels, err := requiredQuantity("paint_panels", li.Quantities.PaintPanels)
		if err != nil {
			return ComputedCosts{}, err
		}
		out.PaintCost = panels.Mul(rates.PaintRate)
	}
	if usesOutwork {
		charge, err := requiredQuantity("outwork_charge", li.Quantities.OutworkCharge)
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

func componentUsage(pt ProcessType) (part, strip, labour, paint, outwork bool, err error) {
	switch pt {
	case ProcessTypeNew:
		return true, true, true, true, false, nil
	case ProcessTypeRepair:
		return false, true, true, true, false, nil
	case ProcessTypePaint, ProcessTypeBlend:
		return false, true, false, true, false, nil
	case ProcessTypeAlign:
		return false, false, true, false, false, nil
	case ProcessTypeOutwork:
		return false, false, false, false, true, nil
	default:
		return false, false, false, false, false,
			fmt.Errorf("%w: unknown process type %q", ErrInvalidLineItem, pt)
	}
}

func requiredQuantity(name string, v *decimal.Decimal) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is required", ErrInvalidLineItem, name)
	}
	if v.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s must not be negative", ErrInvalidLineItem, name)
	}
	return *v, nil
}
