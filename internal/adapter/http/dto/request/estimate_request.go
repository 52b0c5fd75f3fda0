package request

import (
	"vda_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RateSetRequest carries the six assessment-time rates. Values are validated
// by the domain (non-negative), not by binding tags, so a legitimate zero VAT
// or zero markup is accepted.
type RateSetRequest struct {
	LabourRate           decimal.Decimal `json:"labour_rate"`
	PaintRate            decimal.Decimal `json:"paint_rate"`
	VATPercentage        decimal.Decimal `json:"vat_percentage"`
	OEMMarkupPct         decimal.Decimal `json:"oem_markup_pct"`
	AftermarketMarkupPct decimal.Decimal `json:"aftermarket_markup_pct"`
	SecondHandMarkupPct  decimal.Decimal `json:"second_hand_markup_pct"`
}

func (r RateSetRequest) ToEntity() entities.RateSet {
	return entities.RateSet{
		LabourRate:           r.LabourRate,
		PaintRate:            r.PaintRate,
		VATPercentage:        r.VATPercentage,
		OEMMarkupPct:         r.OEMMarkupPct,
		AftermarketMarkupPct: r.AftermarketMarkupPct,
		SecondHandMarkupPct:  r.SecondHandMarkupPct,
	}
}

// QuantitiesRequest mirrors the process-type-dependent inputs of a line item.
// Only the fields the process type declares need to be present.
type QuantitiesRequest struct {
	NettPartPrice      *decimal.Decimal `json:"nett_part_price"`
	StripAssembleHours *decimal.Decimal `json:"strip_assemble_hours"`
	LabourHours        *decimal.Decimal `json:"labour_hours"`
	PaintPanels        *decimal.Decimal `json:"paint_panels"`
	OutworkCharge      *decimal.Decimal `json:"outwork_charge"`
}

func (r QuantitiesRequest) ToEntity() entities.Quantities {
	return entities.Quantities{
		NettPartPrice:      r.NettPartPrice,
		StripAssembleHours: r.StripAssembleHours,
		LabourHours:        r.LabourHours,
		PaintPanels:        r.PaintPanels,
		OutworkCharge:      r.OutworkCharge,
	}
}

type LineItemRequest struct {
	Description string            `json:"description" binding:"required"`
	ProcessType string            `json:"process_type" binding:"required"`
	PartType    string            `json:"part_type"`
	Quantities  QuantitiesRequest `json:"quantities"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	return entities.LineItem{
		Description: r.Description,
		ProcessType: entities.ProcessType(r.ProcessType),
		PartType:    entities.PartType(r.PartType),
		Quantities:  r.Quantities.ToEntity(),
	}
}

type CreateEstimateRequest struct {
	AssessmentID string            `json:"assessment_id" binding:"required"`
	RateSet      RateSetRequest    `json:"rate_set"`
	LineItems    []LineItemRequest `json:"line_items"`
}

func (r CreateEstimateRequest) Lines() []entities.LineItem {
	lines := make([]entities.LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		lines = append(lines, li.ToEntity())
	}
	return lines
}

// LineItemPatchRequest is a partial line edit; absent fields are left as-is.
type LineItemPatchRequest struct {
	Description *string            `json:"description"`
	ProcessType *string            `json:"process_type"`
	PartType    *string            `json:"part_type"`
	Quantities  *QuantitiesRequest `json:"quantities"`
}

func (r LineItemPatchRequest) ToPatch() entities.LineItemPatch {
	patch := entities.LineItemPatch{Description: r.Description}
	if r.ProcessType != nil {
		pt := entities.ProcessType(*r.ProcessType)
		patch.ProcessType = &pt
	}
	if r.PartType != nil {
		pt := entities.PartType(*r.PartType)
		patch.PartType = &pt
	}
	if r.Quantities != nil {
		q := r.Quantities.ToEntity()
		patch.Quantities = &q
	}
	return patch
}
