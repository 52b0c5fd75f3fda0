package response

import (
	"time"

	"vda_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Money travels as decimal strings on the wire so clients never see float
// artifacts.

type RateSetResponse struct {
	LabourRate           string `json:"labour_rate"`
	PaintRate            string `json:"paint_rate"`
	VATPercentage        string `json:"vat_percentage"`
	OEMMarkupPct         string `json:"oem_markup_pct"`
	AftermarketMarkupPct string `json:"aftermarket_markup_pct"`
	SecondHandMarkupPct  string `json:"second_hand_markup_pct"`
}

func FromRateSet(r entities.RateSet) RateSetResponse {
	return RateSetResponse{
		LabourRate:           r.LabourRate.String(),
		PaintRate:            r.PaintRate.String(),
		VATPercentage:        r.VATPercentage.String(),
		OEMMarkupPct:         r.OEMMarkupPct.String(),
		AftermarketMarkupPct: r.AftermarketMarkupPct.String(),
		SecondHandMarkupPct:  r.SecondHandMarkupPct.String(),
	}
}

type QuantitiesResponse struct {
	NettPartPrice      *string `json:"nett_part_price,omitempty"`
	StripAssembleHours *string `json:"strip_assemble_hours,omitempty"`
	LabourHours        *string `json:"labour_hours,omitempty"`
	PaintPanels        *string `json:"paint_panels,omitempty"`
	OutworkCharge      *string `json:"outwork_charge,omitempty"`
}

func fromQuantities(q entities.Quantities) QuantitiesResponse {
	return QuantitiesResponse{
		NettPartPrice:      decStr(q.NettPartPrice),
		StripAssembleHours: decStr(q.StripAssembleHours),
		LabourHours:        decStr(q.LabourHours),
		PaintPanels:        decStr(q.PaintPanels),
		OutworkCharge:      decStr(q.OutworkCharge),
	}
}

type ComputedCostsResponse struct {
	PartSellingPrice  string `json:"part_selling_price"`
	StripAssembleCost string `json:"strip_assemble_cost"`
	LabourCost        string `json:"labour_cost"`
	PaintCost         string `json:"paint_cost"`
	OutworkCost       string `json:"outwork_cost"`
	Total             string `json:"total"`
}

func fromComputedCosts(c entities.ComputedCosts) ComputedCostsResponse {
	return ComputedCostsResponse{
		PartSellingPrice:  c.PartSellingPrice.String(),
		StripAssembleCost: c.StripAssembleCost.String(),
		LabourCost:        c.LabourCost.String(),
		PaintCost:         c.PaintCost.String(),
		OutworkCost:       c.OutworkCost.String(),
		Total:             c.Total.String(),
	}
}

type LineItemResponse struct {
	ID          string                `json:"id"`
	Description string                `json:"description"`
	ProcessType string                `json:"process_type"`
	PartType    string                `json:"part_type,omitempty"`
	Quantities  QuantitiesResponse    `json:"quantities"`
	Computed    ComputedCostsResponse `json:"computed"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          li.ID,
		Description: li.Description,
		ProcessType: string(li.ProcessType),
		PartType:    string(li.PartType),
		Quantities:  fromQuantities(li.Quantities),
		Computed:    fromComputedCosts(li.Computed),
	}
}

type EstimateResponse struct {
	ID           string             `json:"id"`
	AssessmentID string             `json:"assessment_id"`
	RateSet      RateSetResponse    `json:"rate_set"`
	LineItems    []LineItemResponse `json:"line_items"`
	Subtotal     string             `json:"subtotal"`
	VATAmount    string             `json:"vat_amount"`
	Total        string             `json:"total"`
	Finalized    bool               `json:"finalized"`
	FinalizedAt  *time.Time         `json:"finalized_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func FromEstimate(e *entities.Estimate) EstimateResponse {
	lines := make([]LineItemResponse, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		lines = append(lines, FromLineItem(li))
	}
	return EstimateResponse{
		ID:           e.ID,
		AssessmentID: e.AssessmentID,
		RateSet:      FromRateSet(e.RateSet),
		LineItems:    lines,
		Subtotal:     e.Subtotal.String(),
		VATAmount:    e.VATAmount.String(),
		Total:        e.Total.String(),
		Finalized:    e.IsFinalized(),
		FinalizedAt:  e.FinalizedAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type ThresholdResponse struct {
	Tier       string `json:"tier"`
	Percentage string `json:"percentage"`
}

func FromThreshold(t entities.ThresholdResult) ThresholdResponse {
	return ThresholdResponse{
		Tier:       string(t.Tier),
		Percentage: t.Percentage.String(),
	}
}

func decStr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
