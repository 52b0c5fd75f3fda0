package request

import (
	"vda_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ActualComponentsRequest carries invoiced quantities for an "adjusted"
// decision. Any subset may be supplied; omitted components keep their quoted
// value.
type ActualComponentsRequest struct {
	NettPartPrice      *decimal.Decimal `json:"nett_part_price"`
	StripAssembleHours *decimal.Decimal `json:"strip_assemble_hours"`
	LabourHours        *decimal.Decimal `json:"labour_hours"`
	PaintPanels        *decimal.Decimal `json:"paint_panels"`
	OutworkCharge      *decimal.Decimal `json:"outwork_charge"`
}

func (r ActualComponentsRequest) ToEntity() entities.ActualComponents {
	return entities.ActualComponents{
		NettPartPrice:      r.NettPartPrice,
		StripAssembleHours: r.StripAssembleHours,
		LabourHours:        r.LabourHours,
		PaintPanels:        r.PaintPanels,
		OutworkCharge:      r.OutworkCharge,
	}
}

type DecideFRCLineRequest struct {
	Decision     string                   `json:"decision" binding:"required"`
	Actuals      *ActualComponentsRequest `json:"actuals"`
	AdjustReason string                   `json:"adjust_reason"`
}

func (r DecideFRCLineRequest) ActualComponents() *entities.ActualComponents {
	if r.Actuals == nil {
		return nil
	}
	actuals := r.Actuals.ToEntity()
	return &actuals
}

type CompleteFRCRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role"`
}
