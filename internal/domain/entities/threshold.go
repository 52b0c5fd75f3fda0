package entities

import "github.com/shopspring/decimal"

// ThresholdTier is the write-off risk band of a repair total relative to the
// vehicle's reference valuation.

type ThresholdTier string

const (
	ThresholdTierGreen  ThresholdTier = "green"
	ThresholdTierYellow ThresholdTier = "yellow"
	ThresholdTierOrange ThresholdTier = "orange"
	ThresholdTierRed    ThresholdTier = "red"
)

// ThresholdResult carries the tier plus the exact percentage that produced it,
// so the caller can render both.

type ThresholdResult struct {
	Tier       ThresholdTier   `json:"tier"`
	Percentage decimal.Decimal `json:"percentage"`
}

var (
	thresholdRed    = decimal.NewFromInt(90)
	thresholdOrange = decimal.NewFromInt(60)
	thresholdYellow = decimal.NewFromInt(25)
)

// EvaluateThreshold classifies a repair total against a reference valuation.
// Bands: red >= 90%, orange [60, 90), yellow [25, 60), green < 25%.
func EvaluateThreshold(total, reference decimal.Decimal) (ThresholdResult, error) {
	if !reference.IsPositive() {
		return ThresholdResult{}, ErrInvalidReference
	}

	pct := total.Mul(decimal.NewFromInt(100)).Div(reference)
	result := ThresholdResult{Percentage: pct}
	switch {
	case pct.GreaterThanOrEqual(thresholdRed):
		result.Tier = ThresholdTierRed
	case pct.GreaterThanOrEqual(thresholdOrange):
		result.Tier = ThresholdTierOrange
	case pct.GreaterThanOrEqual(thresholdYellow):
		result.Tier = ThresholdTierYellow
	default:
		result.Tier = ThresholdTierGreen
	}
	return result, nil
}
