package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateThreshold_Boundaries(t *testing.T) {
	cases := []struct {
		total string
		tier  ThresholdTier
	}{
		{"90", ThresholdTierRed},
		{"89.99", ThresholdTierOrange},
		{"60", ThresholdTierOrange},
		{"59.99", ThresholdTierYellow},
		{"25", ThresholdTierYellow},
		{"24.99", ThresholdTierGreen},
		{"120", ThresholdTierRed},
		{"0", ThresholdTierGreen},
	}

	for _, tc := range cases {
		t.Run(tc.total, func(t *testing.T) {
			got, err := EvaluateThreshold(dec(tc.total), dec("100"))
			require.NoError(t, err)
			require.Equal(t, tc.tier, got.Tier)
			require.True(t, got.Percentage.Equal(dec(tc.total)), "percentage %s", got.Percentage)
		})
	}
}

func TestEvaluateThreshold_NonTrivialReference(t *testing.T) {
	got, err := EvaluateThreshold(dec("54000"), dec("60000"))
	require.NoError(t, err)
	require.Equal(t, ThresholdTierRed, got.Tier)
	require.True(t, got.Percentage.Equal(dec("90")))
}

func TestEvaluateThreshold_InvalidReference(t *testing.T) {
	_, err := EvaluateThreshold(dec("10"), dec("0"))
	require.ErrorIs(t, err, ErrInvalidReference)

	_, err = EvaluateThreshold(dec("10"), dec("-5"))
	require.ErrorIs(t, err, ErrInvalidReference)
}
