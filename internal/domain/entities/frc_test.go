package entities

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func composedFRC(t *testing.T) (*FinalRepairCosting, *Estimate, *AdditionalsLedger) {
	t.Helper()
	now := time.Now().UTC()
	est := finalizedEstimate(t)
	l := newTestLedger(t, est)

	_, err := l.AddEntry("entry-1", LineItem{
		ID:          "add-1",
		ProcessType: ProcessTypeAlign,
		Description: "Chassis alignment",
		Quantities:  Quantities{LabourHours: decPtr("4")},
	}, now)
	require.NoError(t, err)
	require.NoError(t, l.Approve("entry-1", now))

	frc, err := ComposeFinalRepairCosting("frc-1", est, l, sequentialIDs("frc-line"), now)
	require.NoError(t, err)
	return frc, est, l
}

func TestComposeFinalRepairCosting_SnapshotsApprovedLines(t *testing.T) {
	frc, est, _ := composedFRC(t)

	// line-1, line-2 from the estimate plus the approved additional.
	require.Len(t, frc.Lines, 3)
	require.Equal(t, FRCStatusInProgress, frc.Status)
	require.Equal(t, est.ID, frc.EstimateID)

	byLineID := map[string]FRCLine{}
	for _, l := range frc.Lines {
		byLineID[l.SourceLineID] = l
		require.Equal(t, FRCDecisionPending, l.Decision)
		require.Nil(t, l.Actual)
	}
	require.Equal(t, FRCSourceEstimate, byLineID["line-1"].SourceType)
	require.Equal(t, FRCSourceAdditional, byLineID["add-1"].SourceType)
	require.True(t, byLineID["add-1"].Quoted.Total.Equal(dec("2000")))
}

func TestComposeFinalRepairCosting_SkipsRemovedAndReversed(t *testing.T) {
	now := time.Now().UTC()
	est := finalizedEstimate(t)
	l := newTestLedger(t, est)

	// line-2 removed; the reversed additional must not appear either.
	_, err := l.RemoveOriginalLine("entry-1", est, "line-2", now)
	require.NoError(t, err)
	_, err = l.AddEntry("entry-2", LineItem{
		ID:          "add-1",
		ProcessType: ProcessTypeOutwork,
		Quantities:  Quantities{OutworkCharge: decPtr("300")},
	}, now)
	require.NoError(t, err)
	require.NoError(t, l.Approve("entry-2", now))
	_, err = l.Reverse("entry-2", "cancelled", "entry-3", now)
	require.NoError(t, err)

	frc, err := ComposeFinalRepairCosting("frc-1", est, l, sequentialIDs("frc-line"), now)
	require.NoError(t, err)
	require.Len(t, frc.Lines, 1)
	require.Equal(t, "line-1", frc.Lines[0].SourceLineID)
}

func TestComposeFinalRepairCosting_RequiresFinalizedEstimate(t *testing.T) {
	est := newTestEstimate(t)
	_, err := ComposeFinalRepairCosting("frc-1", est, nil, sequentialIDs("frc-line"), time.Now().UTC())
	require.ErrorIs(t, err, ErrEstimateNotFinalized)
}

func TestFRC_DecideAgreedCopiesQuoted(t *testing.T) {
	frc, _, _ := composedFRC(t)
	now := time.Now().UTC()

	lineID := frc.Lines[0].ID
	require.NoError(t, frc.Decide(lineID, FRCDecisionAgreed, nil, "", now))

	line, _ := frc.Line(lineID)
	require.Equal(t, FRCDecisionAgreed, line.Decision)
	require.NotNil(t, line.Actual)
	require.True(t, line.Actual.Total.Equal(line.Quoted.Total))
}

func TestFRC_DecideAdjustedUsesRateSnapshot(t *testing.T) {
	frc, est, _ := composedFRC(t)
	now := time.Now().UTC()

	// Changing the live rates after composition must not leak into actuals.
	est.RateSet.LabourRate = dec("1200")
	est.RateSet.PaintRate = dec("9000")

	var lineID string
	for _, l := range frc.Lines {
		if l.SourceLineID == "line-1" {
			lineID = l.ID
		}
	}
	require.NotEmpty(t, lineID)

	err := frc.Decide(lineID, FRCDecisionAdjusted, &ActualComponents{
		LabourHours: decPtr("3"),
	}, "supplier invoiced extra labour", now)
	require.NoError(t, err)

	line, _ := frc.Line(lineID)
	// Snapshot labour rate 500: labour 1500; strip 500 and paint 2000 carried.
	require.True(t, line.Actual.LabourCost.Equal(dec("1500")), "labour %s", line.Actual.LabourCost)
	require.True(t, line.Actual.StripAssembleCost.Equal(dec("500")))
	require.True(t, line.Actual.PaintCost.Equal(dec("2000")))
	require.True(t, line.Actual.Total.Equal(dec("4000")), "total %s", line.Actual.Total)
	require.Equal(t, "supplier invoiced extra labour", line.AdjustReason)
}

func TestFRC_DecideValidation(t *testing.T) {
	frc, _, _ := composedFRC(t)
	now := time.Now().UTC()
	lineID := frc.Lines[0].ID

	t.Run("adjusted requires components", func(t *testing.T) {
		err := frc.Decide(lineID, FRCDecisionAdjusted, nil, "reason", now)
		require.ErrorIs(t, err, ErrInvalidDecision)
	})

	t.Run("adjusted requires reason", func(t *testing.T) {
		err := frc.Decide(lineID, FRCDecisionAdjusted, &ActualComponents{LabourHours: decPtr("1")}, "  ", now)
		require.ErrorIs(t, err, ErrMissingReason)
	})

	t.Run("component not applicable", func(t *testing.T) {
		// line-1 is a repair line; it has no part component.
		err := frc.Decide(lineID, FRCDecisionAdjusted, &ActualComponents{NettPartPrice: decPtr("100")}, "reason", now)
		require.ErrorIs(t, err, ErrInvalidLineItem)
	})

	t.Run("unknown decision", func(t *testing.T) {
		err := frc.Decide(lineID, "disputed", nil, "", now)
		require.ErrorIs(t, err, ErrInvalidDecision)
	})

	t.Run("line not found", func(t *testing.T) {
		err := frc.Decide("missing", FRCDecisionAgreed, nil, "", now)
		require.ErrorIs(t, err, ErrLineNotFound)
	})

	t.Run("double decide without reopen", func(t *testing.T) {
		require.NoError(t, frc.Decide(lineID, FRCDecisionAgreed, nil, "", now))
		err := frc.Decide(lineID, FRCDecisionAgreed, nil, "", now)
		require.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestFRC_CompleteAndReopen(t *testing.T) {
	frc, _, _ := composedFRC(t)
	now := time.Now().UTC()

	err := frc.Complete(SignOff{Name: "J. Naidoo", Role: "assessor", Timestamp: now})
	require.ErrorIs(t, err, ErrIncompleteReconciliation)

	for _, l := range frc.Lines {
		require.NoError(t, frc.Decide(l.ID, FRCDecisionAgreed, nil, "", now))
	}
	require.NoError(t, frc.Complete(SignOff{Name: "J. Naidoo", Role: "assessor", Timestamp: now}))
	require.Equal(t, FRCStatusCompleted, frc.Status)
	require.NotNil(t, frc.SignOff)

	// Completed reconciliations accept no further decisions.
	err = frc.Decide(frc.Lines[0].ID, FRCDecisionAgreed, nil, "", now)
	require.ErrorIs(t, err, ErrInvalidDecision)

	later := now.Add(time.Minute)
	require.NoError(t, frc.Reopen(later))
	require.Equal(t, FRCStatusInProgress, frc.Status)
	require.Nil(t, frc.SignOff)
	// Decisions survive the reopen.
	line, _ := frc.Line(frc.Lines[0].ID)
	require.Equal(t, FRCDecisionAgreed, line.Decision)

	// Each line may now be decided again, once.
	evenLater := later.Add(time.Minute)
	require.NoError(t, frc.Decide(frc.Lines[0].ID, FRCDecisionAdjusted, &ActualComponents{
		LabourHours: decPtr("5"),
	}, "reinspected", evenLater))
	err = frc.Decide(frc.Lines[0].ID, FRCDecisionAgreed, nil, "", evenLater)
	require.ErrorIs(t, err, ErrInvalidTransition)

	require.ErrorIs(t, frc.Reopen(later), ErrInvalidTransition)
}

func TestFRC_Totals(t *testing.T) {
	frc, _, _ := composedFRC(t)
	now := time.Now().UTC()

	var alignLineID string
	for _, l := range frc.Lines {
		if l.SourceLineID == "add-1" {
			alignLineID = l.ID
			continue
		}
		require.NoError(t, frc.Decide(l.ID, FRCDecisionAgreed, nil, "", now))
	}
	// Quoted 2000, actual 5 hours at snapshot rate 500.
	require.NoError(t, frc.Decide(alignLineID, FRCDecisionAdjusted, &ActualComponents{
		LabourHours: decPtr("5"),
	}, "extra setup time", now))

	totals := frc.Totals()
	require.Equal(t, 3, totals.DecidedLines)
	require.Equal(t, 0, totals.PendingLines)
	require.True(t, totals.Variance.Equal(dec("500")), "variance %s", totals.Variance)
	require.True(t, totals.ActualTotal.Equal(totals.QuotedTotal.Add(dec("500"))))
}
