package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"vda_service/internal/domain/entities"
	mock_interfaces "vda_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func lineIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// testFRC composes a single-line reconciliation from finalizedEstimate. The
// estimate line snapshots as "frc-line-1".
func testFRC(t *testing.T, est *entities.Estimate) *entities.FinalRepairCosting {
	t.Helper()
	frc, err := entities.ComposeFinalRepairCosting("frc-1", est, nil, lineIDs("frc-line"), time.Now().UTC())
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	return frc
}

func TestFRCUseCase_Compose(t *testing.T) {
	t.Run("invalid estimate id", func(t *testing.T) {
		uc := NewFRCUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Compose(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewFRCUseCase(nil, estRepo, nil, nil, nil)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(nil, nil)

		_, err := uc.Compose(context.Background(), "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("already composed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewFRCUseCase(repo, estRepo, nil, nil, nil)

		est := finalizedEstimate(t, "est-1")
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		repo.EXPECT().GetByEstimateID(gomock.Any(), "est-1").Return(testFRC(t, est), nil)

		_, err := uc.Compose(context.Background(), "est-1")
		if !errors.Is(err, ErrFRCAlreadyExists) {
			t.Fatalf("expected ErrFRCAlreadyExists, got %v", err)
		}
	})

	t.Run("estimate not finalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		ledgerRepo := mock_interfaces.NewMockIAdditionalsRepository(ctrl)
		uc := NewFRCUseCase(repo, estRepo, ledgerRepo, nil, nil)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate(t, "est-1"), nil)
		repo.EXPECT().GetByEstimateID(gomock.Any(), "est-1").Return(nil, nil)
		ledgerRepo.EXPECT().GetByEstimateID(gomock.Any(), "est-1").Return(nil, nil)

		_, err := uc.Compose(context.Background(), "est-1")
		if !errors.Is(err, entities.ErrEstimateNotFinalized) {
			t.Fatalf("expected ErrEstimateNotFinalized, got %v", err)
		}
	})

	t.Run("success without ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		ledgerRepo := mock_interfaces.NewMockIAdditionalsRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditSink(ctrl)
		uc := NewFRCUseCase(repo, estRepo, ledgerRepo, nil, audit)

		est := finalizedEstimate(t, "est-1")
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		repo.EXPECT().GetByEstimateID(gomock.Any(), "est-1").Return(nil, nil)
		ledgerRepo.EXPECT().GetByEstimateID(gomock.Any(), "est-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		frc, err := uc.Compose(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(frc.Lines) != 1 || frc.Status != entities.FRCStatusInProgress {
			t.Fatalf("unexpected frc: %+v", frc)
		}
		line := frc.Lines[0]
		if line.SourceType != entities.FRCSourceEstimate || line.SourceLineID != "line-1" {
			t.Fatalf("unexpected line provenance: %+v", line)
		}
		if !line.Quoted.Total.Equal(dec("3500")) {
			t.Fatalf("expected quoted total 3500, got %s", line.Quoted.Total)
		}
		if !line.RateSnapshot.LabourRate.Equal(dec("500")) {
			t.Fatalf("expected labour rate snapshot 500, got %s", line.RateSnapshot.LabourRate)
		}
	})

	t.Run("includes approved additions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		ledgerRepo := mock_interfaces.NewMockIAdditionalsRepository(ctrl)
		uc := NewFRCUseCase(repo, estRepo, ledgerRepo, nil, nil)

		est := finalizedEstimate(t, "est-1")
		ledger := ledgerWithApprovedEntry(t, est)
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		repo.EXPECT().GetByEstimateID(gomock.Any(), "est-1").Return(nil, nil)
		ledgerRepo.EXPECT().GetByEstimateID(gomock.Any(), "est-1").Return(ledger, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		frc, err := uc.Compose(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(frc.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(frc.Lines))
		}
		if frc.Lines[1].SourceType != entities.FRCSourceAdditional {
			t.Fatalf("expected additional source, got %s", frc.Lines[1].SourceType)
		}
	})
}

func TestFRCUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewFRCUseCase(nil, nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidFRCID) {
			t.Fatalf("expected ErrInvalidFRCID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		uc := NewFRCUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "frc-1").Return(nil, nil)

		_, err := uc.GetByID(context.Background(), "frc-1")
		if !errors.Is(err, ErrFRCNotFound) {
			t.Fatalf("expected ErrFRCNotFound, got %v", err)
		}
	})
}

func TestFRCUseCase_Decide(t *testing.T) {
	t.Run("agreed copies quoted to actual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		uc := NewFRCUseCase(repo, nil, nil, nil, nil)

		frc := testFRC(t, finalizedEstimate(t, "est-1"))
		repo.EXPECT().GetByID(gomock.Any(), "frc-1").Return(frc, nil)
		repo.EXPECT().Save(gomock.Any(), frc).Return(nil)

		res, err := uc.Decide(context.Background(), "frc-1", "frc-line-1", entities.FRCDecisionAgreed, nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line, _ := res.Line("frc-line-1")
		if line.Decision != entities.FRCDecisionAgreed || line.Actual == nil {
			t.Fatalf("unexpected line: %+v", line)
		}
		if !line.Actual.Total.Equal(line.Quoted.Total) {
			t.Fatalf("agreed must copy quoted: actual=%s quoted=%s", line.Actual.Total, line.Quoted.Total)
		}
	})

	t.Run("adjusted derives from rate snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		uc := NewFRCUseCase(repo, nil, nil, nil, nil)

		frc := testFRC(t, finalizedEstimate(t, "est-1"))
		repo.EXPECT().GetByID(gomock.Any(), "frc-1").Return(frc, nil)
		repo.EXPECT().Save(gomock.Any(), frc).Return(nil)

		actuals := &entities.ActualComponents{LabourHours: decPtr("3")}
		res, err := uc.Decide(context.Background(), "frc-1", "frc-line-1", entities.FRCDecisionAdjusted, actuals, "extra labour on strip")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line, _ := res.Line("frc-line-1")
		// labour 3h*500 replaces quoted 1000; strip and paint carry over.
		if !line.Actual.Total.Equal(dec("4000")) {
			t.Fatalf("expected actual total 4000, got %s", line.Actual.Total)
		}
	})

	t.Run("deciding a decided line is blocked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		uc := NewFRCUseCase(repo, nil, nil, nil, nil)

		frc := testFRC(t, finalizedEstimate(t, "est-1"))
		if err := frc.Decide("frc-line-1", entities.FRCDecisionAgreed, nil, "", time.Now().UTC()); err != nil {
			t.Fatalf("decide: %v", err)
		}
		repo.EXPECT().GetByID(gomock.Any(), "frc-1").Return(frc, nil)

		_, err := uc.Decide(context.Background(), "frc-1", "frc-line-1", entities.FRCDecisionAgreed, nil, "")
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestFRCUseCase_Complete(t *testing.T) {
	t.Run("signals the workflow with the assessment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		workflow := mock_interfaces.NewMockIWorkflowBridge(ctrl)
		uc := NewFRCUseCase(repo, estRepo, nil, workflow, nil)

		est := finalizedEstimate(t, "est-1")
		frc := testFRC(t, est)
		if err := frc.Decide("frc-line-1", entities.FRCDecisionAgreed, nil, "", time.Now().UTC()); err != nil {
			t.Fatalf("decide: %v", err)
		}
		repo.EXPECT().GetByID(gomock.Any(), "frc-1").Return(frc, nil)
		repo.EXPECT().Save(gomock.Any(), frc).Return(nil)
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		workflow.EXPECT().ReconciliationCompleted(gomock.Any(), "assessment-1", "est-1").Return(nil)

		res, err := uc.Complete(context.Background(), "frc-1", " J. Mokoena ", "assessor")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.FRCStatusCompleted || res.SignOff == nil || res.SignOff.Name != "J. Mokoena" {
			t.Fatalf("unexpected frc: %+v", res)
		}
	})

	t.Run("workflow failure does not fail the completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		workflow := mock_interfaces.NewMockIWorkflowBridge(ctrl)
		uc := NewFRCUseCase(repo, estRepo, nil, workflow, nil)

		est := finalizedEstimate(t, "est-1")
		frc := testFRC(t, est)
		if err := frc.Decide("frc-line-1", entities.FRCDecisionAgreed, nil, "", time.Now().UTC()); err != nil {
			t.Fatalf("decide: %v", err)
		}
		repo.EXPECT().GetByID(gomock.Any(), "frc-1").Return(frc, nil)
		repo.EXPECT().Save(gomock.Any(), frc).Return(nil)
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		workflow.EXPECT().ReconciliationCompleted(gomock.Any(), "assessment-1", "est-1").Return(errors.New("workflow down"))

		if _, err := uc.Complete(context.Background(), "frc-1", "J. Mokoena", "assessor"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("pending lines block completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		uc := NewFRCUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "frc-1").Return(testFRC(t, finalizedEstimate(t, "est-1")), nil)

		_, err := uc.Complete(context.Background(), "frc-1", "J. Mokoena", "assessor")
		if !errors.Is(err, entities.ErrIncompleteReconciliation) {
			t.Fatalf("expected ErrIncompleteReconciliation, got %v", err)
		}
	})
}

func TestFRCUseCase_Reopen(t *testing.T) {
	t.Run("reverts to in progress and signals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		workflow := mock_interfaces.NewMockIWorkflowBridge(ctrl)
		uc := NewFRCUseCase(repo, estRepo, nil, workflow, nil)

		est := finalizedEstimate(t, "est-1")
		frc := testFRC(t, est)
		now := time.Now().UTC()
		if err := frc.Decide("frc-line-1", entities.FRCDecisionAgreed, nil, "", now); err != nil {
			t.Fatalf("decide: %v", err)
		}
		if err := frc.Complete(entities.SignOff{Name: "J. Mokoena", Role: "assessor", Timestamp: now}); err != nil {
			t.Fatalf("complete: %v", err)
		}
		repo.EXPECT().GetByID(gomock.Any(), "frc-1").Return(frc, nil)
		repo.EXPECT().Save(gomock.Any(), frc).Return(nil)
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		workflow.EXPECT().ReconciliationReopened(gomock.Any(), "assessment-1", "est-1").Return(nil)

		res, err := uc.Reopen(context.Background(), "frc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.FRCStatusInProgress || res.SignOff != nil || res.ReopenedAt == nil {
			t.Fatalf("unexpected frc: %+v", res)
		}
	})

	t.Run("in-progress reconciliation cannot be reopened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFRCRepository(ctrl)
		uc := NewFRCUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "frc-1").Return(testFRC(t, finalizedEstimate(t, "est-1")), nil)

		_, err := uc.Reopen(context.Background(), "frc-1")
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}
