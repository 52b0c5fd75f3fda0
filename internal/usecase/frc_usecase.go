package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vda_service/internal/domain/entities"
	"vda_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFRCNotFound      = errors.New("final repair costing not found")
	ErrFRCAlreadyExists = errors.New("final repair costing already exists")
	ErrInvalidFRCID     = errors.New("invalid final repair costing id")
)

// IFRCUseCase exposes the final repair costing reconciliation.
//
// Compose snapshots the approved state of a finalized estimate and its
// additionals ledger; Decide captures actuals per line; Complete signs off and
// signals the assessment workflow; Reopen reverts to editable and signals the
// inverse.

type IFRCUseCase interface {
	Compose(ctx context.Context, estimateID string) (*entities.FinalRepairCosting, error)
	GetByID(ctx context.Context, id string) (*entities.FinalRepairCosting, error)
	Decide(ctx context.Context, frcID, lineID string, decision entities.FRCDecision, actuals *entities.ActualComponents, adjustReason string) (*entities.FinalRepairCosting, error)
	Complete(ctx context.Context, frcID, name, role string) (*entities.FinalRepairCosting, error)
	Reopen(ctx context.Context, frcID string) (*entities.FinalRepairCosting, error)
}

type FRCUseCase struct {
	repo         interfaces.IFRCRepository
	estimateRepo interfaces.IEstimateRepository
	ledgerRepo   interfaces.IAdditionalsRepository
	workflow     interfaces.IWorkflowBridge
	audit        interfaces.IAuditSink
}

var _ IFRCUseCase = (*FRCUseCase)(nil)

func NewFRCUseCase(
	repo interfaces.IFRCRepository,
	estimateRepo interfaces.IEstimateRepository,
	ledgerRepo interfaces.IAdditionalsRepository,
	workflow interfaces.IWorkflowBridge,
	audit interfaces.IAuditSink,
) *FRCUseCase {
	return &FRCUseCase{repo: repo, estimateRepo: estimateRepo, ledgerRepo: ledgerRepo, workflow: workflow, audit: audit}
}

// Compose creates the reconciliation for a finalized estimate. One per
// estimate; composing twice fails.
func (u *FRCUseCase) Compose(ctx context.Context, estimateID string) (*entities.FinalRepairCosting, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, fmt.Errorf("%w: %s", ErrEstimateNotFound, estimateID)
	}

	if existing, err := u.repo.GetByEstimateID(ctx, estimateID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: estimate %s", ErrFRCAlreadyExists, estimateID)
	}

	ledger, err := u.ledgerRepo.GetByEstimateID(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	frc, err := entities.ComposeFinalRepairCosting(uuid.NewString(), est, ledger, uuid.NewString, now)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, frc); err != nil {
		return nil, err
	}
	log.Printf("[frc][usecase] composed frc_id=%s estimate_id=%s lines=%d", frc.ID, estimateID, len(frc.Lines))
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "final_repair_costing",
		EntityID:   frc.ID,
		Action:     "composed",
		Metadata:   map[string]string{"estimate_id": estimateID, "quoted_total": frc.Totals().QuotedTotal.String()},
		OccurredAt: now,
	})
	return frc, nil
}

func (u *FRCUseCase) GetByID(ctx context.Context, id string) (*entities.FinalRepairCosting, error) {
	return u.load(ctx, id)
}

func (u *FRCUseCase) Decide(ctx context.Context, frcID, lineID string, decision entities.FRCDecision, actuals *entities.ActualComponents, adjustReason string) (*entities.FinalRepairCosting, error) {
	frc, err := u.load(ctx, frcID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := frc.Decide(lineID, decision, actuals, adjustReason, now); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, frc); err != nil {
		return nil, err
	}
	line, _ := frc.Line(lineID)
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "frc_line",
		EntityID:   lineID,
		Action:     "decided",
		FieldName:  "decision",
		NewValue:   string(decision),
		Metadata: map[string]string{
			"frc_id":       frc.ID,
			"quoted_total": line.Quoted.Total.String(),
			"actual_total": line.Actual.Total.String(),
		},
		OccurredAt: now,
	})
	return frc, nil
}

// Complete closes the reconciliation and signals the assessment workflow to
// archive. The workflow signal is best-effort; the saved aggregate is the
// source of truth and a failed signal is surfaced in the logs.
func (u *FRCUseCase) Complete(ctx context.Context, frcID, name, role string) (*entities.FinalRepairCosting, error) {
	frc, err := u.load(ctx, frcID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := frc.Complete(entities.SignOff{Name: strings.TrimSpace(name), Role: strings.TrimSpace(role), Timestamp: now}); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, frc); err != nil {
		return nil, err
	}

	u.signalWorkflow(ctx, frc, true)
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "final_repair_costing",
		EntityID:   frc.ID,
		Action:     "completed",
		Metadata: map[string]string{
			"estimate_id":  frc.EstimateID,
			"signed_by":    name,
			"actual_total": frc.Totals().ActualTotal.String(),
		},
		OccurredAt: now,
	})
	return frc, nil
}

// Reopen reverts a completed reconciliation to in_progress. The reset is
// audited in its own right; it is the only sanctioned exception to the
// append-only discipline.
func (u *FRCUseCase) Reopen(ctx context.Context, frcID string) (*entities.FinalRepairCosting, error) {
	frc, err := u.load(ctx, frcID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := frc.Reopen(now); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, frc); err != nil {
		return nil, err
	}

	u.signalWorkflow(ctx, frc, false)
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "final_repair_costing",
		EntityID:   frc.ID,
		Action:     "reopened",
		FieldName:  "status",
		OldValue:   string(entities.FRCStatusCompleted),
		NewValue:   string(entities.FRCStatusInProgress),
		Metadata:   map[string]string{"estimate_id": frc.EstimateID},
		OccurredAt: now,
	})
	return frc, nil
}

func (u *FRCUseCase) signalWorkflow(ctx context.Context, frc *entities.FinalRepairCosting, completed bool) {
	if u.workflow == nil {
		return
	}
	assessmentID := ""
	if est, err := u.estimateRepo.GetByID(ctx, frc.EstimateID); err != nil {
		log.Printf("[frc][usecase] estimate lookup for workflow signal failed estimate_id=%s err=%v", frc.EstimateID, err)
	} else if est != nil {
		assessmentID = est.AssessmentID
	}

	var err error
	if completed {
		err = u.workflow.ReconciliationCompleted(ctx, assessmentID, frc.EstimateID)
	} else {
		err = u.workflow.ReconciliationReopened(ctx, assessmentID, frc.EstimateID)
	}
	if err != nil {
		log.Printf("[frc][usecase] workflow signal failed frc_id=%s completed=%t err=%v", frc.ID, completed, err)
	}
}

func (u *FRCUseCase) load(ctx context.Context, frcID string) (*entities.FinalRepairCosting, error) {
	frcID = strings.TrimSpace(frcID)
	if frcID == "" {
		return nil, ErrInvalidFRCID
	}
	frc, err := u.repo.GetByID(ctx, frcID)
	if err != nil {
		return nil, err
	}
	if frc == nil {
		return nil, fmt.Errorf("%w: %s", ErrFRCNotFound, frcID)
	}
	return frc, nil
}

func (u *FRCUseCase) emitAudit(ctx context.Context, event entities.AuditEvent) {
	emitAudit(ctx, u.audit, "frc", event)
}
