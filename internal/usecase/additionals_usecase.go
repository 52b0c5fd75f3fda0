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
	ErrLedgerNotFound  = errors.New("additionals ledger not found")
	ErrInvalidEntryID  = errors.New("invalid entry id")
	ErrInvalidLineID   = errors.New("invalid line id")
)

// IAdditionalsUseCase exposes the post-finalization adjustment ledger.
//
// The ledger is created lazily the first time additionals are needed for a
// finalized estimate; every operation thereafter appends to it or decides a
// pending entry.

type IAdditionalsUseCase interface {
	GetOrCreate(ctx context.Context, estimateID string) (*entities.AdditionalsLedger, *entities.Estimate, error)
	AddEntry(ctx context.Context, estimateID string, li entities.LineItem) (*entities.AdditionalsLedger, error)
	RemoveOriginalLine(ctx context.Context, estimateID, lineID string) (*entities.AdditionalsLedger, error)
	Approve(ctx context.Context, estimateID, entryID string) (*entities.AdditionalsLedger, error)
	Decline(ctx context.Context, estimateID, entryID, reason string) (*entities.AdditionalsLedger, error)
	DeleteEntry(ctx context.Context, estimateID, entryID string) (*entities.AdditionalsLedger, error)
	UpdatePendingLine(ctx context.Context, estimateID, entryID string, patch entities.LineItemPatch) (*entities.AdditionalsLedger, error)
	Reverse(ctx context.Context, estimateID, entryID, reason string) (*entities.AdditionalsLedger, error)
	Reinstate(ctx context.Context, estimateID, entryID, reason string) (*entities.AdditionalsLedger, error)
}

type AdditionalsUseCase struct {
	repo         interfaces.IAdditionalsRepository
	estimateRepo interfaces.IEstimateRepository
	audit        interfaces.IAuditSink
}

var _ IAdditionalsUseCase = (*AdditionalsUseCase)(nil)

func NewAdditionalsUseCase(repo interfaces.IAdditionalsRepository, estimateRepo interfaces.IEstimateRepository, audit interfaces.IAuditSink) *AdditionalsUseCase {
	return &AdditionalsUseCase{repo: repo, estimateRepo: estimateRepo, audit: audit}
}

// GetOrCreate returns the estimate's ledger, creating it on first use. The
// estimate must be finalized before a ledger can exist.
func (u *AdditionalsUseCase) GetOrCreate(ctx context.Context, estimateID string) (*entities.AdditionalsLedger, *entities.Estimate, error) {
	est, err := u.loadEstimate(ctx, estimateID)
	if err != nil {
		return nil, nil, err
	}

	ledger, err := u.repo.GetByEstimateID(ctx, est.ID)
	if err != nil {
		return nil, nil, err
	}
	if ledger != nil {
		return ledger, est, nil
	}

	now := time.Now().UTC()
	ledger, err = entities.NewAdditionalsLedger(uuid.NewString(), est, now)
	if err != nil {
		return nil, nil, err
	}
	if err := u.repo.Create(ctx, ledger); err != nil {
		return nil, nil, err
	}
	log.Printf("[additionals][usecase] ledger created estimate_id=%s ledger_id=%s", est.ID, ledger.ID)
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "additionals_ledger",
		EntityID:   ledger.ID,
		Action:     "created",
		Metadata:   map[string]string{"estimate_id": est.ID},
		OccurredAt: now,
	})
	return ledger, est, nil
}

func (u *AdditionalsUseCase) AddEntry(ctx context.Context, estimateID string, li entities.LineItem) (*entities.AdditionalsLedger, error) {
	ledger, _, err := u.GetOrCreate(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	if li.ID == "" {
		li.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	entry, err := ledger.AddEntry(uuid.NewString(), li, now)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, ledger); err != nil {
		return nil, err
	}
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "additionals_entry",
		EntityID:   entry.ID,
		Action:     "added",
		NewValue:   entry.LineItem.Computed.Total.String(),
		Metadata:   map[string]string{"estimate_id": ledger.EstimateID},
		OccurredAt: now,
	})
	return ledger, nil
}

func (u *AdditionalsUseCase) RemoveOriginalLine(ctx context.Context, estimateID, lineID string) (*entities.AdditionalsLedger, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return nil, ErrInvalidLineID
	}
	ledger, est, err := u.GetOrCreate(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry, err := ledger.RemoveOriginalLine(uuid.NewString(), est, lineID, now)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, ledger); err != nil {
		return nil, err
	}
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "additionals_entry",
		EntityID:   entry.ID,
		Action:     "original_line_removed",
		FieldName:  "original_line_id",
		OldValue:   lineID,
		NewValue:   entry.LineItem.Computed.Total.String(),
		Metadata:   map[string]string{"estimate_id": ledger.EstimateID},
		OccurredAt: now,
	})
	return ledger, nil
}

func (u *AdditionalsUseCase) Approve(ctx context.Context, estimateID, entryID string) (*entities.AdditionalsLedger, error) {
	return u.mutateEntry(ctx, estimateID, entryID, "approved", func(l *entities.AdditionalsLedger, id string, now time.Time) error {
		return l.Approve(id, now)
	})
}

func (u *AdditionalsUseCase) Decline(ctx context.Context, estimateID, entryID, reason string) (*entities.AdditionalsLedger, error) {
	return u.mutateEntry(ctx, estimateID, entryID, "declined", func(l *entities.AdditionalsLedger, id string, now time.Time) error {
		return l.Decline(id, reason, now)
	})
}

func (u *AdditionalsUseCase) DeleteEntry(ctx context.Context, estimateID, entryID string) (*entities.AdditionalsLedger, error) {
	return u.mutateEntry(ctx, estimateID, entryID, "deleted", func(l *entities.AdditionalsLedger, id string, now time.Time) error {
		return l.DeleteEntry(id, now)
	})
}

func (u *AdditionalsUseCase) UpdatePendingLine(ctx context.Context, estimateID, entryID string, patch entities.LineItemPatch) (*entities.AdditionalsLedger, error) {
	return u.mutateEntry(ctx, estimateID, entryID, "pending_line_updated", func(l *entities.AdditionalsLedger, id string, now time.Time) error {
		return l.UpdatePendingLine(id, patch, now)
	})
}

func (u *AdditionalsUseCase) Reverse(ctx context.Context, estimateID, entryID, reason string) (*entities.AdditionalsLedger, error) {
	return u.appendReversal(ctx, estimateID, entryID, reason, "reversed", func(l *entities.AdditionalsLedger, id, newID string, now time.Time) (entities.AdditionalsEntry, error) {
		return l.Reverse(id, reason, newID, now)
	})
}

func (u *AdditionalsUseCase) Reinstate(ctx context.Context, estimateID, entryID, reason string) (*entities.AdditionalsLedger, error) {
	return u.appendReversal(ctx, estimateID, entryID, reason, "reinstated", func(l *entities.AdditionalsLedger, id, newID string, now time.Time) (entities.AdditionalsEntry, error) {
		return l.Reinstate(id, reason, newID, now)
	})
}

func (u *AdditionalsUseCase) mutateEntry(
	ctx context.Context,
	estimateID, entryID, action string,
	mutate func(l *entities.AdditionalsLedger, entryID string, now time.Time) error,
) (*entities.AdditionalsLedger, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return nil, ErrInvalidEntryID
	}
	ledger, err := u.loadLedger(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := mutate(ledger, entryID, now); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, ledger); err != nil {
		return nil, err
	}
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "additionals_entry",
		EntityID:   entryID,
		Action:     action,
		Metadata:   map[string]string{"estimate_id": ledger.EstimateID, "approved_total": ledger.ApprovedTotal().String()},
		OccurredAt: now,
	})
	return ledger, nil
}

func (u *AdditionalsUseCase) appendReversal(
	ctx context.Context,
	estimateID, entryID, reason, action string,
	mutate func(l *entities.AdditionalsLedger, entryID, newEntryID string, now time.Time) (entities.AdditionalsEntry, error),
) (*entities.AdditionalsLedger, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return nil, ErrInvalidEntryID
	}
	ledger, err := u.loadLedger(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry, err := mutate(ledger, entryID, uuid.NewString(), now)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, ledger); err != nil {
		return nil, err
	}
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "additionals_entry",
		EntityID:   entry.ID,
		Action:     action,
		FieldName:  "reverses_entry_id",
		OldValue:   entryID,
		NewValue:   entry.LineItem.Computed.Total.String(),
		Metadata:   map[string]string{"estimate_id": ledger.EstimateID, "reason": reason},
		OccurredAt: now,
	})
	return ledger, nil
}

func (u *AdditionalsUseCase) loadEstimate(ctx context.Context, estimateID string) (*entities.Estimate, error) {
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
	return est, nil
}

func (u *AdditionalsUseCase) loadLedger(ctx context.Context, estimateID string) (*entities.AdditionalsLedger, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}
	ledger, err := u.repo.GetByEstimateID(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, fmt.Errorf("%w: estimate %s", ErrLedgerNotFound, estimateID)
	}
	return ledger, nil
}

func (u *AdditionalsUseCase) emitAudit(ctx context.Context, event entities.AuditEvent) {
	emitAudit(ctx, u.audit, "additionals", event)
}
