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
	"github.com/shopspring/decimal"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrEstimateAlreadyExists = errors.New("estimate already exists")
	ErrInvalidAssessmentID   = errors.New("invalid assessment id")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
)

// IEstimateUseCase exposes estimate operations.
//
// The assessment workflow produces an estimate per assessment; once finalized
// the aggregate freezes and change moves to the additionals ledger.

type IEstimateUseCase interface {
	Create(ctx context.Context, assessmentID string, rates entities.RateSet, lines []entities.LineItem) (*entities.Estimate, error)
	GetByID(ctx context.Context, id string) (*entities.Estimate, error)
	AddLine(ctx context.Context, estimateID string, li entities.LineItem) (*entities.Estimate, error)
	UpdateLine(ctx context.Context, estimateID, lineID string, patch entities.LineItemPatch) (*entities.Estimate, error)
	RemoveLine(ctx context.Context, estimateID, lineID string) (*entities.Estimate, error)
	UpdateRateSet(ctx context.Context, estimateID string, rates entities.RateSet) (*entities.Estimate, error)
	Finalize(ctx context.Context, estimateID string) (*entities.Estimate, error)
	EvaluateThreshold(ctx context.Context, estimateID string, reference decimal.Decimal) (entities.ThresholdResult, error)
}

type EstimateUseCase struct {
	repo  interfaces.IEstimateRepository
	audit interfaces.IAuditSink
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, audit interfaces.IAuditSink) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, audit: audit}
}

func (u *EstimateUseCase) Create(ctx context.Context, assessmentID string, rates entities.RateSet, lines []entities.LineItem) (*entities.Estimate, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return nil, ErrInvalidAssessmentID
	}

	now := time.Now().UTC()
	est, err := entities.NewEstimate(uuid.NewString(), assessmentID, rates, now)
	if err != nil {
		return nil, err
	}
	for _, li := range lines {
		if li.ID == "" {
			li.ID = uuid.NewString()
		}
		if err := est.AddLine(li, now); err != nil {
			return nil, err
		}
	}

	if err := u.repo.Create(ctx, est); err != nil {
		return nil, err
	}
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "estimate",
		EntityID:   est.ID,
		Action:     "created",
		Metadata:   map[string]string{"assessment_id": assessmentID, "total": est.Total.String()},
		OccurredAt: now,
	})
	return est, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (*entities.Estimate, error) {
	return u.load(ctx, id)
}

func (u *EstimateUseCase) AddLine(ctx context.Context, estimateID string, li entities.LineItem) (*entities.Estimate, error) {
	est, err := u.load(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	if li.ID == "" {
		li.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if err := est.AddLine(li, now); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, est); err != nil {
		return nil, err
	}
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "estimate",
		EntityID:   est.ID,
		Action:     "line_added",
		FieldName:  "line_items",
		NewValue:   li.ID,
		Metadata:   map[string]string{"subtotal": est.Subtotal.String()},
		OccurredAt: now,
	})
	return est, nil
}

func (u *EstimateUseCase) UpdateLine(ctx context.Context, estimateID, lineID string, patch entities.LineItemPatch) (*entities.Estimate, error) {
	est, err := u.load(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	before, _ := est.Line(lineID)
	now := time.Now().UTC()
	if err := est.UpdateLine(lineID, patch, now); err != nil {
		return nil, err
	}
	after, _ := est.Line(lineID)
	if err := u.repo.Save(ctx, est); err != nil {
		return nil, err
	}
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "estimate",
		EntityID:   est.ID,
		Action:     "line_updated",
		FieldName:  "line_items",
		OldValue:   before.Computed.Total.String(),
		NewValue:   after.Computed.Total.String(),
		Metadata:   map[string]string{"line_id": lineID},
		OccurredAt: now,
	})
	return est, nil
}

func (u *EstimateUseCase) RemoveLine(ctx context.Context, estimateID, lineID string) (*entities.Estimate, error) {
	est, err := u.load(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := est.RemoveLine(lineID, now); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, est); err != nil {
		return nil, err
	}
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "estimate",
		EntityID:   est.ID,
		Action:     "line_removed",
		FieldName:  "line_items",
		OldValue:   lineID,
		OccurredAt: now,
	})
	return est, nil
}

func (u *EstimateUseCase) UpdateRateSet(ctx context.Context, estimateID string, rates entities.RateSet) (*entities.Estimate, error) {
	est, err := u.load(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	oldTotal := est.Total
	now := time.Now().UTC()
	if err := est.UpdateRateSet(rates, now); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, est); err != nil {
		return nil, err
	}
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "estimate",
		EntityID:   est.ID,
		Action:     "rates_updated",
		FieldName:  "rate_set",
		OldValue:   oldTotal.String(),
		NewValue:   est.Total.String(),
		OccurredAt: now,
	})
	return est, nil
}

func (u *EstimateUseCase) Finalize(ctx context.Context, estimateID string) (*entities.Estimate, error) {
	est, err := u.load(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := est.Finalize(now); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, est); err != nil {
		return nil, err
	}
	u.emitAudit(ctx, entities.AuditEvent{
		EntityType: "estimate",
		EntityID:   est.ID,
		Action:     "finalized",
		Metadata:   map[string]string{"total": est.Total.String()},
		OccurredAt: now,
	})
	return est, nil
}

func (u *EstimateUseCase) EvaluateThreshold(ctx context.Context, estimateID string, reference decimal.Decimal) (entities.ThresholdResult, error) {
	est, err := u.load(ctx, estimateID)
	if err != nil {
		return entities.ThresholdResult{}, err
	}
	return entities.EvaluateThreshold(est.Total, reference)
}

func (u *EstimateUseCase) load(ctx context.Context, estimateID string) (*entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}
	est, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, fmt.Errorf("%w: %s", ErrEstimateNotFound, estimateID)
	}
	return est, nil
}

func (u *EstimateUseCase) emitAudit(ctx context.Context, event entities.AuditEvent) {
	emitAudit(ctx, u.audit, "estimate", event)
}

// emitAudit records an event without letting sink failures affect the
// already-persisted mutation.
func emitAudit(ctx context.Context, sink interfaces.IAuditSink, component string, event entities.AuditEvent) {
	if sink == nil {
		return
	}
	if err := sink.Record(ctx, event); err != nil {
		log.Printf("[%s][usecase] audit record failed entity_id=%s action=%s err=%v",
			component, event.EntityID, event.Action, err)
	}
}
