package interfaces

import (
	"context"
	"vda_service/internal/domain/entities"
)

//go:generate mockgen -source=additionals_repository_interface.go -destination=mocks/additionals_repository_mock.go -package=mock_interfaces

// IAdditionalsRepository abstracts DynamoDB persistence for the
// AdditionalsLedger aggregate. Exactly one ledger exists per estimate, so the
// estimate id is the lookup key.

type IAdditionalsRepository interface {
	Create(ctx context.Context, l *entities.AdditionalsLedger) error
	GetByEstimateID(ctx context.Context, estimateID string) (*entities.AdditionalsLedger, error)
	Save(ctx context.Context, l *entities.AdditionalsLedger) error
}
