package interfaces

import (
	"context"
	"vda_service/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/estimate_repository_mock.go -package=mock_interfaces

// IEstimateRepository abstracts DynamoDB persistence for the Estimate
// aggregate. Load-mutate-save cycles; GetByID returns nil when the aggregate
// does not exist.

type IEstimateRepository interface {
	Create(ctx context.Context, e *entities.Estimate) error
	GetByID(ctx context.Context, id string) (*entities.Estimate, error)
	Save(ctx context.Context, e *entities.Estimate) error
}
