package interfaces

import (
	"context"
	"vda_service/internal/domain/entities"
)

//go:generate mockgen -source=frc_repository_interface.go -destination=mocks/frc_repository_mock.go -package=mock_interfaces

// IFRCRepository abstracts DynamoDB persistence for the FinalRepairCosting
// aggregate.

type IFRCRepository interface {
	Create(ctx context.Context, f *entities.FinalRepairCosting) error
	GetByID(ctx context.Context, id string) (*entities.FinalRepairCosting, error)
	GetByEstimateID(ctx context.Context, estimateID string) (*entities.FinalRepairCosting, error)
	Save(ctx context.Context, f *entities.FinalRepairCosting) error
}
