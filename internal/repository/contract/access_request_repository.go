package contract

import (
	"context"

	"drivetube-be/internal/entity"
	"drivetube-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AccessRequestRepository interface {
	Create(ctx context.Context, request *entity.AccessRequest) error
	Update(ctx context.Context, request *entity.AccessRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AccessRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AccessRequest, error)

	// FindAllForCreator lists requests across every course owned by creatorId,
	// joined with requester and course display data.
	FindAllForCreator(ctx context.Context, creatorId uuid.UUID) ([]*entity.AccessRequestDetail, error)
}
