package contract

import (
	"context"

	"drivetube-be/internal/entity"
	"drivetube-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Course, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error)

	// FindAllWithCounts returns a creator's courses together with enrollment
	// and access-request counts for the dashboard listing.
	FindAllWithCounts(ctx context.Context, creatorId uuid.UUID) ([]*entity.CourseWithCounts, error)
}
