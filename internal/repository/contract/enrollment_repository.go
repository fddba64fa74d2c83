package contract

import (
	"context"

	"drivetube-be/internal/entity"
	"drivetube-be/internal/repository/specification"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entity.Enrollment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Enrollment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Enrollment, error)
}
