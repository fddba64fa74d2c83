package unitofwork

import (
	"context"

	"drivetube-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PlanRepository() contract.PlanRepository
	SubscriptionRepository() contract.SubscriptionRepository
	CourseRepository() contract.CourseRepository
	AccessRequestRepository() contract.AccessRequestRepository
	EnrollmentRepository() contract.EnrollmentRepository
}
