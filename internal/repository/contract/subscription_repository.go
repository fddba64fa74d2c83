package contract

import (
	"context"

	"drivetube-be/internal/entity"
	"drivetube-be/internal/repository/specification"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)

	CreatePayment(ctx context.Context, payment *entity.Payment) error
	UpdatePayment(ctx context.Context, payment *entity.Payment) error
	FindOnePayment(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error)
	FindAllPayments(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error)
}
