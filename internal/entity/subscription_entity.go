package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlanInterval string
type SubscriptionStatus string
type PaymentStatus string
type PaymentMethod string

const (
	PlanIntervalMonth PlanInterval = "month"
	PlanIntervalYear  PlanInterval = "year"

	SubscriptionStatusPending  SubscriptionStatus = "pending"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"

	PaymentMethodCrypto PaymentMethod = "crypto"
	PaymentMethodCard   PaymentMethod = "card"
)

type Plan struct {
	Id        uuid.UUID
	Name      string
	Price     float64 // BRL
	Interval  PlanInterval
	Features  []string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PeriodEnd computes the expiry for a subscription starting at start:
// one calendar month or year, normalized the way time.AddDate normalizes
// (Jan 31 + 1 month lands in early March).
func (p *Plan) PeriodEnd(start time.Time) time.Time {
	if p.Interval == PlanIntervalYear {
		return start.AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0)
}

type Subscription struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	PlanId        uuid.UUID
	Status        SubscriptionStatus
	StartDate     time.Time
	EndDate       time.Time
	LastPaymentId *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasAccess is the derived access predicate: active and strictly before expiry.
// Never stored, never cached.
func (s *Subscription) HasAccess(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && s.EndDate.After(now)
}

type Payment struct {
	Id             uuid.UUID
	SubscriptionId uuid.UUID
	Amount         float64
	Method         PaymentMethod
	Status         PaymentStatus
	WalletAddress  *string
	WalletExpires  *time.Time
	TxId           *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
