// FILE: internal/dto/subscription_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSubscriptionRequest struct {
	PlanId    uuid.UUID `json:"planId" validate:"required"`
	StartDate time.Time `json:"startDate" validate:"required"`
	Method    string    `json:"method" validate:"omitempty,oneof=crypto card"`
}

type UpdateSubscriptionRequest struct {
	PlanId *uuid.UUID `json:"planId"`
}

type SubscriptionResponse struct {
	Id            uuid.UUID  `json:"id"`
	UserId        uuid.UUID  `json:"userId"`
	PlanId        uuid.UUID  `json:"planId"`
	Status        string     `json:"status"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	LastPaymentId *uuid.UUID `json:"lastPaymentId,omitempty"`
}

type PaymentResponse struct {
	Id             uuid.UUID  `json:"id"`
	SubscriptionId uuid.UUID  `json:"subscriptionId"`
	Amount         float64    `json:"amount"`
	Method         string     `json:"method"`
	Status         string     `json:"status"`
	WalletAddress  *string    `json:"walletAddress,omitempty"`
	WalletExpires  *time.Time `json:"walletExpires,omitempty"`
	TxId           *string    `json:"txId,omitempty"`
}

// CreateSubscriptionResponse carries both records plus the adapter display
// fields the client renders for the transfer.
type CreateSubscriptionResponse struct {
	Subscription   SubscriptionResponse `json:"subscription"`
	Payment        PaymentResponse      `json:"payment"`
	QRCode         string               `json:"qrCode,omitempty"`
	ExpectedAmount string               `json:"expectedAmount,omitempty"`
	Currency       string               `json:"currency,omitempty"`
	Network        string               `json:"network,omitempty"`
	Simulated      bool                 `json:"simulated,omitempty"`
	RedirectURL    string               `json:"redirectUrl,omitempty"`
}

// MySubscriptionResponse is the GET /me view: the subscription, its plan, and
// the most recent payments.
type MySubscriptionResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
	Plan         PlanResponse         `json:"plan"`
	Payments     []PaymentResponse    `json:"payments"`
}

type CheckAccessResponse struct {
	HasAccess bool `json:"hasAccess"`
}

type PaymentStatusResponse struct {
	Status string `json:"status"`
}

type PlanResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Interval string    `json:"interval"`
	Features []string  `json:"features"`
}
