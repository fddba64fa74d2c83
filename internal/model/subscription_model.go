package model

import (
	"time"

	"github.com/google/uuid"
)

type Plan struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     float64   `gorm:"type:decimal(10,2);not null"`
	Interval  string    `gorm:"type:varchar(10);not null"`
	Features  []string  `gorm:"serializer:json;type:jsonb"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Plan) TableName() string {
	return "plans"
}

type Subscription struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	PlanId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status        string     `gorm:"type:varchar(50);not null;default:'pending'"`
	StartDate     time.Time  `gorm:"not null"`
	EndDate       time.Time  `gorm:"not null"`
	LastPaymentId *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

type Payment struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubscriptionId uuid.UUID  `gorm:"type:uuid;not null;index"`
	Amount         float64    `gorm:"type:decimal(10,2);not null"`
	Method         string     `gorm:"type:varchar(20);not null"`
	Status         string     `gorm:"type:varchar(50);not null;default:'pending'"`
	WalletAddress  *string    `gorm:"type:varchar(255)"`
	WalletExpires  *time.Time
	TxId           *string   `gorm:"type:varchar(255);index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
