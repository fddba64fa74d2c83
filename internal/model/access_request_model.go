package model

import (
	"time"

	"github.com/google/uuid"
)

type AccessRequest struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_access_requests_user_course"`
	CourseId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_access_requests_user_course"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Message   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (AccessRequest) TableName() string {
	return "access_requests"
}

type Enrollment struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollments_user_course"`
	CourseId  uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollments_user_course"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
