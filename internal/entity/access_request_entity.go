package entity

import (
	"time"

	"github.com/google/uuid"
)

type AccessRequestStatus string

const (
	AccessRequestStatusPending  AccessRequestStatus = "PENDING"
	AccessRequestStatusApproved AccessRequestStatus = "APPROVED"
	AccessRequestStatusRejected AccessRequestStatus = "REJECTED"
)

type AccessRequest struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	CourseId  uuid.UUID
	Status    AccessRequestStatus
	Message   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccessRequestDetail is a read view joining requester and course data for
// the creator's inbox.
type AccessRequestDetail struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	UserName   string
	UserEmail  string
	CourseId   uuid.UUID
	CourseName string
	Status     AccessRequestStatus
	Message    *string
	CreatedAt  time.Time
}

type Enrollment struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	CourseId  uuid.UUID
	CreatedAt time.Time
}
