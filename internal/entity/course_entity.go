package entity

import (
	"time"

	"github.com/google/uuid"
)

// CourseStatus is client-enumerated; the server stores whatever the creator
// sets and does not run a state machine over it.
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "DRAFT"
	CourseStatusPublished CourseStatus = "PUBLISHED"
	CourseStatusArchived  CourseStatus = "ARCHIVED"
)

type Course struct {
	Id          uuid.UUID
	CreatorId   uuid.UUID
	Name        string
	Description string
	Price       float64
	Status      CourseStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CourseWithCounts is a read view for the creator dashboard listing.
type CourseWithCounts struct {
	Course
	EnrollmentCount    int
	AccessRequestCount int
}
