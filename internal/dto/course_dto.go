// FILE: internal/dto/course_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCourseRequest struct {
	Name        string  `json:"name" validate:"required,min=3"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}

type UpdateCourseRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Status      *string  `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}

type CourseResponse struct {
	Id          uuid.UUID `json:"id"`
	CreatorId   uuid.UUID `json:"creatorId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CourseWithCountsResponse struct {
	CourseResponse
	EnrollmentCount    int `json:"enrollmentCount"`
	AccessRequestCount int `json:"accessRequestCount"`
}
