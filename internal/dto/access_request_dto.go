// FILE: internal/dto/access_request_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAccessRequestRequest struct {
	Message *string `json:"message"`
}

type UpdateAccessRequestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PublishAccessDecisionMessage is the async payload consumed by the mail
// worker after a request is approved or rejected.
type PublishAccessDecisionMessage struct {
	RequestId  uuid.UUID `json:"requestId"`
	UserEmail  string    `json:"userEmail"`
	CourseName string    `json:"courseName"`
	Status     string    `json:"status"`
}

type AccessRequestResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"userId"`
	CourseId  uuid.UUID `json:"courseId"`
	Status    string    `json:"status"`
	Message   *string   `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type AccessRequestDetailResponse struct {
	Id         uuid.UUID `json:"id"`
	UserId     uuid.UUID `json:"userId"`
	UserName   string    `json:"userName"`
	UserEmail  string    `json:"userEmail"`
	CourseId   uuid.UUID `json:"courseId"`
	CourseName string    `json:"courseName"`
	Status     string    `json:"status"`
	Message    *string   `json:"message,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
