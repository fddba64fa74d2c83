// FILE: internal/service/access_request_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"drivetube-be/internal/dto"
	"drivetube-be/internal/entity"
	"drivetube-be/internal/pkg/apperr"
	"drivetube-be/internal/repository/specification"
	"drivetube-be/internal/repository/unitofwork"
	"drivetube-be/pkg/events"
	pktNats "drivetube-be/pkg/nats"

	"github.com/google/uuid"
)

type IAccessRequestService interface {
	Create(ctx context.Context, userId uuid.UUID, courseId uuid.UUID, req *dto.CreateAccessRequestRequest) (*dto.AccessRequestResponse, error)
	ListForCreator(ctx context.Context, creatorId uuid.UUID) ([]*dto.AccessRequestDetailResponse, error)
	UpdateStatus(ctx context.Context, creatorId uuid.UUID, requestId uuid.UUID, req *dto.UpdateAccessRequestStatusRequest) (*dto.AccessRequestResponse, error)
}

type accessRequestService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewAccessRequestService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IAccessRequestService {
	return &accessRequestService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *accessRequestService) Create(ctx context.Context, userId uuid.UUID, courseId uuid.UUID, req *dto.CreateAccessRequestRequest) (*dto.AccessRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: courseId})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NotFound(apperr.MsgCourseNotFound)
	}

	// One request per (user, course), whatever state the first one is in.
	existing, err := uow.AccessRequestRepository().FindOne(ctx, specification.ByUserAndCourse{UserID: userId, CourseID: courseId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict(apperr.MsgRequestExists)
	}

	request := &entity.AccessRequest{
		Id:        uuid.New(),
		UserId:    userId,
		CourseId:  courseId,
		Status:    entity.AccessRequestStatusPending,
		Message:   req.Message,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.AccessRequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	resp := toAccessRequestResponse(request)
	return &resp, nil
}

func (s *accessRequestService) ListForCreator(ctx context.Context, creatorId uuid.UUID) ([]*dto.AccessRequestDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.AccessRequestRepository().FindAllForCreator(ctx, creatorId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AccessRequestDetailResponse, len(requests))
	for i, r := range requests {
		result[i] = &dto.AccessRequestDetailResponse{
			Id:         r.Id,
			UserId:     r.UserId,
			UserName:   r.UserName,
			UserEmail:  r.UserEmail,
			CourseId:   r.CourseId,
			CourseName: r.CourseName,
			Status:     string(r.Status),
			Message:    r.Message,
			CreatedAt:  r.CreatedAt,
		}
	}
	return result, nil
}

func (s *accessRequestService) UpdateStatus(ctx context.Context, creatorId uuid.UUID, requestId uuid.UUID, req *dto.UpdateAccessRequestStatusRequest) (*dto.AccessRequestResponse, error) {
	status := entity.AccessRequestStatus(req.Status)
	// Validated before any lookup happens.
	if status != entity.AccessRequestStatusApproved && status != entity.AccessRequestStatusRejected {
		return nil, apperr.Validation(apperr.MsgInvalidStatus)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.AccessRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperr.NotFound(apperr.MsgRequestNotFound)
	}

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: request.CourseId})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NotFound(apperr.MsgCourseNotFound)
	}
	if err := authorizeOwner(course.CreatorId, creatorId); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	request.Status = status
	request.UpdatedAt = time.Now()
	if err := uow.AccessRequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	// Approval enrolls the requester atomically with the status flip.
	if status == entity.AccessRequestStatusApproved {
		enrollment := &entity.Enrollment{
			Id:        uuid.New(),
			UserId:    request.UserId,
			CourseId:  request.CourseId,
			CreatedAt: time.Now(),
		}
		if err := uow.EnrollmentRepository().Create(ctx, enrollment); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.notifyRequester(ctx, uow, request, course)

	s.publishEvent(ctx, fmt.Sprintf("ACCESS_REQUEST_%s", status), map[string]interface{}{
		"request_id": request.Id,
		"user_id":    request.UserId,
		"course_id":  request.CourseId,
	})

	resp := toAccessRequestResponse(request)
	return &resp, nil
}

// notifyRequester hands the decision email off to the async mail worker.
func (s *accessRequestService) notifyRequester(ctx context.Context, uow unitofwork.UnitOfWork, request *entity.AccessRequest, course *entity.Course) {
	if s.publisherService == nil {
		return
	}

	requester, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: request.UserId})
	if err != nil || requester == nil {
		fmt.Printf("[WARN] Failed to load requester %s for notification: %v\n", request.UserId, err)
		return
	}

	msgPayload := dto.PublishAccessDecisionMessage{
		RequestId:  request.Id,
		UserEmail:  requester.Email,
		CourseName: course.Name,
		Status:     string(request.Status),
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		fmt.Printf("[WARN] Failed to marshal access decision message: %v\n", err)
		return
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		fmt.Printf("[WARN] Failed to publish access decision message: %v\n", err)
	}
}

func (s *accessRequestService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func toAccessRequestResponse(r *entity.AccessRequest) dto.AccessRequestResponse {
	return dto.AccessRequestResponse{
		Id:        r.Id,
		UserId:    r.UserId,
		CourseId:  r.CourseId,
		Status:    string(r.Status),
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}
