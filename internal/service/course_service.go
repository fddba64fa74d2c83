// FILE: internal/service/course_service.go
package service

import (
	"context"
	"time"

	"drivetube-be/internal/dto"
	"drivetube-be/internal/entity"
	"drivetube-be/internal/pkg/apperr"
	"drivetube-be/internal/repository/specification"
	"drivetube-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICourseService interface {
	Create(ctx context.Context, creatorId uuid.UUID, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	ListOwn(ctx context.Context, creatorId uuid.UUID) ([]*dto.CourseWithCountsResponse, error)
	Update(ctx context.Context, creatorId uuid.UUID, id uuid.UUID, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, creatorId uuid.UUID, id uuid.UUID) error
}

type courseService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCourseService(uowFactory unitofwork.RepositoryFactory) ICourseService {
	return &courseService{
		uowFactory: uowFactory,
	}
}

func (s *courseService) Create(ctx context.Context, creatorId uuid.UUID, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := entity.CourseStatus(req.Status)
	if status == "" {
		status = entity.CourseStatusDraft
	}

	course := &entity.Course{
		Id:          uuid.New(),
		CreatorId:   creatorId,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uow.CourseRepository().Create(ctx, course); err != nil {
		return nil, err
	}

	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) ListOwn(ctx context.Context, creatorId uuid.UUID) ([]*dto.CourseWithCountsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	courses, err := uow.CourseRepository().FindAllWithCounts(ctx, creatorId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CourseWithCountsResponse, len(courses))
	for i, course := range courses {
		result[i] = &dto.CourseWithCountsResponse{
			CourseResponse:     toCourseResponse(&course.Course),
			EnrollmentCount:    course.EnrollmentCount,
			AccessRequestCount: course.AccessRequestCount,
		}
	}
	return result, nil
}

func (s *courseService) Update(ctx context.Context, creatorId uuid.UUID, id uuid.UUID, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NotFound(apperr.MsgCourseNotFound)
	}
	if err := authorizeOwner(course.CreatorId, creatorId); err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Status != nil {
		course.Status = entity.CourseStatus(*req.Status)
	}
	course.UpdatedAt = time.Now()

	if err := uow.CourseRepository().Update(ctx, course); err != nil {
		return nil, err
	}

	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) Delete(ctx context.Context, creatorId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if course == nil {
		return apperr.NotFound(apperr.MsgCourseNotFound)
	}
	if err := authorizeOwner(course.CreatorId, creatorId); err != nil {
		return err
	}

	return uow.CourseRepository().Delete(ctx, id)
}

func toCourseResponse(c *entity.Course) dto.CourseResponse {
	return dto.CourseResponse{
		Id:          c.Id,
		CreatorId:   c.CreatorId,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
	}
}
