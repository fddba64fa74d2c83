package mapper

import (
	"drivetube-be/internal/entity"
	"drivetube-be/internal/model"
)

type AccessRequestMapper struct{}

func NewAccessRequestMapper() *AccessRequestMapper {
	return &AccessRequestMapper{}
}

func (m *AccessRequestMapper) ToEntity(r *model.AccessRequest) *entity.AccessRequest {
	if r == nil {
		return nil
	}
	return &entity.AccessRequest{
		Id:        r.Id,
		UserId:    r.UserId,
		CourseId:  r.CourseId,
		Status:    entity.AccessRequestStatus(r.Status),
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *AccessRequestMapper) ToModel(r *entity.AccessRequest) *model.AccessRequest {
	if r == nil {
		return nil
	}
	return &model.AccessRequest{
		Id:        r.Id,
		UserId:    r.UserId,
		CourseId:  r.CourseId,
		Status:    string(r.Status),
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *AccessRequestMapper) EnrollmentToEntity(e *model.Enrollment) *entity.Enrollment {
	if e == nil {
		return nil
	}
	return &entity.Enrollment{
		Id:        e.Id,
		UserId:    e.UserId,
		CourseId:  e.CourseId,
		CreatedAt: e.CreatedAt,
	}
}

func (m *AccessRequestMapper) EnrollmentToModel(e *entity.Enrollment) *model.Enrollment {
	if e == nil {
		return nil
	}
	return &model.Enrollment{
		Id:        e.Id,
		UserId:    e.UserId,
		CourseId:  e.CourseId,
		CreatedAt: e.CreatedAt,
	}
}
