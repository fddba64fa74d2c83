package mapper

import (
	"drivetube-be/internal/entity"
	"drivetube-be/internal/model"
)

type CourseMapper struct{}

func NewCourseMapper() *CourseMapper {
	return &CourseMapper{}
}

func (m *CourseMapper) ToEntity(c *model.Course) *entity.Course {
	if c == nil {
		return nil
	}
	return &entity.Course{
		Id:          c.Id,
		CreatorId:   c.CreatorId,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Status:      entity.CourseStatus(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CourseMapper) ToModel(c *entity.Course) *model.Course {
	if c == nil {
		return nil
	}
	return &model.Course{
		Id:          c.Id,
		CreatorId:   c.CreatorId,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
