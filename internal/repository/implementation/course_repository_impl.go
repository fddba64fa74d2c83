package implementation

import (
	"context"
	"errors"

	"drivetube-be/internal/entity"
	"drivetube-be/internal/mapper"
	"drivetube-be/internal/model"
	"drivetube-be/internal/repository/contract"
	"drivetube-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CourseMapper
}

func NewCourseRepository(db *gorm.DB) contract.CourseRepository {
	return &CourseRepositoryImpl{
		db:     db,
		mapper: mapper.NewCourseMapper(),
	}
}

func (r *CourseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CourseRepositoryImpl) Create(ctx context.Context, course *entity.Course) error {
	m := r.mapper.ToModel(course)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*course = *r.mapper.ToEntity(m)
	return nil
}

func (r *CourseRepositoryImpl) Update(ctx context.Context, course *entity.Course) error {
	m := r.mapper.ToModel(course)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*course = *r.mapper.ToEntity(m)
	return nil
}

func (r *CourseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Course{}, id).Error
}

func (r *CourseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Course, error) {
	var m model.Course
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CourseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error) {
	var models []*model.Course
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Course, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

type courseCountsRow struct {
	model.Course
	EnrollmentCount    int
	AccessRequestCount int
}

func (r *CourseRepositoryImpl) FindAllWithCounts(ctx context.Context, creatorId uuid.UUID) ([]*entity.CourseWithCounts, error) {
	var rows []*courseCountsRow
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Select("courses.*, "+
			"(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = courses.id) AS enrollment_count, "+
			"(SELECT COUNT(*) FROM access_requests ar WHERE ar.course_id = courses.id AND ar.status = ?) AS access_request_count",
			string(entity.AccessRequestStatusPending)).
		Where("courses.creator_id = ?", creatorId).
		Order("courses.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*entity.CourseWithCounts, len(rows))
	for i, row := range rows {
		result[i] = &entity.CourseWithCounts{
			Course:             *r.mapper.ToEntity(&row.Course),
			EnrollmentCount:    row.EnrollmentCount,
			AccessRequestCount: row.AccessRequestCount,
		}
	}
	return result, nil
}
