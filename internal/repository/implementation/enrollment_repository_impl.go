package implementation

import (
	"context"
	"errors"

	"drivetube-be/internal/entity"
	"drivetube-be/internal/mapper"
	"drivetube-be/internal/model"
	"drivetube-be/internal/repository/contract"
	"drivetube-be/internal/repository/specification"

	"gorm.io/gorm"
)

type EnrollmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AccessRequestMapper
}

func NewEnrollmentRepository(db *gorm.DB) contract.EnrollmentRepository {
	return &EnrollmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAccessRequestMapper(),
	}
}

func (r *EnrollmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EnrollmentRepositoryImpl) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	m := r.mapper.EnrollmentToModel(enrollment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*enrollment = *r.mapper.EnrollmentToEntity(m)
	return nil
}

func (r *EnrollmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Enrollment, error) {
	var m model.Enrollment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.EnrollmentToEntity(&m), nil
}

func (r *EnrollmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Enrollment, error) {
	var models []*model.Enrollment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Enrollment, len(models))
	for i, m := range models {
		entities[i] = r.mapper.EnrollmentToEntity(m)
	}
	return entities, nil
}
