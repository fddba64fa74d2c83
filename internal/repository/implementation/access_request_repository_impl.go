package implementation

import (
	"context"
	"errors"
	"time"

	"drivetube-be/internal/entity"
	"drivetube-be/internal/mapper"
	"drivetube-be/internal/model"
	"drivetube-be/internal/repository/contract"
	"drivetube-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AccessRequestMapper
}

func NewAccessRequestRepository(db *gorm.DB) contract.AccessRequestRepository {
	return &AccessRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewAccessRequestMapper(),
	}
}

func (r *AccessRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AccessRequestRepositoryImpl) Create(ctx context.Context, request *entity.AccessRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *AccessRequestRepositoryImpl) Update(ctx context.Context, request *entity.AccessRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *AccessRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AccessRequest, error) {
	var m model.AccessRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AccessRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AccessRequest, error) {
	var models []*model.AccessRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AccessRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

type accessRequestDetailRow struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	UserName   string
	UserEmail  string
	CourseId   uuid.UUID
	CourseName string
	Status     string
	Message    *string
	CreatedAt  time.Time
}

func (r *AccessRequestRepositoryImpl) FindAllForCreator(ctx context.Context, creatorId uuid.UUID) ([]*entity.AccessRequestDetail, error) {
	var rows []*accessRequestDetailRow
	err := r.db.WithContext(ctx).
		Model(&model.AccessRequest{}).
		Select("access_requests.id, access_requests.user_id, users.name AS user_name, users.email AS user_email, "+
			"access_requests.course_id, courses.name AS course_name, access_requests.status, access_requests.message, access_requests.created_at").
		Joins("JOIN courses ON courses.id = access_requests.course_id").
		Joins("JOIN users ON users.id = access_requests.user_id").
		Where("courses.creator_id = ?", creatorId).
		Order("access_requests.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*entity.AccessRequestDetail, len(rows))
	for i, row := range rows {
		result[i] = &entity.AccessRequestDetail{
			Id:         row.Id,
			UserId:     row.UserId,
			UserName:   row.UserName,
			UserEmail:  row.UserEmail,
			CourseId:   row.CourseId,
			CourseName: row.CourseName,
			Status:     entity.AccessRequestStatus(row.Status),
			Message:    row.Message,
			CreatedAt:  row.CreatedAt,
		}
	}
	return result, nil
}
