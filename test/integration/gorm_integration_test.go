package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"drivetube-be/internal/entity"
	"drivetube-be/internal/model"
	"drivetube-be/internal/repository/specification"
	"drivetube-be/internal/repository/unitofwork"
	"drivetube-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func setupFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Plan{},
		&model.Subscription{},
		&model.Payment{},
		&model.Course{},
		&model.AccessRequest{},
		&model.Enrollment{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return unitofwork.NewRepositoryFactory(db)
}

func TestSubscriptionLifecycleRoundTrip(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	plan := &entity.Plan{
		Id:       uuid.New(),
		Name:     fmt.Sprintf("Plano Teste %s", uuid.NewString()[:8]),
		Price:    10,
		Interval: entity.PlanIntervalMonth,
		Features: []string{"Acesso ilimitado a vídeos"},
		IsActive: true,
	}
	assert.NoError(t, uow.PlanRepository().Create(ctx, plan))

	found, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: plan.Id})
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, plan.Name, found.Name)
		assert.Equal(t, plan.Features, found.Features)
	}

	userId := uuid.New()
	start := time.Now().UTC().Truncate(time.Second)
	subscription := &entity.Subscription{
		Id:        uuid.New(),
		UserId:    userId,
		PlanId:    plan.Id,
		Status:    entity.SubscriptionStatusPending,
		StartDate: start,
		EndDate:   plan.PeriodEnd(start),
	}
	payment := &entity.Payment{
		Id:             uuid.New(),
		SubscriptionId: subscription.Id,
		Amount:         plan.Price,
		Method:         entity.PaymentMethodCrypto,
		Status:         entity.PaymentStatusPending,
	}

	// Transactional write, then read back outside the tx.
	assert.NoError(t, uow.Begin(ctx))
	assert.NoError(t, uow.SubscriptionRepository().Create(ctx, subscription))
	assert.NoError(t, uow.SubscriptionRepository().CreatePayment(ctx, payment))
	assert.NoError(t, uow.Commit())

	readUow := factory.NewUnitOfWork(ctx)
	stored, err := readUow.SubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	assert.NoError(t, err)
	if assert.NotNil(t, stored) {
		assert.Equal(t, entity.SubscriptionStatusPending, stored.Status)
	}

	payments, err := readUow.SubscriptionRepository().FindAllPayments(ctx,
		specification.Filter("subscription_id", subscription.Id))
	assert.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestRollbackDiscardsWrites(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	userId := uuid.New()
	subscription := &entity.Subscription{
		Id:        uuid.New(),
		UserId:    userId,
		PlanId:    uuid.New(),
		Status:    entity.SubscriptionStatusPending,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
	}

	assert.NoError(t, uow.Begin(ctx))
	assert.NoError(t, uow.SubscriptionRepository().Create(ctx, subscription))
	assert.NoError(t, uow.Rollback())

	readUow := factory.NewUnitOfWork(ctx)
	stored, err := readUow.SubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	assert.NoError(t, err)
	assert.Nil(t, stored)
}

func TestAccessRequestInboxJoin(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	creatorId := uuid.New()
	requester := &entity.User{
		Id:            uuid.New(),
		Email:         fmt.Sprintf("requester-%s@example.com", uuid.NewString()[:8]),
		Name:          "Requester",
		Role:          entity.UserRoleUser,
		Status:        entity.UserStatusActive,
		EmailVerified: true,
	}
	assert.NoError(t, uow.UserRepository().Create(ctx, requester))

	course := &entity.Course{
		Id:        uuid.New(),
		CreatorId: creatorId,
		Name:      "Curso Integração",
		Status:    entity.CourseStatusPublished,
	}
	assert.NoError(t, uow.CourseRepository().Create(ctx, course))

	request := &entity.AccessRequest{
		Id:       uuid.New(),
		UserId:   requester.Id,
		CourseId: course.Id,
		Status:   entity.AccessRequestStatusPending,
	}
	assert.NoError(t, uow.AccessRequestRepository().Create(ctx, request))

	inbox, err := uow.AccessRequestRepository().FindAllForCreator(ctx, creatorId)
	assert.NoError(t, err)
	if assert.Len(t, inbox, 1) {
		assert.Equal(t, requester.Email, inbox[0].UserEmail)
		assert.Equal(t, course.Name, inbox[0].CourseName)
		assert.Equal(t, entity.AccessRequestStatusPending, inbox[0].Status)
	}

	counts, err := uow.CourseRepository().FindAllWithCounts(ctx, creatorId)
	assert.NoError(t, err)
	if assert.Len(t, counts, 1) {
		assert.Equal(t, 0, counts[0].EnrollmentCount)
		assert.Equal(t, 1, counts[0].AccessRequestCount)
	}

	dup, err := uow.AccessRequestRepository().FindOne(ctx,
		specification.ByUserAndCourse{UserID: requester.Id, CourseID: course.Id})
	assert.NoError(t, err)
	assert.NotNil(t, dup)
}
