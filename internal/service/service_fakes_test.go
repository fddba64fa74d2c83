package service

import (
	"context"
	"time"

	"drivetube-be/internal/entity"
	"drivetube-be/internal/repository/contract"
	"drivetube-be/internal/repository/specification"
	"drivetube-be/internal/repository/unitofwork"
	"drivetube-be/pkg/payment/card"
	"drivetube-be/pkg/payment/crypto"

	"github.com/google/uuid"
)

// fakeStore is a shared in-memory backing store so a factory's units of work
// all see the same data, the way they would against one database.
type fakeStore struct {
	users          []*entity.User
	tokens         []*entity.EmailVerificationToken
	plans          []*entity.Plan
	subscriptions  []*entity.Subscription
	payments       []*entity.Payment
	courses        []*entity.Course
	accessRequests []*entity.AccessRequest
	enrollments    []*entity.Enrollment
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &fakeStore{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUnitOfWork) PlanRepository() contract.PlanRepository {
	return &fakePlanRepo{store: u.store}
}

func (u *fakeUnitOfWork) SubscriptionRepository() contract.SubscriptionRepository {
	return &fakeSubscriptionRepo{store: u.store}
}

func (u *fakeUnitOfWork) CourseRepository() contract.CourseRepository {
	return &fakeCourseRepo{store: u.store}
}

func (u *fakeUnitOfWork) AccessRequestRepository() contract.AccessRequestRepository {
	return &fakeAccessRequestRepo{store: u.store}
}

func (u *fakeUnitOfWork) EnrollmentRepository() contract.EnrollmentRepository {
	return &fakeEnrollmentRepo{store: u.store}
}

// spec matching helpers

type specMatch struct {
	id            *uuid.UUID
	email         *string
	token         *string
	userId        *uuid.UUID
	courseId      *uuid.UUID
	filterField   string
	filterValue   interface{}
	hasPagination bool
	limit         int
}

func parseSpecs(specs []specification.Specification) specMatch {
	var m specMatch
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			m.id = &id
		case specification.ByEmail:
			email := v.Email
			m.email = &email
		case specification.ByToken:
			token := v.Token
			m.token = &token
		case specification.UserOwnedBy:
			userId := v.UserID
			m.userId = &userId
		case specification.ByUserAndCourse:
			userId := v.UserID
			courseId := v.CourseID
			m.userId = &userId
			m.courseId = &courseId
		case specification.FilterBy:
			m.filterField = v.Field
			m.filterValue = v.Value
		case specification.Pagination:
			m.hasPagination = true
			m.limit = v.Limit
		}
	}
	return m
}

// user repo

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	copied := *user
	r.store.users = append(r.store.users, &copied)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, existing := range r.store.users {
		if existing.Id == user.Id {
			copied := *user
			r.store.users[i] = &copied
		}
	}
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	m := parseSpecs(specs)
	for _, user := range r.store.users {
		if m.id != nil && user.Id != *m.id {
			continue
		}
		if m.email != nil && user.Email != *m.email {
			continue
		}
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) ActivateUser(ctx context.Context, id uuid.UUID) error {
	for _, user := range r.store.users {
		if user.Id == id {
			user.Status = entity.UserStatusActive
			user.EmailVerified = true
		}
	}
	return nil
}

func (r *fakeUserRepo) CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error {
	copied := *token
	r.store.tokens = append(r.store.tokens, &copied)
	return nil
}

func (r *fakeUserRepo) FindEmailVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error) {
	m := parseSpecs(specs)
	for _, token := range r.store.tokens {
		if m.userId != nil && token.UserId != *m.userId {
			continue
		}
		if m.token != nil && token.Token != *m.token {
			continue
		}
		copied := *token
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error {
	kept := r.store.tokens[:0]
	for _, token := range r.store.tokens {
		if token.Id != id {
			kept = append(kept, token)
		}
	}
	r.store.tokens = kept
	return nil
}

func (r *fakeUserRepo) SaveUserProvider(ctx context.Context, provider *entity.UserProvider) error {
	return nil
}

// plan repo

type fakePlanRepo struct {
	store *fakeStore
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *entity.Plan) error {
	copied := *plan
	r.store.plans = append(r.store.plans, &copied)
	return nil
}

func (r *fakePlanRepo) Update(ctx context.Context, plan *entity.Plan) error {
	for i, existing := range r.store.plans {
		if existing.Id == plan.Id {
			copied := *plan
			r.store.plans[i] = &copied
		}
	}
	return nil
}

func (r *fakePlanRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error) {
	m := parseSpecs(specs)
	for _, plan := range r.store.plans {
		if m.id != nil && plan.Id != *m.id {
			continue
		}
		copied := *plan
		return &copied, nil
	}
	return nil, nil
}

func (r *fakePlanRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error) {
	m := parseSpecs(specs)
	var result []*entity.Plan
	for _, plan := range r.store.plans {
		if m.filterField == "is_active" {
			if active, ok := m.filterValue.(bool); ok && plan.IsActive != active {
				continue
			}
		}
		copied := *plan
		result = append(result, &copied)
	}
	return result, nil
}

// subscription repo

type fakeSubscriptionRepo struct {
	store *fakeStore
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, subscription *entity.Subscription) error {
	copied := *subscription
	r.store.subscriptions = append(r.store.subscriptions, &copied)
	return nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, subscription *entity.Subscription) error {
	for i, existing := range r.store.subscriptions {
		if existing.Id == subscription.Id {
			copied := *subscription
			r.store.subscriptions[i] = &copied
		}
	}
	return nil
}

func (r *fakeSubscriptionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	m := parseSpecs(specs)
	for _, subscription := range r.store.subscriptions {
		if m.id != nil && subscription.Id != *m.id {
			continue
		}
		if m.userId != nil && subscription.UserId != *m.userId {
			continue
		}
		copied := *subscription
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	copied := *payment
	r.store.payments = append(r.store.payments, &copied)
	return nil
}

func (r *fakeSubscriptionRepo) UpdatePayment(ctx context.Context, payment *entity.Payment) error {
	for i, existing := range r.store.payments {
		if existing.Id == payment.Id {
			copied := *payment
			r.store.payments[i] = &copied
		}
	}
	return nil
}

func (r *fakeSubscriptionRepo) FindOnePayment(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error) {
	m := parseSpecs(specs)
	for _, payment := range r.store.payments {
		if m.id != nil && payment.Id != *m.id {
			continue
		}
		copied := *payment
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) FindAllPayments(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error) {
	m := parseSpecs(specs)
	var result []*entity.Payment
	for _, payment := range r.store.payments {
		if m.filterField == "subscription_id" {
			if subId, ok := m.filterValue.(uuid.UUID); ok && payment.SubscriptionId != subId {
				continue
			}
		}
		copied := *payment
		result = append(result, &copied)
	}
	if m.hasPagination && len(result) > m.limit {
		result = result[:m.limit]
	}
	return result, nil
}

// course repo

type fakeCourseRepo struct {
	store *fakeStore
}

func (r *fakeCourseRepo) Create(ctx context.Context, course *entity.Course) error {
	copied := *course
	r.store.courses = append(r.store.courses, &copied)
	return nil
}

func (r *fakeCourseRepo) Update(ctx context.Context, course *entity.Course) error {
	for i, existing := range r.store.courses {
		if existing.Id == course.Id {
			copied := *course
			r.store.courses[i] = &copied
		}
	}
	return nil
}

func (r *fakeCourseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.courses[:0]
	for _, course := range r.store.courses {
		if course.Id != id {
			kept = append(kept, course)
		}
	}
	r.store.courses = kept
	return nil
}

func (r *fakeCourseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Course, error) {
	m := parseSpecs(specs)
	for _, course := range r.store.courses {
		if m.id != nil && course.Id != *m.id {
			continue
		}
		copied := *course
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeCourseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error) {
	var result []*entity.Course
	for _, course := range r.store.courses {
		copied := *course
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeCourseRepo) FindAllWithCounts(ctx context.Context, creatorId uuid.UUID) ([]*entity.CourseWithCounts, error) {
	var result []*entity.CourseWithCounts
	for _, course := range r.store.courses {
		if course.CreatorId != creatorId {
			continue
		}
		row := &entity.CourseWithCounts{Course: *course}
		for _, e := range r.store.enrollments {
			if e.CourseId == course.Id {
				row.EnrollmentCount++
			}
		}
		for _, ar := range r.store.accessRequests {
			if ar.CourseId == course.Id && ar.Status == entity.AccessRequestStatusPending {
				row.AccessRequestCount++
			}
		}
		result = append(result, row)
	}
	return result, nil
}

// access request repo

type fakeAccessRequestRepo struct {
	store *fakeStore
}

func (r *fakeAccessRequestRepo) Create(ctx context.Context, request *entity.AccessRequest) error {
	copied := *request
	r.store.accessRequests = append(r.store.accessRequests, &copied)
	return nil
}

func (r *fakeAccessRequestRepo) Update(ctx context.Context, request *entity.AccessRequest) error {
	for i, existing := range r.store.accessRequests {
		if existing.Id == request.Id {
			copied := *request
			r.store.accessRequests[i] = &copied
		}
	}
	return nil
}

func (r *fakeAccessRequestRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AccessRequest, error) {
	m := parseSpecs(specs)
	for _, request := range r.store.accessRequests {
		if m.id != nil && request.Id != *m.id {
			continue
		}
		if m.userId != nil && request.UserId != *m.userId {
			continue
		}
		if m.courseId != nil && request.CourseId != *m.courseId {
			continue
		}
		copied := *request
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeAccessRequestRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AccessRequest, error) {
	var result []*entity.AccessRequest
	for _, request := range r.store.accessRequests {
		copied := *request
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeAccessRequestRepo) FindAllForCreator(ctx context.Context, creatorId uuid.UUID) ([]*entity.AccessRequestDetail, error) {
	var result []*entity.AccessRequestDetail
	for _, request := range r.store.accessRequests {
		var course *entity.Course
		for _, c := range r.store.courses {
			if c.Id == request.CourseId {
				course = c
				break
			}
		}
		if course == nil || course.CreatorId != creatorId {
			continue
		}
		detail := &entity.AccessRequestDetail{
			Id:         request.Id,
			UserId:     request.UserId,
			CourseId:   request.CourseId,
			CourseName: course.Name,
			Status:     request.Status,
			Message:    request.Message,
			CreatedAt:  request.CreatedAt,
		}
		for _, u := range r.store.users {
			if u.Id == request.UserId {
				detail.UserName = u.Name
				detail.UserEmail = u.Email
				break
			}
		}
		result = append(result, detail)
	}
	return result, nil
}

// enrollment repo

type fakeEnrollmentRepo struct {
	store *fakeStore
}

func (r *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	copied := *enrollment
	r.store.enrollments = append(r.store.enrollments, &copied)
	return nil
}

func (r *fakeEnrollmentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Enrollment, error) {
	m := parseSpecs(specs)
	for _, enrollment := range r.store.enrollments {
		if m.userId != nil && enrollment.UserId != *m.userId {
			continue
		}
		if m.courseId != nil && enrollment.CourseId != *m.courseId {
			continue
		}
		copied := *enrollment
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeEnrollmentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Enrollment, error) {
	var result []*entity.Enrollment
	for _, enrollment := range r.store.enrollments {
		copied := *enrollment
		result = append(result, &copied)
	}
	return result, nil
}

// payment rail fakes

type fakeCryptoService struct {
	status    crypto.Status
	statusErr error
	calls     int
}

func (f *fakeCryptoService) GeneratePayment(ctx context.Context, req crypto.PaymentRequest) (*crypto.PaymentIntent, error) {
	f.calls++
	return &crypto.PaymentIntent{
		WalletAddress:  "0xFf83fE987a944CBe235dea1277d0B7D9B7f78424",
		QRCode:         "data:image/png;base64,ZmFrZQ==",
		TxId:           "DTMFAKE000deadbeefdeadbe",
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		Amount:         req.Amount,
		Currency:       "USDT",
		Network:        "BEP20",
		ExpectedAmount: "1.923077",
		Simulated:      true,
	}, nil
}

func (f *fakeCryptoService) CheckStatus(ctx context.Context, txId, network string) (crypto.Status, error) {
	f.calls++
	if f.statusErr != nil {
		return "", f.statusErr
	}
	if f.status == "" {
		return crypto.StatusPending, nil
	}
	return f.status, nil
}

type fakeCardService struct {
	err   error
	calls int
}

func (f *fakeCardService) CreateTransaction(req card.PaymentRequest) (*card.PaymentIntent, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &card.PaymentIntent{
		Token:       "snap-token-" + req.OrderId,
		RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/" + req.OrderId,
	}, nil
}
