// FILE: internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"drivetube-be/internal/dto"
	"drivetube-be/internal/entity"
	"drivetube-be/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmailService struct {
	otpSent     chan string
	approvals   chan string
	rejections  chan string
	failWithErr error
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{
		otpSent:    make(chan string, 4),
		approvals:  make(chan string, 4),
		rejections: make(chan string, 4),
	}
}

func (f *fakeEmailService) SendOTP(to, code string) error {
	f.otpSent <- code
	return f.failWithErr
}

func (f *fakeEmailService) SendAccessApproved(to, courseName string) error {
	f.approvals <- to
	return f.failWithErr
}

func (f *fakeEmailService) SendAccessRejected(to, courseName string) error {
	f.rejections <- to
	return f.failWithErr
}

func seedActiveUser(store *fakeStore, email, password string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	hashStr := string(hash)
	user := &entity.User{
		Id:            uuid.New(),
		Email:         email,
		Name:          "Maria",
		PasswordHash:  &hashStr,
		Role:          entity.UserRoleUser,
		Status:        entity.UserStatusActive,
		EmailVerified: true,
	}
	store.users = append(store.users, user)
	return user
}

func TestAuthRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending user and sends otp", func(t *testing.T) {
		factory := newFakeFactory()
		emails := newFakeEmailService()
		svc := NewAuthService(factory, emails, nil)

		resp, err := svc.Register(ctx, &dto.RegisterRequest{
			Name:     "Maria",
			Email:    "maria@example.com",
			Password: "s3nh4forte",
		})
		assert.NoError(t, err)
		assert.Equal(t, "maria@example.com", resp.Email)

		if assert.Len(t, factory.store.users, 1) {
			user := factory.store.users[0]
			assert.Equal(t, entity.UserStatusPending, user.Status)
			assert.False(t, user.EmailVerified)
			assert.NotNil(t, user.PasswordHash)
			assert.NotEqual(t, "s3nh4forte", *user.PasswordHash)
		}
		assert.Len(t, factory.store.tokens, 1)

		select {
		case code := <-emails.otpSent:
			assert.Len(t, code, 6)
		case <-time.After(time.Second):
			t.Fatal("otp email was never sent")
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		factory := newFakeFactory()
		seedActiveUser(factory.store, "maria@example.com", "s3nh4forte")
		svc := NewAuthService(factory, newFakeEmailService(), nil)

		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Name:     "Maria",
			Email:    "maria@example.com",
			Password: "outrasenha",
		})
		assertKind(t, err, apperr.KindConflict)
	})
}

func TestAuthVerifyEmail(t *testing.T) {
	ctx := context.Background()

	seedPendingWithToken := func(factory *fakeFactory, token string, expiresAt time.Time) *entity.User {
		user := &entity.User{
			Id:     uuid.New(),
			Email:  "joao@example.com",
			Status: entity.UserStatusPending,
		}
		factory.store.users = append(factory.store.users, user)
		factory.store.tokens = append(factory.store.tokens, &entity.EmailVerificationToken{
			Id:        uuid.New(),
			UserId:    user.Id,
			Token:     token,
			ExpiresAt: expiresAt,
		})
		return user
	}

	t.Run("valid code activates and consumes the token", func(t *testing.T) {
		factory := newFakeFactory()
		seedPendingWithToken(factory, "123456", time.Now().Add(10*time.Minute))
		svc := NewAuthService(factory, newFakeEmailService(), nil)

		err := svc.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "joao@example.com", Token: "123456"})
		assert.NoError(t, err)
		assert.Equal(t, entity.UserStatusActive, factory.store.users[0].Status)
		assert.True(t, factory.store.users[0].EmailVerified)
		assert.Empty(t, factory.store.tokens)
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		factory := newFakeFactory()
		seedPendingWithToken(factory, "123456", time.Now().Add(10*time.Minute))
		svc := NewAuthService(factory, newFakeEmailService(), nil)

		err := svc.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "joao@example.com", Token: "654321"})
		assertKind(t, err, apperr.KindValidation)
		assert.Equal(t, entity.UserStatusPending, factory.store.users[0].Status)
	})

	t.Run("expired code is rejected", func(t *testing.T) {
		factory := newFakeFactory()
		seedPendingWithToken(factory, "123456", time.Now().Add(-time.Minute))
		svc := NewAuthService(factory, newFakeEmailService(), nil)

		err := svc.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "joao@example.com", Token: "123456"})
		assertKind(t, err, apperr.KindValidation)
	})

	t.Run("already active user is a no-op", func(t *testing.T) {
		factory := newFakeFactory()
		seedActiveUser(factory.store, "maria@example.com", "s3nh4forte")
		svc := NewAuthService(factory, newFakeEmailService(), nil)

		err := svc.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "maria@example.com", Token: "000000"})
		assert.NoError(t, err)
	})
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("missing credentials", func(t *testing.T) {
		svc := NewAuthService(newFakeFactory(), newFakeEmailService(), nil)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "maria@example.com"})
		assertKind(t, err, apperr.KindValidation)
	})

	t.Run("credential failures all look the same", func(t *testing.T) {
		factory := newFakeFactory()
		seedActiveUser(factory.store, "maria@example.com", "s3nh4forte")
		svc := NewAuthService(factory, newFakeEmailService(), nil)

		// Unknown email and wrong password both map to the same answer so the
		// endpoint doesn't leak which accounts exist.
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "x"})
		assertKind(t, err, apperr.KindUnauthorized)
		assert.Equal(t, apperr.MsgUnauthorized, err.(*apperr.AppError).Message)

		_, err = svc.Login(ctx, &dto.LoginRequest{Email: "maria@example.com", Password: "errada"})
		assertKind(t, err, apperr.KindUnauthorized)
		assert.Equal(t, apperr.MsgUnauthorized, err.(*apperr.AppError).Message)
	})

	t.Run("unverified user cannot log in", func(t *testing.T) {
		factory := newFakeFactory()
		user := seedActiveUser(factory.store, "joao@example.com", "s3nh4forte")
		user.Status = entity.UserStatusPending
		user.EmailVerified = false
		svc := NewAuthService(factory, newFakeEmailService(), nil)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "joao@example.com", Password: "s3nh4forte"})
		assertKind(t, err, apperr.KindUnauthorized)
	})

	t.Run("oauth-only account has no local password", func(t *testing.T) {
		factory := newFakeFactory()
		factory.store.users = append(factory.store.users, &entity.User{
			Id:            uuid.New(),
			Email:         "oauth@example.com",
			Status:        entity.UserStatusActive,
			EmailVerified: true,
		})
		svc := NewAuthService(factory, newFakeEmailService(), nil)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "oauth@example.com", Password: "qualquer"})
		assertKind(t, err, apperr.KindUnauthorized)
	})

	t.Run("successful login issues a token", func(t *testing.T) {
		factory := newFakeFactory()
		user := seedActiveUser(factory.store, "maria@example.com", "s3nh4forte")
		svc := NewAuthService(factory, newFakeEmailService(), nil)

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "maria@example.com", Password: "s3nh4forte"})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.Id, resp.User.Id)
		assert.Equal(t, "USER", resp.User.Role)
	})
}
