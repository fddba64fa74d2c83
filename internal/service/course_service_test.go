// FILE: internal/service/course_service_test.go
package service

import (
	"context"
	"testing"

	"drivetube-be/internal/dto"
	"drivetube-be/internal/entity"
	"drivetube-be/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCourseCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty status defaults to draft", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewCourseService(factory)

		resp, err := svc.Create(ctx, uuid.New(), &dto.CreateCourseRequest{
			Name:  "Curso de Mecânica Básica",
			Price: 49.9,
		})
		assert.NoError(t, err)
		assert.Equal(t, "DRAFT", resp.Status)
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewCourseService(factory)

		resp, err := svc.Create(ctx, uuid.New(), &dto.CreateCourseRequest{
			Name:   "Curso de Direção Defensiva",
			Status: "PUBLISHED",
		})
		assert.NoError(t, err)
		assert.Equal(t, "PUBLISHED", resp.Status)
	})
}

func TestCourseListOwn(t *testing.T) {
	ctx := context.Background()

	factory := newFakeFactory()
	creatorId := uuid.New()
	mine := seedCourse(factory.store, creatorId)
	seedCourse(factory.store, uuid.New())

	factory.store.enrollments = append(factory.store.enrollments,
		&entity.Enrollment{Id: uuid.New(), UserId: uuid.New(), CourseId: mine.Id},
		&entity.Enrollment{Id: uuid.New(), UserId: uuid.New(), CourseId: mine.Id},
	)
	factory.store.accessRequests = append(factory.store.accessRequests,
		&entity.AccessRequest{Id: uuid.New(), CourseId: mine.Id, Status: entity.AccessRequestStatusPending},
		&entity.AccessRequest{Id: uuid.New(), CourseId: mine.Id, Status: entity.AccessRequestStatusApproved},
	)

	svc := NewCourseService(factory)

	courses, err := svc.ListOwn(ctx, creatorId)
	assert.NoError(t, err)
	if assert.Len(t, courses, 1) {
		assert.Equal(t, mine.Id, courses[0].Id)
		assert.Equal(t, 2, courses[0].EnrollmentCount)
		// Only pending requests count toward the creator's inbox badge.
		assert.Equal(t, 1, courses[0].AccessRequestCount)
	}
}

func TestCourseUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown course returns not found", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewCourseService(factory)

		name := "Novo nome"
		_, err := svc.Update(ctx, uuid.New(), uuid.New(), &dto.UpdateCourseRequest{Name: &name})
		assertKind(t, err, apperr.KindNotFound)
	})

	t.Run("foreign creator is forbidden", func(t *testing.T) {
		factory := newFakeFactory()
		course := seedCourse(factory.store, uuid.New())
		svc := NewCourseService(factory)

		name := "Novo nome"
		_, err := svc.Update(ctx, uuid.New(), course.Id, &dto.UpdateCourseRequest{Name: &name})
		assertKind(t, err, apperr.KindForbidden)
		assert.Equal(t, course.Name, factory.store.courses[0].Name)
	})

	t.Run("partial update only touches provided fields", func(t *testing.T) {
		factory := newFakeFactory()
		creatorId := uuid.New()
		course := seedCourse(factory.store, creatorId)
		svc := NewCourseService(factory)

		price := 99.9
		resp, err := svc.Update(ctx, creatorId, course.Id, &dto.UpdateCourseRequest{Price: &price})
		assert.NoError(t, err)
		assert.Equal(t, price, resp.Price)
		assert.Equal(t, course.Name, resp.Name)
	})
}

func TestCourseDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign creator cannot delete", func(t *testing.T) {
		factory := newFakeFactory()
		course := seedCourse(factory.store, uuid.New())
		svc := NewCourseService(factory)

		err := svc.Delete(ctx, uuid.New(), course.Id)
		assertKind(t, err, apperr.KindForbidden)
		assert.Len(t, factory.store.courses, 1)
	})

	t.Run("owner delete removes the course", func(t *testing.T) {
		factory := newFakeFactory()
		creatorId := uuid.New()
		course := seedCourse(factory.store, creatorId)
		svc := NewCourseService(factory)

		assert.NoError(t, svc.Delete(ctx, creatorId, course.Id))
		assert.Empty(t, factory.store.courses)
	})
}
