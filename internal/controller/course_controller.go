// FILE: internal/controller/course_controller.go
package controller

import (
	"drivetube-be/internal/dto"
	"drivetube-be/internal/entity"
	"drivetube-be/internal/pkg/serverutils"
	"drivetube-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICourseController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListOwn(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type courseController struct {
	service service.ICourseService
}

func NewCourseController(service service.ICourseService) ICourseController {
	return &courseController{service: service}
}

func (c *courseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/courses")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RoleMiddleware(string(entity.UserRoleCreator), string(entity.UserRoleAdmin)))
	h.Post("", c.Create)
	h.Get("", c.ListOwn)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *courseController) Create(ctx *fiber.Ctx) error {
	creatorId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), creatorId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *courseController) ListOwn(ctx *fiber.Ctx) error {
	creatorId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListOwn(ctx.Context(), creatorId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *courseController) Update(ctx *fiber.Ctx) error {
	creatorId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	courseId, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCourseRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), creatorId, courseId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *courseController) Delete(ctx *fiber.Ctx) error {
	creatorId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	courseId, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), creatorId, courseId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
