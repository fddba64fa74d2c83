// FILE: internal/controller/access_request_controller.go
package controller

import (
	"drivetube-be/internal/dto"
	"drivetube-be/internal/entity"
	"drivetube-be/internal/pkg/serverutils"
	"drivetube-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAccessRequestController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListForCreator(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type accessRequestController struct {
	service service.IAccessRequestService
}

func NewAccessRequestController(service service.IAccessRequestService) IAccessRequestController {
	return &accessRequestController{service: service}
}

// RegisterRoutes must run before the course controller's so that the literal
// "access-requests" segment wins over the ":id" parameter route.
func (c *accessRequestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/courses")
	h.Use(serverutils.JwtMiddleware)

	creatorOnly := serverutils.RoleMiddleware(string(entity.UserRoleCreator), string(entity.UserRoleAdmin))
	h.Get("/access-requests", creatorOnly, c.ListForCreator)
	h.Put("/access-requests/:id/status", creatorOnly, c.UpdateStatus)

	h.Post("/:courseId/request-access", c.Create)
}

func (c *accessRequestController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	courseId, err := parseIdParam(ctx, "courseId")
	if err != nil {
		return err
	}

	var req dto.CreateAccessRequestRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, courseId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *accessRequestController) ListForCreator(ctx *fiber.Ctx) error {
	creatorId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListForCreator(ctx.Context(), creatorId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *accessRequestController) UpdateStatus(ctx *fiber.Ctx) error {
	creatorId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	requestId, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateAccessRequestStatusRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.Context(), creatorId, requestId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
