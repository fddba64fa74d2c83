// FILE: internal/controller/subscription_controller.go
package controller

import (
	"drivetube-be/internal/dto"
	"drivetube-be/internal/pkg/serverutils"
	"drivetube-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	ProcessPayment(ctx *fiber.Ctx) error
	PaymentStatus(ctx *fiber.Ctx) error
	CheckAccess(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	service service.ISubscriptionService
}

func NewSubscriptionController(service service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{service: service}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscriptions")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("/me", c.Me)
	h.Put("/me", c.Update)
	h.Post("/me/cancel", c.Cancel)
	h.Post("/payments/:id/process", c.ProcessPayment)
	h.Get("/payments/:id/status", c.PaymentStatus)
	h.Get("/check-access", c.CheckAccess)
}

func (c *subscriptionController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateSubscriptionRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *subscriptionController) Me(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Me(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *subscriptionController) Update(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSubscriptionRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *subscriptionController) Cancel(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Cancel(ctx.Context(), userId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *subscriptionController) ProcessPayment(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	paymentId, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.ProcessPayment(ctx.Context(), userId, paymentId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *subscriptionController) PaymentStatus(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	paymentId, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.PaymentStatus(ctx.Context(), userId, paymentId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *subscriptionController) CheckAccess(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.CheckAccess(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
