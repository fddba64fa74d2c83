// FILE: internal/controller/auth_controller.go
package controller

import (
	"drivetube-be/internal/dto"
	"drivetube-be/internal/pkg/serverutils"
	"drivetube-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	VerifyEmail(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	GoogleLoginURL(ctx *fiber.Ctx) error
	GoogleCallback(ctx *fiber.Ctx) error
}

type authController struct {
	service      service.IAuthService
	oauthService service.IOAuthService
}

func NewAuthController(service service.IAuthService, oauthService service.IOAuthService) IAuthController {
	return &authController{service: service, oauthService: oauthService}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/verify-email", c.VerifyEmail)
	h.Post("/login", c.Login)
	h.Get("/google", c.GoogleLoginURL)
	h.Get("/google/callback", c.GoogleCallback)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *authController) VerifyEmail(ctx *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	if err := c.service.VerifyEmail(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) GoogleLoginURL(ctx *fiber.Ctx) error {
	url, err := c.oauthService.GetLoginURL("google")
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"url": url})
}

func (c *authController) GoogleCallback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing code")
	}

	res, err := c.oauthService.HandleCallback(ctx.Context(), "google", code)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
