package serverutils

import (
	"drivetube-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest parses the JSON body into dst and runs struct validation.
// Both failure modes surface as the same client-facing validation error.
func ValidateRequest(ctx *fiber.Ctx, dst interface{}) error {
	if err := ctx.BodyParser(dst); err != nil {
		return apperr.Wrap(apperr.KindValidation, apperr.MsgInvalidPayload, err)
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.Wrap(apperr.KindValidation, apperr.MsgRequiredFields, err)
	}
	return nil
}
