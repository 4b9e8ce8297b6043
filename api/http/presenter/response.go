// Package presenter holds the wire envelopes shared by all handlers.
package presenter

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mshaffan/inventory-api/pkg/validation"
)

// ErrorResponse is the single-message error envelope.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// ValidationResponse carries field-level validation failures.
type ValidationResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

// TokenResponse is returned by successful registration and login.
type TokenResponse struct {
	Token string `json:"token"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, msg string) error {
	return JSON(c, status, ErrorResponse{Msg: msg})
}

func ValidationErrors(c *fiber.Ctx, errs []validation.FieldError) error {
	return JSON(c, fiber.StatusBadRequest, ValidationResponse{Errors: errs})
}

func Token(c *fiber.Ctx, token string) error {
	return JSON(c, fiber.StatusOK, TokenResponse{Token: token})
}
