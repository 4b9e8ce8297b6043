package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mshaffan/inventory-api/api/http/presenter"
	"github.com/mshaffan/inventory-api/pkg/auth"
	"github.com/mshaffan/inventory-api/pkg/validation"
)

// UserHandler serves account registration.
type UserHandler struct {
	useCase auth.AuthUseCase
	log     zerolog.Logger
}

func NewUserHandler(useCase auth.AuthUseCase, log zerolog.Logger) *UserHandler {
	return &UserHandler{useCase: useCase, log: log}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=9"`
}

// Register handles user registration.
// @Summary Register a new user
// @Description Registers a user with a valid name, email and password (at least 9 characters) and returns an auth token.
// @Tags    user
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 200 {object} presenter.TokenResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /user [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}
	if errs := validation.Validate(req); errs != nil {
		return presenter.ValidationErrors(c, errs)
	}

	result, err := h.useCase.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserAlreadyExists) {
			return presenter.Error(c, http.StatusBadRequest, "User already exists")
		}
		h.log.Error().Err(err).Msg("register failed")
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}

	return presenter.Token(c, result.Token)
}
