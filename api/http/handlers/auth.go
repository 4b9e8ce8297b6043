package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mshaffan/inventory-api/api/http/presenter"
	"github.com/mshaffan/inventory-api/pkg/auth"
	"github.com/mshaffan/inventory-api/pkg/security/jwt"
	"github.com/mshaffan/inventory-api/pkg/validation"
)

// AuthHandler serves login and current-user lookup.
type AuthHandler struct {
	useCase auth.AuthUseCase
	log     zerolog.Logger
}

func NewAuthHandler(useCase auth.AuthUseCase, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, log: log}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the client-facing user representation. It never carries
// the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Login authenticates a user and returns a token.
// @Summary Authenticate user and get token
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} presenter.TokenResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /auth [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}
	if errs := validation.Validate(req); errs != nil {
		return presenter.ValidationErrors(c, errs)
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			return presenter.Error(c, http.StatusBadRequest, "User does not exist")
		case errors.Is(err, auth.ErrInvalidPassword):
			return presenter.Error(c, http.StatusBadRequest, "Invalid password")
		default:
			h.log.Error().Err(err).Msg("login failed")
			return presenter.Error(c, http.StatusInternalServerError, "Server error")
		}
	}

	return presenter.Token(c, result.Token)
}

// Me returns the currently authenticated user, minus the password hash.
// @Summary Get the currently logged-in user
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} userResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /auth [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Token is not valid")
	}

	user, err := h.useCase.CurrentUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "User not found")
		}
		h.log.Error().Err(err).Msg("current user lookup failed")
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}

	return presenter.JSON(c, http.StatusOK, userResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
