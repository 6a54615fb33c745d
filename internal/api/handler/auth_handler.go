package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stackit/community-api/internal/api/envelope"
	"github.com/stackit/community-api/internal/core/domain"
	"github.com/stackit/community-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginResult is the single data element returned by a successful login.
type loginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  envelope.Response
// @Failure      400   {object}  envelope.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		// Duplicate identities report the invalid-args code with a 400,
		// not a 404, because the caller supplied them.
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, envelope.Error(envelope.CodeInvalidArgs, "Email already exists."))
		case errors.Is(err, domain.ErrUsernameTaken):
			return c.JSON(http.StatusBadRequest, envelope.Error(envelope.CodeInvalidArgs, "Username not available."))
		}
		return err
	}

	return c.JSON(http.StatusOK, envelope.OK("User added successfully", []*domain.User{user}))
}

// Login authenticates a user and returns a signed identity token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope.Response
// @Failure      400   {object}  envelope.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		// Bad credentials stay a 400 here: login has no resource to 404
		// and no established identity to 401.
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusBadRequest, envelope.Error(envelope.CodeInvalidArgs, "User not found"))
		case errors.Is(err, domain.ErrIncorrectPassword):
			return c.JSON(http.StatusBadRequest, envelope.Error(envelope.CodeInvalidArgs, "Incorrect Password."))
		}
		return err
	}

	return c.JSON(http.StatusOK, envelope.OK("User logged in successfully.", []loginResult{{Token: token, User: user}}))
}
