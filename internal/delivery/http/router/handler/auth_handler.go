package handler

import (
	"log/slog"
	"net/http"

	"agency/internal/delivery/http/response"
	"agency/internal/domain/entity"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for registration and login handlers.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Role     string `json:"role" validate:"required,oneof=client employee student"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	account, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Role:     entity.Role(input.Role),
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, account, "Account registered successfully")
}

type loginRequest struct {
	Role     string `json:"role" validate:"required,oneof=client employee student"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.uc.Login(c.Request().Context(), entity.Role(input.Role), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"account": result.Account,
		"token":   result.Token,
	}, "Login successful")
}

// Logout deletes the server-side session behind the presented token.
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, ok := sessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session in token")
	}

	if err := h.uc.Logout(c.Request().Context(), sid); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// GetProfile returns the authenticated account.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	id, ok := accountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Profile retrieved successfully")
}

// ListAccounts returns all accounts of the requested role.
func (h *AuthHandler) ListAccounts(c echo.Context) error {
	role := entity.Role(c.QueryParam("role"))
	if role != entity.RoleClient && role != entity.RoleEmployee && role != entity.RoleStudent {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown role")
	}

	accounts, err := h.uc.ListAccountsByRole(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accounts, "Accounts retrieved successfully")
}
