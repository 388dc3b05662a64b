package handler

import (
	"net/http"

	"agency/internal/delivery/http/response"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the public catalog handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListServices returns the full service catalog.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.uc.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "Services retrieved successfully")
}

// GetService returns a single catalog service.
func (h *CatalogHandler) GetService(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service ID")
	}

	service, err := h.uc.GetService(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, service, "Service retrieved successfully")
}

// ValidateDiscount checks a discount code. An invalid code is a normal 200
// response with valid false.
func (h *CatalogHandler) ValidateDiscount(c echo.Context) error {
	validation, err := h.uc.ValidateDiscount(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"valid":   validation.Valid,
		"percent": validation.Percent,
	}, "Discount code checked")
}
