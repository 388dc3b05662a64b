package handler

import (
	"net/http"

	"agency/internal/delivery/http/response"
	"agency/internal/domain/entity"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestHandler holds dependencies for change request handlers.
type RequestHandler struct {
	uc usecase.RequestUsecase
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

type createRequestRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// CreateModificationRequest submits a change request against a project.
func (h *RequestHandler) CreateModificationRequest(c echo.Context) error {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}
	clientID, ok := accountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input createRequestRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	req, err := h.uc.CreateModificationRequest(c.Request().Context(), usecase.CreateRequestInput{
		ProjectID:   projectID,
		ClientID:    clientID,
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, req, "Modification request submitted")
}

// ListModificationRequests returns a project's modification requests.
func (h *RequestHandler) ListModificationRequests(c echo.Context) error {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	reqs, err := h.uc.ListModificationRequests(c.Request().Context(), projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reqs, "Modification requests retrieved successfully")
}

type updateRequestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateModificationRequestStatus moves a request through its pipeline.
func (h *RequestHandler) UpdateModificationRequestStatus(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	var input updateRequestStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.UpdateModificationRequestStatus(c.Request().Context(), id, entity.RequestStatus(input.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Modification request status updated")
}

// CreateFeatureRequest submits a feature proposal against a project.
func (h *RequestHandler) CreateFeatureRequest(c echo.Context) error {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}
	clientID, ok := accountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input createRequestRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	req, err := h.uc.CreateFeatureRequest(c.Request().Context(), usecase.CreateRequestInput{
		ProjectID:   projectID,
		ClientID:    clientID,
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, req, "Feature request submitted")
}

// ListFeatureRequests returns a project's feature requests.
func (h *RequestHandler) ListFeatureRequests(c echo.Context) error {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	reqs, err := h.uc.ListFeatureRequests(c.Request().Context(), projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reqs, "Feature requests retrieved successfully")
}

// UpdateFeatureRequestStatus moves a feature request through its pipeline.
func (h *RequestHandler) UpdateFeatureRequestStatus(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	var input updateRequestStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.UpdateFeatureRequestStatus(c.Request().Context(), id, entity.RequestStatus(input.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Feature request status updated")
}

type estimateFeatureRequestRequest struct {
	EstimatedCost int64 `json:"estimated_cost" validate:"gte=0"`
	EstimatedDays int   `json:"estimated_days" validate:"gte=0"`
}

// EstimateFeatureRequest records the staff-set cost and duration.
func (h *RequestHandler) EstimateFeatureRequest(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	var input estimateFeatureRequestRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid estimate input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.EstimateFeatureRequest(c.Request().Context(), id, input.EstimatedCost, input.EstimatedDays); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Feature request estimated")
}
