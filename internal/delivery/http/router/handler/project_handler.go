package handler

import (
	"net/http"

	"agency/internal/delivery/http/response"
	"agency/internal/domain/entity"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProjectHandler holds dependencies for project and task handlers.
type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

type createProjectRequest struct {
	ClientID      string `json:"client_id" validate:"required,uuid"`
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	DaysRemaining int    `json:"days_remaining" validate:"gte=0"`
}

// CreateProject opens a project for a client.
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var input createProjectRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	clientID, err := parseUUIDField(input.ClientID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid client ID")
	}

	project, err := h.uc.CreateProject(c.Request().Context(), usecase.CreateProjectInput{
		ClientID:      clientID,
		Name:          input.Name,
		Description:   input.Description,
		DaysRemaining: input.DaysRemaining,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project, "Project created successfully")
}

// GetProject returns a project by id.
func (h *ProjectHandler) GetProject(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	project, err := h.uc.GetProject(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "Project retrieved successfully")
}

// ListProjects returns all projects for the staff back office.
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.uc.ListProjects(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "Projects retrieved successfully")
}

// ListMyProjects returns the authenticated client's projects.
func (h *ProjectHandler) ListMyProjects(c echo.Context) error {
	clientID, ok := accountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	projects, err := h.uc.ListProjectsByClient(c.Request().Context(), clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "Projects retrieved successfully")
}

type advanceProjectStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdvanceProjectStatus moves a project forward through the pipeline.
func (h *ProjectHandler) AdvanceProjectStatus(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	var input advanceProjectStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.AdvanceProjectStatus(c.Request().Context(), id, entity.ProjectStatus(input.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Project status advanced")
}

type setDaysRemainingRequest struct {
	DaysRemaining int `json:"days_remaining" validate:"gte=0"`
}

// SetDaysRemaining updates the staff-maintained schedule counter.
func (h *ProjectHandler) SetDaysRemaining(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	var input setDaysRemainingRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.SetProjectDaysRemaining(c.Request().Context(), id, input.DaysRemaining); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Days remaining updated")
}

type createTaskRequest struct {
	EmployeeID     string `json:"employee_id" validate:"required,uuid"`
	ProjectID      string `json:"project_id" validate:"required,uuid"`
	Title          string `json:"title" validate:"required"`
	HoursRemaining int    `json:"hours_remaining" validate:"gte=0"`
}

// CreateTask assigns a unit of work to an employee.
func (h *ProjectHandler) CreateTask(c echo.Context) error {
	var input createTaskRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	employeeID, err := parseUUIDField(input.EmployeeID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid employee ID")
	}
	projectID, err := parseUUIDField(input.ProjectID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	task, err := h.uc.CreateTask(c.Request().Context(), usecase.CreateTaskInput{
		EmployeeID:     employeeID,
		ProjectID:      projectID,
		Title:          input.Title,
		HoursRemaining: input.HoursRemaining,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, task, "Task created successfully")
}

// ListMyTasks returns the authenticated employee's tasks.
func (h *ProjectHandler) ListMyTasks(c echo.Context) error {
	employeeID, ok := accountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	tasks, err := h.uc.ListTasksByEmployee(c.Request().Context(), employeeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "Tasks retrieved successfully")
}

// ListProjectTasks returns a project's tasks.
func (h *ProjectHandler) ListProjectTasks(c echo.Context) error {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	tasks, err := h.uc.ListTasksByProject(c.Request().Context(), projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "Tasks retrieved successfully")
}

type updateTaskProgressRequest struct {
	HoursRemaining int  `json:"hours_remaining" validate:"gte=0"`
	Completed      bool `json:"completed"`
}

// UpdateTaskProgress updates remaining hours and the completion flag.
func (h *ProjectHandler) UpdateTaskProgress(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task ID")
	}

	var input updateTaskProgressRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.UpdateTaskProgress(c.Request().Context(), id, input.HoursRemaining, input.Completed); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Task progress updated")
}
