package handler

import (
	"net/http"

	"agency/internal/delivery/http/response"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LearningHandler holds dependencies for course and certification handlers.
type LearningHandler struct {
	uc usecase.LearningUsecase
}

// NewLearningHandler is the constructor for LearningHandler, injected by Fx.
func NewLearningHandler(uc usecase.LearningUsecase) *LearningHandler {
	return &LearningHandler{uc: uc}
}

// ListCourses returns the course catalog.
func (h *LearningHandler) ListCourses(c echo.Context) error {
	courses, err := h.uc.ListCourses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, courses, "Courses retrieved successfully")
}

type enrollRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
}

// Enroll enrolls the authenticated student in a course.
func (h *LearningHandler) Enroll(c echo.Context) error {
	studentID, ok := accountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input enrollRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	courseID, err := parseUUIDField(input.CourseID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid course ID")
	}

	enrollment, err := h.uc.Enroll(c.Request().Context(), studentID, courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, enrollment, "Enrolled successfully")
}

// ListMyEnrollments returns the authenticated student's enrollments.
func (h *LearningHandler) ListMyEnrollments(c echo.Context) error {
	studentID, ok := accountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	enrollments, err := h.uc.ListEnrollments(c.Request().Context(), studentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, enrollments, "Enrollments retrieved successfully")
}

type setProgressRequest struct {
	Progress int `json:"progress"`
}

// SetProgress sets the explicit enrollment progress integer.
func (h *LearningHandler) SetProgress(c echo.Context) error {
	enrollmentID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid enrollment ID")
	}

	var input setProgressRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid progress input")
	}

	if err := h.uc.SetProgress(c.Request().Context(), enrollmentID, input.Progress); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Progress updated")
}

// CompleteLesson records completion of one lesson.
func (h *LearningHandler) CompleteLesson(c echo.Context) error {
	enrollmentID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid enrollment ID")
	}

	if err := h.uc.CompleteLesson(c.Request().Context(), enrollmentID, c.Param("lessonID")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Lesson completed")
}

// ListLessonProgress returns lesson completions for an enrollment.
func (h *LearningHandler) ListLessonProgress(c echo.Context) error {
	enrollmentID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid enrollment ID")
	}

	records, err := h.uc.ListLessonProgress(c.Request().Context(), enrollmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Lesson progress retrieved successfully")
}

type quizAttemptRequest struct {
	QuizID string `json:"quiz_id" validate:"required"`
	Score  int    `json:"score" validate:"gte=0"`
}

// RecordQuizAttempt appends a quiz attempt.
func (h *LearningHandler) RecordQuizAttempt(c echo.Context) error {
	enrollmentID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid enrollment ID")
	}

	var input quizAttemptRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quiz attempt input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	attempt, err := h.uc.RecordQuizAttempt(c.Request().Context(), enrollmentID, input.QuizID, input.Score)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, attempt, "Quiz attempt recorded")
}

// ListQuizAttempts returns quiz attempts for an enrollment.
func (h *LearningHandler) ListQuizAttempts(c echo.Context) error {
	enrollmentID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid enrollment ID")
	}

	attempts, err := h.uc.ListQuizAttempts(c.Request().Context(), enrollmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, attempts, "Quiz attempts retrieved successfully")
}

// ApproveCertificate issues a certificate for an enrollment. Staff only; the
// approver is the authenticated employee.
func (h *LearningHandler) ApproveCertificate(c echo.Context) error {
	enrollmentID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid enrollment ID")
	}
	approvedBy, ok := accountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	cert, err := h.uc.ApproveCertificate(c.Request().Context(), enrollmentID, approvedBy)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cert, "Certificate approved")
}

// VerifyCertificate returns a certificate by its business number. Public.
func (h *LearningHandler) VerifyCertificate(c echo.Context) error {
	cert, err := h.uc.VerifyCertificate(c.Request().Context(), c.Param("number"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cert, "Certificate verified")
}
