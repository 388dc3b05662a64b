// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agency/internal/domain/entity"
	"agency/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for learning persistence.
var (
	// ErrCourseNotFound is returned when a course is not found.
	ErrCourseNotFound = errors.New("course not found")
	// ErrEnrollmentNotFound is returned when an enrollment is not found.
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	// ErrCertificateNotFound is returned when a certificate is not found.
	ErrCertificateNotFound = errors.New("certificate not found")
)

// LearningRepository defines operations for the course/enrollment family.
type LearningRepository interface {
	// CreateCourse adds a course. Used by seeding and staff tooling.
	CreateCourse(ctx context.Context, course *entity.Course) error

	// FindCourseByID retrieves a course by its id.
	FindCourseByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// ListCourses retrieves the course catalog.
	ListCourses(ctx context.Context) ([]*entity.Course, error)

	// CreateEnrollment persists a student's enrollment in a course.
	CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error

	// FindEnrollmentByID retrieves an enrollment by its id.
	FindEnrollmentByID(ctx context.Context, id uuid.UUID) (*entity.Enrollment, error)

	// ListEnrollmentsByStudent retrieves a student's enrollments.
	ListEnrollmentsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Enrollment, error)

	// CountEnrollments reports the total number of enrollments.
	CountEnrollments(ctx context.Context) (int64, error)

	// UpdateEnrollmentProgress sets the explicit 0-100 progress integer.
	UpdateEnrollmentProgress(ctx context.Context, id uuid.UUID, progress int) error

	// RecordLessonProgress appends a lesson completion record.
	RecordLessonProgress(ctx context.Context, progress *entity.LessonProgress) error

	// ListLessonProgress retrieves lesson completions for an enrollment.
	ListLessonProgress(ctx context.Context, enrollmentID uuid.UUID) ([]*entity.LessonProgress, error)

	// RecordQuizAttempt appends a quiz attempt.
	RecordQuizAttempt(ctx context.Context, attempt *entity.QuizAttempt) error

	// ListQuizAttempts retrieves quiz attempts for an enrollment.
	ListQuizAttempts(ctx context.Context, enrollmentID uuid.UUID) ([]*entity.QuizAttempt, error)

	// CreateCertificate persists an issued certificate.
	CreateCertificate(ctx context.Context, cert *entity.Certificate) error

	// FindCertificateByEnrollment retrieves the certificate issued for an
	// enrollment, if any.
	FindCertificateByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*entity.Certificate, error)

	// FindCertificateByNumber retrieves a certificate by its natural key.
	FindCertificateByNumber(ctx context.Context, number string) (*entity.Certificate, error)
}
