package usecase

import (
	"context"

	"agency/internal/domain/entity"

	"github.com/google/uuid"
)

// LearningUsecase defines the interface for courses, enrollments and
// certification.
type LearningUsecase interface {
	// ListCourses retrieves the course catalog.
	ListCourses(ctx context.Context) ([]*entity.Course, error)

	// Enroll creates an enrollment with zero progress.
	Enroll(ctx context.Context, studentID, courseID uuid.UUID) (*entity.Enrollment, error)

	// ListEnrollments retrieves a student's enrollments.
	ListEnrollments(ctx context.Context, studentID uuid.UUID) ([]*entity.Enrollment, error)

	// SetProgress sets the explicit progress integer. Values outside 0-100
	// are rejected; progress is never derived from lesson completions.
	SetProgress(ctx context.Context, enrollmentID uuid.UUID, progress int) error

	// CompleteLesson records completion of one lesson. Completing the same
	// lesson twice stays a single record.
	CompleteLesson(ctx context.Context, enrollmentID uuid.UUID, lessonID string) error

	// ListLessonProgress retrieves lesson completions for an enrollment.
	ListLessonProgress(ctx context.Context, enrollmentID uuid.UUID) ([]*entity.LessonProgress, error)

	// RecordQuizAttempt appends a quiz attempt. Scores never issue
	// certificates on their own.
	RecordQuizAttempt(ctx context.Context, enrollmentID uuid.UUID, quizID string, score int) (*entity.QuizAttempt, error)

	// ListQuizAttempts retrieves quiz attempts for an enrollment.
	ListQuizAttempts(ctx context.Context, enrollmentID uuid.UUID) ([]*entity.QuizAttempt, error)

	// ApproveCertificate issues a certificate for an enrollment on explicit
	// staff approval. The certificate embeds a verification QR image. A
	// second approval for the same enrollment is rejected.
	ApproveCertificate(ctx context.Context, enrollmentID, approvedBy uuid.UUID) (*entity.Certificate, error)

	// VerifyCertificate retrieves a certificate by its business number.
	VerifyCertificate(ctx context.Context, number string) (*entity.Certificate, error)
}
