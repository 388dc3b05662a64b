package impl

import (
	"context"
	"fmt"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/domain/service"
	"agency/internal/infra/numbering"
	"agency/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type learningService struct {
	learningRepo repository.LearningRepository
	accountRepo  repository.AccountRepository
	qrcodes      service.QRCodeService
}

// LearningServiceParams holds dependencies for LearningService, injected by Fx.
type LearningServiceParams struct {
	fx.In

	LearningRepo repository.LearningRepository
	AccountRepo  repository.AccountRepository
	QRCodes      service.QRCodeService
}

// NewLearningService creates a new learning service instance.
func NewLearningService(params LearningServiceParams) usecase.LearningUsecase {
	return &learningService{
		learningRepo: params.LearningRepo,
		accountRepo:  params.AccountRepo,
		qrcodes:      params.QRCodes,
	}
}

// ListCourses retrieves the course catalog.
func (s *learningService) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	courses, err := s.learningRepo.ListCourses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}

// Enroll creates an enrollment with zero progress.
func (s *learningService) Enroll(ctx context.Context, studentID, courseID uuid.UUID) (*entity.Enrollment, error) {
	if _, err := s.learningRepo.FindCourseByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	now := time.Now()
	enrollment := &entity.Enrollment{
		ID:         uuid.New(),
		StudentID:  studentID,
		CourseID:   courseID,
		Progress:   0,
		EnrolledAt: now,
		UpdatedAt:  now,
	}

	if err := s.learningRepo.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, errors.Wrap(err, "failed to create enrollment")
	}

	return enrollment, nil
}

// ListEnrollments retrieves a student's enrollments.
func (s *learningService) ListEnrollments(ctx context.Context, studentID uuid.UUID) ([]*entity.Enrollment, error) {
	enrollments, err := s.learningRepo.ListEnrollmentsByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enrollments")
	}

	return enrollments, nil
}

// SetProgress sets the explicit progress integer. The 0-100 range is the
// only validation; nothing is derived from lesson completions.
func (s *learningService) SetProgress(ctx context.Context, enrollmentID uuid.UUID, progress int) error {
	if progress < 0 || progress > 100 {
		return domainerrors.ErrInvalidProgress
	}

	if err := s.learningRepo.UpdateEnrollmentProgress(ctx, enrollmentID, progress); err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return domainerrors.ErrEnrollmentNotFound
		}

		return errors.Wrap(err, "failed to update enrollment progress")
	}

	return nil
}

// CompleteLesson records completion of one lesson.
func (s *learningService) CompleteLesson(ctx context.Context, enrollmentID uuid.UUID, lessonID string) error {
	if lessonID == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("lesson id must not be empty")
	}
	if err := s.checkEnrollment(ctx, enrollmentID); err != nil {
		return err
	}

	progress := &entity.LessonProgress{
		ID:           uuid.New(),
		EnrollmentID: enrollmentID,
		LessonID:     lessonID,
		CompletedAt:  time.Now(),
	}

	if err := s.learningRepo.RecordLessonProgress(ctx, progress); err != nil {
		return errors.Wrap(err, "failed to record lesson progress")
	}

	return nil
}

// ListLessonProgress retrieves lesson completions for an enrollment.
func (s *learningService) ListLessonProgress(ctx context.Context, enrollmentID uuid.UUID) ([]*entity.LessonProgress, error) {
	records, err := s.learningRepo.ListLessonProgress(ctx, enrollmentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lesson progress")
	}

	return records, nil
}

// RecordQuizAttempt appends a quiz attempt.
func (s *learningService) RecordQuizAttempt(ctx context.Context, enrollmentID uuid.UUID, quizID string, score int) (*entity.QuizAttempt, error) {
	if quizID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quiz id must not be empty")
	}
	if score < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("score must not be negative")
	}
	if err := s.checkEnrollment(ctx, enrollmentID); err != nil {
		return nil, err
	}

	attempt := &entity.QuizAttempt{
		ID:           uuid.New(),
		EnrollmentID: enrollmentID,
		QuizID:       quizID,
		Score:        score,
		AttemptedAt:  time.Now(),
	}

	if err := s.learningRepo.RecordQuizAttempt(ctx, attempt); err != nil {
		return nil, errors.Wrap(err, "failed to record quiz attempt")
	}

	return attempt, nil
}

// ListQuizAttempts retrieves quiz attempts for an enrollment.
func (s *learningService) ListQuizAttempts(ctx context.Context, enrollmentID uuid.UUID) ([]*entity.QuizAttempt, error) {
	attempts, err := s.learningRepo.ListQuizAttempts(ctx, enrollmentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quiz attempts")
	}

	return attempts, nil
}

// ApproveCertificate issues a certificate on explicit staff approval. The
// approver must be an employee account; quiz scores are never consulted.
func (s *learningService) ApproveCertificate(ctx context.Context, enrollmentID, approvedBy uuid.UUID) (*entity.Certificate, error) {
	if err := s.checkEnrollment(ctx, enrollmentID); err != nil {
		return nil, err
	}

	approver, err := s.accountRepo.FindAccountByID(ctx, approvedBy)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find approver")
	}
	if approver.Role != entity.RoleEmployee {
		return nil, domainerrors.ErrForbidden.WrapMessage("only staff may approve certificates")
	}

	if _, err := s.learningRepo.FindCertificateByEnrollment(ctx, enrollmentID); err == nil {
		return nil, domainerrors.ErrCertificateExists
	} else if !errors.Is(err, repository.ErrCertificateNotFound) {
		return nil, errors.Wrap(err, "failed to check existing certificate")
	}

	number := numbering.Next(numbering.CertificatePrefix)
	png, err := s.qrcodes.GeneratePNG(fmt.Sprintf("certificate:%s", number))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate certificate QR code")
	}

	cert := &entity.Certificate{
		ID:                uuid.New(),
		CertificateNumber: number,
		EnrollmentID:      enrollmentID,
		ApprovedBy:        approvedBy,
		QRCodePNG:         png,
		IssuedAt:          time.Now(),
	}

	if err := s.learningRepo.CreateCertificate(ctx, cert); err != nil {
		return nil, errors.Wrap(err, "failed to create certificate")
	}

	return cert, nil
}

// VerifyCertificate retrieves a certificate by its business number.
func (s *learningService) VerifyCertificate(ctx context.Context, number string) (*entity.Certificate, error) {
	cert, err := s.learningRepo.FindCertificateByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrCertificateNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("certificate not found")
		}

		return nil, errors.Wrap(err, "failed to find certificate")
	}

	return cert, nil
}

func (s *learningService) checkEnrollment(ctx context.Context, enrollmentID uuid.UUID) error {
	if _, err := s.learningRepo.FindEnrollmentByID(ctx, enrollmentID); err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return domainerrors.ErrEnrollmentNotFound
		}

		return errors.Wrap(err, "failed to find enrollment")
	}

	return nil
}
