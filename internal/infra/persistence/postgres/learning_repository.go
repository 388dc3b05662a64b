package postgres

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// learningRepository implements the repository.LearningRepository interface.
type learningRepository struct {
	db *gorm.DB
}

// NewLearningRepository is the constructor for learningRepository.
func NewLearningRepository(db *gorm.DB) repository.LearningRepository {
	return &learningRepository{
		db: db,
	}
}

// CreateCourse adds a course.
func (repo *learningRepository) CreateCourse(ctx context.Context, course *entity.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}

	courseM := fromCourseDomain(course)

	if err := repo.db.WithContext(ctx).Create(courseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("course title already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	course.CreatedAt = courseM.CreatedAt

	return nil
}

// FindCourseByID retrieves a course by its id.
func (repo *learningRepository) FindCourseByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var courseM model.CourseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&courseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by ID")
	}

	return toCourseDomain(&courseM), nil
}

// ListCourses retrieves the course catalog ordered by title.
func (repo *learningRepository) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	var courseMs []model.CourseModel

	if err := repo.db.WithContext(ctx).
		Order("title ASC").
		Find(&courseMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	courses := make([]*entity.Course, 0, len(courseMs))
	for i := range courseMs {
		courses = append(courses, toCourseDomain(&courseMs[i]))
	}

	return courses, nil
}

// CreateEnrollment persists a student's enrollment. The composite unique
// index rejects a duplicate enrollment in the same course.
func (repo *learningRepository) CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error {
	if enrollment.ID == uuid.Nil {
		enrollment.ID = uuid.New()
	}
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now()
	}

	enrollmentM := &model.EnrollmentModel{
		ID:         enrollment.ID,
		StudentID:  enrollment.StudentID,
		CourseID:   enrollment.CourseID,
		Progress:   enrollment.Progress,
		EnrolledAt: enrollment.EnrolledAt,
		UpdatedAt:  enrollment.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(enrollmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("student already enrolled in this course")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create enrollment")
	}

	enrollment.UpdatedAt = enrollmentM.UpdatedAt

	return nil
}

// FindEnrollmentByID retrieves an enrollment by its id.
func (repo *learningRepository) FindEnrollmentByID(ctx context.Context, id uuid.UUID) (*entity.Enrollment, error) {
	var enrollmentM model.EnrollmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&enrollmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEnrollmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find enrollment by ID")
	}

	return toEnrollmentDomain(&enrollmentM), nil
}

// ListEnrollmentsByStudent retrieves a student's enrollments.
func (repo *learningRepository) ListEnrollmentsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Enrollment, error) {
	var enrollmentMs []model.EnrollmentModel

	if err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("enrolled_at DESC").
		Find(&enrollmentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list enrollments by student")
	}

	enrollments := make([]*entity.Enrollment, 0, len(enrollmentMs))
	for i := range enrollmentMs {
		enrollments = append(enrollments, toEnrollmentDomain(&enrollmentMs[i]))
	}

	return enrollments, nil
}

// CountEnrollments reports the total number of enrollments.
func (repo *learningRepository) CountEnrollments(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count enrollments")
	}

	return count, nil
}

// UpdateEnrollmentProgress sets the explicit 0-100 progress integer. Range
// validation happens in the use case before the write.
func (repo *learningRepository) UpdateEnrollmentProgress(ctx context.Context, id uuid.UUID, progress int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"progress":   progress,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update enrollment progress")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEnrollmentNotFound
	}

	return nil
}

// RecordLessonProgress appends a lesson completion record. Re-completing a
// lesson is a no-op thanks to the (enrollment, lesson) unique index.
func (repo *learningRepository) RecordLessonProgress(ctx context.Context, progress *entity.LessonProgress) error {
	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	if progress.CompletedAt.IsZero() {
		progress.CompletedAt = time.Now()
	}

	progressM := &model.LessonProgressModel{
		ID:           progress.ID,
		EnrollmentID: progress.EnrollmentID,
		LessonID:     progress.LessonID,
		CompletedAt:  progress.CompletedAt,
	}

	if err := repo.db.WithContext(ctx).Create(progressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record lesson progress")
	}

	return nil
}

// ListLessonProgress retrieves lesson completions for an enrollment.
func (repo *learningRepository) ListLessonProgress(ctx context.Context, enrollmentID uuid.UUID) ([]*entity.LessonProgress, error) {
	var progressMs []model.LessonProgressModel

	if err := repo.db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Order("completed_at ASC").
		Find(&progressMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list lesson progress")
	}

	records := make([]*entity.LessonProgress, 0, len(progressMs))
	for i := range progressMs {
		p := progressMs[i]
		records = append(records, &entity.LessonProgress{
			ID:           p.ID,
			EnrollmentID: p.EnrollmentID,
			LessonID:     p.LessonID,
			CompletedAt:  p.CompletedAt,
		})
	}

	return records, nil
}

// RecordQuizAttempt appends a quiz attempt.
func (repo *learningRepository) RecordQuizAttempt(ctx context.Context, attempt *entity.QuizAttempt) error {
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = time.Now()
	}

	attemptM := &model.QuizAttemptModel{
		ID:           attempt.ID,
		EnrollmentID: attempt.EnrollmentID,
		QuizID:       attempt.QuizID,
		Score:        attempt.Score,
		AttemptedAt:  attempt.AttemptedAt,
	}

	if err := repo.db.WithContext(ctx).Create(attemptM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record quiz attempt")
	}

	return nil
}

// ListQuizAttempts retrieves quiz attempts for an enrollment.
func (repo *learningRepository) ListQuizAttempts(ctx context.Context, enrollmentID uuid.UUID) ([]*entity.QuizAttempt, error) {
	var attemptMs []model.QuizAttemptModel

	if err := repo.db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Order("attempted_at ASC").
		Find(&attemptMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list quiz attempts")
	}

	attempts := make([]*entity.QuizAttempt, 0, len(attemptMs))
	for i := range attemptMs {
		a := attemptMs[i]
		attempts = append(attempts, &entity.QuizAttempt{
			ID:           a.ID,
			EnrollmentID: a.EnrollmentID,
			QuizID:       a.QuizID,
			Score:        a.Score,
			AttemptedAt:  a.AttemptedAt,
		})
	}

	return attempts, nil
}

// CreateCertificate persists an issued certificate. The unique enrollment
// index enforces one certificate per enrollment.
func (repo *learningRepository) CreateCertificate(ctx context.Context, cert *entity.Certificate) error {
	if cert.ID == uuid.Nil {
		cert.ID = uuid.New()
	}
	if cert.IssuedAt.IsZero() {
		cert.IssuedAt = time.Now()
	}

	certM := &model.CertificateModel{
		ID:                cert.ID,
		CertificateNumber: cert.CertificateNumber,
		EnrollmentID:      cert.EnrollmentID,
		ApprovedBy:        cert.ApprovedBy,
		QRCodePNG:         cert.QRCodePNG,
		IssuedAt:          cert.IssuedAt,
	}

	if err := repo.db.WithContext(ctx).Create(certM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCertificateExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create certificate")
	}

	return nil
}

// FindCertificateByEnrollment retrieves the certificate issued for an
// enrollment, if any.
func (repo *learningRepository) FindCertificateByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*entity.Certificate, error) {
	var certM model.CertificateModel

	if err := repo.db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		First(&certM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCertificateNotFound
		}

		return nil, errors.Wrap(err, "failed to find certificate by enrollment")
	}

	return toCertificateDomain(&certM), nil
}

// FindCertificateByNumber retrieves a certificate by its natural key.
func (repo *learningRepository) FindCertificateByNumber(ctx context.Context, number string) (*entity.Certificate, error) {
	var certM model.CertificateModel

	if err := repo.db.WithContext(ctx).
		Where("certificate_number = ?", number).
		First(&certM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCertificateNotFound
		}

		return nil, errors.Wrap(err, "failed to find certificate by number")
	}

	return toCertificateDomain(&certM), nil
}

func fromCourseDomain(course *entity.Course) *model.CourseModel {
	return &model.CourseModel{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Price:       course.Price,
		IsActive:    course.IsActive,
		CreatedAt:   course.CreatedAt,
	}
}

func toCourseDomain(courseM *model.CourseModel) *entity.Course {
	return &entity.Course{
		ID:          courseM.ID,
		Title:       courseM.Title,
		Description: courseM.Description,
		Price:       courseM.Price,
		IsActive:    courseM.IsActive,
		CreatedAt:   courseM.CreatedAt,
	}
}

func toEnrollmentDomain(enrollmentM *model.EnrollmentModel) *entity.Enrollment {
	return &entity.Enrollment{
		ID:         enrollmentM.ID,
		StudentID:  enrollmentM.StudentID,
		CourseID:   enrollmentM.CourseID,
		Progress:   enrollmentM.Progress,
		EnrolledAt: enrollmentM.EnrolledAt,
		UpdatedAt:  enrollmentM.UpdatedAt,
	}
}

func toCertificateDomain(certM *model.CertificateModel) *entity.Certificate {
	return &entity.Certificate{
		ID:                certM.ID,
		CertificateNumber: certM.CertificateNumber,
		EnrollmentID:      certM.EnrollmentID,
		ApprovedBy:        certM.ApprovedBy,
		QRCodePNG:         certM.QRCodePNG,
		IssuedAt:          certM.IssuedAt,
	}
}
