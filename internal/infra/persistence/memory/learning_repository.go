package memory

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateCourse adds a course.
func (s *Store) CreateCourse(_ context.Context, course *entity.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now()
	}
	s.courses[course.ID] = cloneCourse(course)

	return nil
}

// FindCourseByID retrieves a course by its id.
func (s *Store) FindCourseByID(_ context.Context, id uuid.UUID) (*entity.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, repository.ErrCourseNotFound
	}

	return cloneCourse(course), nil
}

// ListCourses retrieves the course catalog.
func (s *Store) ListCourses(_ context.Context) ([]*entity.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]*entity.Course, 0, len(s.courses))
	for _, course := range s.courses {
		courses = append(courses, cloneCourse(course))
	}
	sortByTimeAsc(courses, func(c *entity.Course) time.Time { return c.CreatedAt })

	return courses, nil
}

// CreateEnrollment persists a student's enrollment in a course.
func (s *Store) CreateEnrollment(_ context.Context, enrollment *entity.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.enrollments {
		if existing.StudentID == enrollment.StudentID && existing.CourseID == enrollment.CourseID {
			return domainerrors.ErrConflict.WrapMessage("student already enrolled in this course")
		}
	}
	if enrollment.ID == uuid.Nil {
		enrollment.ID = uuid.New()
	}
	now := time.Now()
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = now
	}
	enrollment.UpdatedAt = now
	s.enrollments[enrollment.ID] = cloneEnrollment(enrollment)

	return nil
}

// FindEnrollmentByID retrieves an enrollment by its id.
func (s *Store) FindEnrollmentByID(_ context.Context, id uuid.UUID) (*entity.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrollment, ok := s.enrollments[id]
	if !ok {
		return nil, repository.ErrEnrollmentNotFound
	}

	return cloneEnrollment(enrollment), nil
}

// ListEnrollmentsByStudent retrieves a student's enrollments.
func (s *Store) ListEnrollmentsByStudent(_ context.Context, studentID uuid.UUID) ([]*entity.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var enrollments []*entity.Enrollment
	for _, enrollment := range s.enrollments {
		if enrollment.StudentID == studentID {
			enrollments = append(enrollments, cloneEnrollment(enrollment))
		}
	}
	sortByTimeAsc(enrollments, func(e *entity.Enrollment) time.Time { return e.EnrolledAt })

	return enrollments, nil
}

// CountEnrollments reports the total number of enrollments.
func (s *Store) CountEnrollments(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.enrollments)), nil
}

// UpdateEnrollmentProgress sets the explicit 0-100 progress integer.
func (s *Store) UpdateEnrollmentProgress(_ context.Context, id uuid.UUID, progress int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enrollment, ok := s.enrollments[id]
	if !ok {
		return repository.ErrEnrollmentNotFound
	}
	enrollment.Progress = progress
	enrollment.UpdatedAt = time.Now()

	return nil
}

// RecordLessonProgress appends a lesson completion record.
func (s *Store) RecordLessonProgress(_ context.Context, progress *entity.LessonProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.enrollments[progress.EnrollmentID]; !ok {
		return repository.ErrEnrollmentNotFound
	}
	// Re-completing a lesson stays a single record.
	for _, existing := range s.lessons {
		if existing.EnrollmentID == progress.EnrollmentID && existing.LessonID == progress.LessonID {
			return nil
		}
	}
	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	if progress.CompletedAt.IsZero() {
		progress.CompletedAt = time.Now()
	}
	s.lessons[progress.ID] = cloneLessonProgress(progress)

	return nil
}

// ListLessonProgress retrieves lesson completions for an enrollment.
func (s *Store) ListLessonProgress(_ context.Context, enrollmentID uuid.UUID) ([]*entity.LessonProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var lessons []*entity.LessonProgress
	for _, lesson := range s.lessons {
		if lesson.EnrollmentID == enrollmentID {
			lessons = append(lessons, cloneLessonProgress(lesson))
		}
	}
	sortByTimeAsc(lessons, func(l *entity.LessonProgress) time.Time { return l.CompletedAt })

	return lessons, nil
}

// RecordQuizAttempt appends a quiz attempt.
func (s *Store) RecordQuizAttempt(_ context.Context, attempt *entity.QuizAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.enrollments[attempt.EnrollmentID]; !ok {
		return repository.ErrEnrollmentNotFound
	}
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = time.Now()
	}
	s.quizzes[attempt.ID] = cloneQuizAttempt(attempt)

	return nil
}

// ListQuizAttempts retrieves quiz attempts for an enrollment.
func (s *Store) ListQuizAttempts(_ context.Context, enrollmentID uuid.UUID) ([]*entity.QuizAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var attempts []*entity.QuizAttempt
	for _, attempt := range s.quizzes {
		if attempt.EnrollmentID == enrollmentID {
			attempts = append(attempts, cloneQuizAttempt(attempt))
		}
	}
	sortByTimeAsc(attempts, func(a *entity.QuizAttempt) time.Time { return a.AttemptedAt })

	return attempts, nil
}

// CreateCertificate persists an issued certificate.
func (s *Store) CreateCertificate(_ context.Context, cert *entity.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cert.ID == uuid.Nil {
		cert.ID = uuid.New()
	}
	if cert.IssuedAt.IsZero() {
		cert.IssuedAt = time.Now()
	}
	s.certificates[cert.ID] = cloneCertificate(cert)

	return nil
}

// FindCertificateByEnrollment retrieves the certificate issued for an
// enrollment, if any.
func (s *Store) FindCertificateByEnrollment(_ context.Context, enrollmentID uuid.UUID) (*entity.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cert := range s.certificates {
		if cert.EnrollmentID == enrollmentID {
			return cloneCertificate(cert), nil
		}
	}

	return nil, repository.ErrCertificateNotFound
}

// FindCertificateByNumber retrieves a certificate by its natural key.
func (s *Store) FindCertificateByNumber(_ context.Context, number string) (*entity.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cert := range s.certificates {
		if cert.CertificateNumber == number {
			return cloneCertificate(cert), nil
		}
	}

	return nil, repository.ErrCertificateNotFound
}
