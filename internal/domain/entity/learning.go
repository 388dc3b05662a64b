// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Course is a catalog item students enroll in. Seeded alongside services.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Enrollment is a student's relationship to a course. Progress is a 0-100
// integer set explicitly by callers; the storage layer never derives it from
// lesson counts.
type Enrollment struct {
	ID         uuid.UUID `json:"id"`
	StudentID  uuid.UUID `json:"student_id"`
	CourseID   uuid.UUID `json:"course_id"`
	Progress   int       `json:"progress"`
	EnrolledAt time.Time `json:"enrolled_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LessonProgress records completion of a single lesson within an enrollment.
type LessonProgress struct {
	ID           uuid.UUID `json:"id"`
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	LessonID     string    `json:"lesson_id"`
	CompletedAt  time.Time `json:"completed_at"`
}

// QuizAttempt records one quiz attempt within an enrollment.
type QuizAttempt struct {
	ID           uuid.UUID `json:"id"`
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	QuizID       string    `json:"quiz_id"`
	Score        int       `json:"score"`
	AttemptedAt  time.Time `json:"attempted_at"`
}

// Certificate attests course completion. Issuance requires explicit staff
// approval; passing quiz scores alone never produce a certificate. QRCodePNG
// holds a generated verification QR image.
type Certificate struct {
	ID                uuid.UUID `json:"id"`
	CertificateNumber string    `json:"certificate_number"`
	EnrollmentID      uuid.UUID `json:"enrollment_id"`
	ApprovedBy        uuid.UUID `json:"approved_by"`
	QRCodePNG         []byte    `json:"qr_code_png,omitempty"`
	IssuedAt          time.Time `json:"issued_at"`
}
