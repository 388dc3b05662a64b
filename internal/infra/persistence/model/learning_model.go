package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModel mirrors the 'courses' table. Title is the natural key used by
// idempotent seeding.
type CourseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"type:varchar(200);unique;not null"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// EnrollmentModel mirrors the 'enrollments' table. The composite unique index
// keeps one enrollment per student and course.
type EnrollmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enroll_student_course"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enroll_student_course"`
	Progress   int       `gorm:"not null;default:0"`
	EnrolledAt time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// LessonProgressModel mirrors the 'lesson_progress' table.
type LessonProgressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	EnrollmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_lesson_enrollment_lesson"`
	LessonID     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_lesson_enrollment_lesson"`
	CompletedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LessonProgressModel) TableName() string {
	return "lesson_progress"
}

// QuizAttemptModel mirrors the 'quiz_attempts' table.
type QuizAttemptModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	EnrollmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	QuizID       string    `gorm:"type:varchar(100);not null"`
	Score        int       `gorm:"not null"`
	AttemptedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}

// CertificateModel mirrors the 'certificates' table. The unique EnrollmentID
// index enforces one certificate per enrollment.
type CertificateModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	CertificateNumber string    `gorm:"type:varchar(64);unique;not null"`
	EnrollmentID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ApprovedBy        uuid.UUID `gorm:"type:uuid;not null"`
	QRCodePNG         []byte
	IssuedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CertificateModel) TableName() string {
	return "certificates"
}
