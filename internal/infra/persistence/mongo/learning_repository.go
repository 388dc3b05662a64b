package mongo

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// learningRepository implements the repository.LearningRepository interface.
type learningRepository struct {
	db *mongo.Database
}

// NewLearningRepository is the constructor for learningRepository.
func NewLearningRepository(db *mongo.Database) repository.LearningRepository {
	return &learningRepository{
		db: db,
	}
}

// CreateCourse adds a course.
func (repo *learningRepository) CreateCourse(ctx context.Context, course *entity.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now()
	}

	if _, err := repo.db.Collection(collCourses).
		InsertOne(ctx, fromCourseDomain(course)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrConflict.WrapMessage("course title already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	return nil
}

// FindCourseByID retrieves a course by its id.
func (repo *learningRepository) FindCourseByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var doc courseDocument

	err := repo.db.Collection(collCourses).
		FindOne(ctx, bson.M{"_id": id.String()}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by ID")
	}

	return doc.toDomain()
}

// ListCourses retrieves the course catalog ordered by title.
func (repo *learningRepository) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	cursor, err := repo.db.Collection(collCourses).
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}
	defer cursor.Close(ctx)

	var docs []courseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode courses")
	}

	courses := make([]*entity.Course, 0, len(docs))
	for i := range docs {
		course, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// CreateEnrollment persists a student's enrollment. The compound unique index
// rejects a duplicate enrollment in the same course.
func (repo *learningRepository) CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error {
	if enrollment.ID == uuid.Nil {
		enrollment.ID = uuid.New()
	}
	now := time.Now()
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = now
	}
	if enrollment.UpdatedAt.IsZero() {
		enrollment.UpdatedAt = now
	}

	if _, err := repo.db.Collection(collEnrollments).
		InsertOne(ctx, fromEnrollmentDomain(enrollment)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrConflict.WrapMessage("student already enrolled in this course")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create enrollment")
	}

	return nil
}

// FindEnrollmentByID retrieves an enrollment by its id.
func (repo *learningRepository) FindEnrollmentByID(ctx context.Context, id uuid.UUID) (*entity.Enrollment, error) {
	var doc enrollmentDocument

	err := repo.db.Collection(collEnrollments).
		FindOne(ctx, bson.M{"_id": id.String()}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrEnrollmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find enrollment by ID")
	}

	return doc.toDomain()
}

// ListEnrollmentsByStudent retrieves a student's enrollments.
func (repo *learningRepository) ListEnrollmentsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Enrollment, error) {
	cursor, err := repo.db.Collection(collEnrollments).
		Find(ctx, bson.M{"student_id": studentID.String()},
			options.Find().SetSort(bson.D{{Key: "enrolled_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enrollments by student")
	}
	defer cursor.Close(ctx)

	var docs []enrollmentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode enrollments")
	}

	enrollments := make([]*entity.Enrollment, 0, len(docs))
	for i := range docs {
		enrollment, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	return enrollments, nil
}

// CountEnrollments reports the total number of enrollments.
func (repo *learningRepository) CountEnrollments(ctx context.Context) (int64, error) {
	count, err := repo.db.Collection(collEnrollments).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count enrollments")
	}

	return count, nil
}

// UpdateEnrollmentProgress sets the explicit 0-100 progress integer.
func (repo *learningRepository) UpdateEnrollmentProgress(ctx context.Context, id uuid.UUID, progress int) error {
	result, err := repo.db.Collection(collEnrollments).
		UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": bson.M{
			"progress":   progress,
			"updated_at": time.Now(),
		}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update enrollment progress")
	}
	if result.MatchedCount == 0 {
		return repository.ErrEnrollmentNotFound
	}

	return nil
}

// RecordLessonProgress appends a lesson completion record. Re-completing a
// lesson upserts onto the same natural key and stays a single record.
func (repo *learningRepository) RecordLessonProgress(ctx context.Context, progress *entity.LessonProgress) error {
	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	if progress.CompletedAt.IsZero() {
		progress.CompletedAt = time.Now()
	}

	doc := fromLessonProgressDomain(progress)
	filter := bson.M{"enrollment_id": doc.EnrollmentID, "lesson_id": doc.LessonID}
	update := bson.M{"$setOnInsert": doc}

	if _, err := repo.db.Collection(collLessonProgress).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record lesson progress")
	}

	return nil
}

// ListLessonProgress retrieves lesson completions for an enrollment.
func (repo *learningRepository) ListLessonProgress(ctx context.Context, enrollmentID uuid.UUID) ([]*entity.LessonProgress, error) {
	cursor, err := repo.db.Collection(collLessonProgress).
		Find(ctx, bson.M{"enrollment_id": enrollmentID.String()},
			options.Find().SetSort(bson.D{{Key: "completed_at", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lesson progress")
	}
	defer cursor.Close(ctx)

	var docs []lessonProgressDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode lesson progress")
	}

	records := make([]*entity.LessonProgress, 0, len(docs))
	for i := range docs {
		record, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
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

	if _, err := repo.db.Collection(collQuizAttempts).
		InsertOne(ctx, fromQuizAttemptDomain(attempt)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record quiz attempt")
	}

	return nil
}

// ListQuizAttempts retrieves quiz attempts for an enrollment.
func (repo *learningRepository) ListQuizAttempts(ctx context.Context, enrollmentID uuid.UUID) ([]*entity.QuizAttempt, error) {
	cursor, err := repo.db.Collection(collQuizAttempts).
		Find(ctx, bson.M{"enrollment_id": enrollmentID.String()},
			options.Find().SetSort(bson.D{{Key: "attempted_at", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quiz attempts")
	}
	defer cursor.Close(ctx)

	var docs []quizAttemptDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode quiz attempts")
	}

	attempts := make([]*entity.QuizAttempt, 0, len(docs))
	for i := range docs {
		attempt, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
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

	if _, err := repo.db.Collection(collCertificates).
		InsertOne(ctx, fromCertificateDomain(cert)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrCertificateExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create certificate")
	}

	return nil
}

// FindCertificateByEnrollment retrieves the certificate issued for an
// enrollment, if any.
func (repo *learningRepository) FindCertificateByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*entity.Certificate, error) {
	return repo.findCertificate(ctx, bson.M{"enrollment_id": enrollmentID.String()})
}

// FindCertificateByNumber retrieves a certificate by its natural key.
func (repo *learningRepository) FindCertificateByNumber(ctx context.Context, number string) (*entity.Certificate, error) {
	return repo.findCertificate(ctx, bson.M{"certificate_number": number})
}

func (repo *learningRepository) findCertificate(ctx context.Context, filter bson.M) (*entity.Certificate, error) {
	var doc certificateDocument

	err := repo.db.Collection(collCertificates).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCertificateNotFound
		}

		return nil, errors.Wrap(err, "failed to find certificate")
	}

	return doc.toDomain()
}
