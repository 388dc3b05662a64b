package impl

import (
	"context"
	"strings"
	"testing"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/infra/persistence/memory"
	"agency/internal/infra/qrcode"
	"agency/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLearningService(store *memory.Store) usecase.LearningUsecase {
	return NewLearningService(LearningServiceParams{
		LearningRepo: store,
		AccountRepo:  store,
		QRCodes:      qrcode.NewQRCodeService(128, "M"),
	})
}

func seedAccount(t *testing.T, store *memory.Store, role entity.Role) *entity.Account {
	t.Helper()

	account := &entity.Account{
		ID:    uuid.New(),
		Role:  role,
		Name:  "Account " + uuid.NewString()[:8],
		Email: uuid.NewString()[:8] + "@example.com",
	}
	require.NoError(t, store.CreateAccount(context.Background(), account))

	return account
}

func firstCourse(t *testing.T, store *memory.Store) *entity.Course {
	t.Helper()

	courses, err := store.ListCourses(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, courses)

	return courses[0]
}

func TestLearningService_Enroll(t *testing.T) {
	store := newTestStore()
	svc := newLearningService(store)
	ctx := context.Background()
	course := firstCourse(t, store)
	studentID := uuid.New()

	enrollment, err := svc.Enroll(ctx, studentID, course.ID)
	require.NoError(t, err)
	assert.Zero(t, enrollment.Progress)

	// One enrollment per (student, course).
	_, err = svc.Enroll(ctx, studentID, course.ID)
	require.Error(t, err)

	_, err = svc.Enroll(ctx, studentID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestLearningService_SetProgress_Range(t *testing.T) {
	store := newTestStore()
	svc := newLearningService(store)
	ctx := context.Background()

	enrollment, err := svc.Enroll(ctx, uuid.New(), firstCourse(t, store).ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetProgress(ctx, enrollment.ID, -1), domainerrors.ErrInvalidProgress)
	assert.ErrorIs(t, svc.SetProgress(ctx, enrollment.ID, 101), domainerrors.ErrInvalidProgress)

	require.NoError(t, svc.SetProgress(ctx, enrollment.ID, 100))

	enrollments, err := svc.ListEnrollments(ctx, enrollment.StudentID)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, 100, enrollments[0].Progress)
}

func TestLearningService_CompleteLesson_Idempotent(t *testing.T) {
	store := newTestStore()
	svc := newLearningService(store)
	ctx := context.Background()

	enrollment, err := svc.Enroll(ctx, uuid.New(), firstCourse(t, store).ID)
	require.NoError(t, err)

	require.NoError(t, svc.CompleteLesson(ctx, enrollment.ID, "intro"))
	require.NoError(t, svc.CompleteLesson(ctx, enrollment.ID, "intro"))
	require.NoError(t, svc.CompleteLesson(ctx, enrollment.ID, "layouts"))

	records, err := svc.ListLessonProgress(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLearningService_RecordQuizAttempt_AppendOnly(t *testing.T) {
	store := newTestStore()
	svc := newLearningService(store)
	ctx := context.Background()

	enrollment, err := svc.Enroll(ctx, uuid.New(), firstCourse(t, store).ID)
	require.NoError(t, err)

	for _, score := range []int{40, 90} {
		_, err := svc.RecordQuizAttempt(ctx, enrollment.ID, "final", score)
		require.NoError(t, err)
	}

	attempts, err := svc.ListQuizAttempts(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.Len(t, attempts, 2)
}

func TestLearningService_ApproveCertificate(t *testing.T) {
	store := newTestStore()
	svc := newLearningService(store)
	ctx := context.Background()
	employee := seedAccount(t, store, entity.RoleEmployee)

	enrollment, err := svc.Enroll(ctx, uuid.New(), firstCourse(t, store).ID)
	require.NoError(t, err)

	cert, err := svc.ApproveCertificate(ctx, enrollment.ID, employee.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cert.CertificateNumber, "CERT-"))
	assert.Equal(t, employee.ID, cert.ApprovedBy)
	assert.NotEmpty(t, cert.QRCodePNG)

	// One certificate per enrollment.
	_, err = svc.ApproveCertificate(ctx, enrollment.ID, employee.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCertificateExists)

	verified, err := svc.VerifyCertificate(ctx, cert.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, verified.ID)

	_, err = svc.VerifyCertificate(ctx, "CERT-0-DEADBEEF")
	require.Error(t, err)
}

func TestLearningService_ApproveCertificate_StaffOnly(t *testing.T) {
	store := newTestStore()
	svc := newLearningService(store)
	ctx := context.Background()
	client := seedAccount(t, store, entity.RoleClient)

	enrollment, err := svc.Enroll(ctx, uuid.New(), firstCourse(t, store).ID)
	require.NoError(t, err)

	_, err = svc.ApproveCertificate(ctx, enrollment.ID, client.ID)
	require.Error(t, err)

	_, err = svc.ApproveCertificate(ctx, enrollment.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
