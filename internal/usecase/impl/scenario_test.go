package impl

import (
	"context"
	"testing"

	"agency/internal/domain/entity"
	"agency/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClientJourney walks one customer through the whole product: signup,
// a discounted order, payment and invoicing, project delivery with chat,
// then the learning track up to a verified certificate.
func TestClientJourney(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	accounts := NewAccountService(AccountServiceParams{
		AccountRepo: store,
		SessionRepo: store,
		Hasher:      newTestHasher(),
		Tokens:      newTestTokens(t),
	})
	mailer := &recordingMailer{}
	orders := newOrderService(t, store, mailer)
	projects := newProjectService(store)
	chats := NewChatService(ChatServiceParams{
		ChatRepo:    store,
		ProjectRepo: store,
		TxManager:   store,
	})
	learning := newLearningService(store)

	// Sara signs up twice: once as a client, once as a student.
	client, err := accounts.Register(ctx, usecase.RegisterInput{
		Role:     entity.RoleClient,
		Name:     "Sara",
		Email:    "sara@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	student, err := accounts.Register(ctx, usecase.RegisterInput{
		Role:     entity.RoleStudent,
		Name:     "Sara",
		Email:    "sara@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	employee, err := accounts.Register(ctx, usecase.RegisterInput{
		Role:     entity.RoleEmployee,
		Name:     "Omar",
		Email:    "omar@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	login, err := accounts.Login(ctx, entity.RoleClient, "sara@example.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	// She orders a landing page with the welcome discount.
	landing := seededService(t, store, "Landing Page")
	order, err := orders.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName:  client.Name,
		CustomerEmail: client.Email,
		ServiceID:     landing.ID,
		DiscountCode:  "WELCOME10",
	})
	require.NoError(t, err)
	assert.Equal(t, landing.Price-landing.Price/10, order.Price)

	invoice, err := orders.RecordPayment(ctx, order.ID, "card")
	require.NoError(t, err)
	assert.Equal(t, order.Price, invoice.Amount)
	assert.Equal(t, []string{client.Email}, mailer.sent)

	// Staff open a project and walk it through the pipeline.
	project, err := projects.CreateProject(ctx, usecase.CreateProjectInput{
		ClientID: client.ID,
		Name:     "Sara's landing page",
	})
	require.NoError(t, err)
	require.NoError(t, projects.AdvanceProjectStatus(ctx, project.ID, entity.ProjectStatusDesign))
	require.NoError(t, projects.AdvanceProjectStatus(ctx, project.ID, entity.ProjectStatusDeployment))

	// Client and staff talk in the project conversation.
	conv, err := chats.GetOrCreateConversation(ctx, project.ID, client.ID)
	require.NoError(t, err)
	_, err = chats.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: conv.ID,
		SenderID:       client.ID,
		SenderRole:     entity.RoleClient,
		Body:           "Can we launch on Friday?",
	})
	require.NoError(t, err)
	_, err = chats.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: conv.ID,
		SenderID:       employee.ID,
		SenderRole:     entity.RoleEmployee,
		Body:           "Friday works, deployment is underway.",
	})
	require.NoError(t, err)

	msgs, err := chats.GetMessages(ctx, conv.ID, entity.RoleClient)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	// On the learning side she enrolls, works through the course and gets
	// a staff-approved certificate.
	courses, err := learning.ListCourses(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, courses)

	enrollment, err := learning.Enroll(ctx, student.ID, courses[0].ID)
	require.NoError(t, err)

	require.NoError(t, learning.CompleteLesson(ctx, enrollment.ID, "intro"))
	require.NoError(t, learning.CompleteLesson(ctx, enrollment.ID, "layouts"))
	_, err = learning.RecordQuizAttempt(ctx, enrollment.ID, "final", 92)
	require.NoError(t, err)
	require.NoError(t, learning.SetProgress(ctx, enrollment.ID, 100))

	cert, err := learning.ApproveCertificate(ctx, enrollment.ID, employee.ID)
	require.NoError(t, err)
	require.NotEmpty(t, cert.QRCodePNG)

	verified, err := learning.VerifyCertificate(ctx, cert.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, enrollment.ID, verified.EnrollmentID)
}
