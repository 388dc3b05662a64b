// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agency/internal/delivery/http/middleware"
	"agency/internal/delivery/http/router/handler"
	"agency/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	CatalogHandler   *handler.CatalogHandler
	OrderHandler     *handler.OrderHandler
	ProjectHandler   *handler.ProjectHandler
	RequestHandler   *handler.RequestHandler
	ChatHandler      *handler.ChatHandler
	LearningHandler  *handler.LearningHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authed := p.AuthMiddleware.Authenticate
	staffOnly := p.AuthMiddleware.RequireRole(entity.RoleEmployee)
	clientOnly := p.AuthMiddleware.RequireRole(entity.RoleClient)
	studentOnly := p.AuthMiddleware.RequireRole(entity.RoleStudent)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/logout", p.AuthHandler.Logout, authed)
	}
	e.GET("/profile", p.AuthHandler.GetProfile, authed)

	// Public catalog and order placement. Ordering needs no account; a
	// customer tracks orders by email.
	e.GET("/services", p.CatalogHandler.ListServices)
	e.GET("/services/:id", p.CatalogHandler.GetService)
	e.GET("/discounts/:code", p.CatalogHandler.ValidateDiscount)
	e.POST("/orders", p.OrderHandler.CreateOrder)
	e.GET("/orders/track", p.OrderHandler.TrackOrders)
	e.GET("/orders/number/:number", p.OrderHandler.GetOrderByNumber)
	e.GET("/orders/:id", p.OrderHandler.GetOrder)
	e.POST("/orders/:id/payment", p.OrderHandler.RecordPayment)
	e.GET("/orders/:id/invoice", p.OrderHandler.GetInvoiceByOrder)

	// Public certificate verification by number.
	e.GET("/certificates/:number", p.LearningHandler.VerifyCertificate)

	// Course catalog is public; enrollment requires a student account.
	e.GET("/courses", p.LearningHandler.ListCourses)

	// Client routes
	clientGroup := e.Group("/client", authed, clientOnly)
	{
		clientGroup.GET("/projects", p.ProjectHandler.ListMyProjects)
		clientGroup.GET("/projects/:id/tasks", p.ProjectHandler.ListProjectTasks)
		clientGroup.POST("/projects/:id/modification-requests", p.RequestHandler.CreateModificationRequest)
		clientGroup.GET("/projects/:id/modification-requests", p.RequestHandler.ListModificationRequests)
		clientGroup.POST("/projects/:id/feature-requests", p.RequestHandler.CreateFeatureRequest)
		clientGroup.GET("/projects/:id/feature-requests", p.RequestHandler.ListFeatureRequests)
		clientGroup.POST("/chat/conversations", p.ChatHandler.OpenConversation)
		clientGroup.GET("/chat/conversations", p.ChatHandler.ListConversations)
		clientGroup.POST("/chat/conversations/:id/messages", p.ChatHandler.SendMessage)
		clientGroup.GET("/chat/conversations/:id/messages", p.ChatHandler.GetMessages)
	}

	// Student routes
	studentGroup := e.Group("/student", authed, studentOnly)
	{
		studentGroup.POST("/enrollments", p.LearningHandler.Enroll)
		studentGroup.GET("/enrollments", p.LearningHandler.ListMyEnrollments)
		studentGroup.POST("/enrollments/:id/lessons/:lessonID/complete", p.LearningHandler.CompleteLesson)
		studentGroup.GET("/enrollments/:id/lessons", p.LearningHandler.ListLessonProgress)
		studentGroup.POST("/enrollments/:id/quiz-attempts", p.LearningHandler.RecordQuizAttempt)
		studentGroup.GET("/enrollments/:id/quiz-attempts", p.LearningHandler.ListQuizAttempts)
	}

	// Staff back office
	adminGroup := e.Group("/admin", authed, staffOnly)
	{
		adminGroup.GET("/accounts", p.AuthHandler.ListAccounts)
		adminGroup.GET("/orders", p.OrderHandler.ListOrders)
		adminGroup.PATCH("/orders/:id/status", p.OrderHandler.UpdateOrderStatus)
		adminGroup.GET("/invoices", p.OrderHandler.ListInvoices)

		adminGroup.POST("/projects", p.ProjectHandler.CreateProject)
		adminGroup.GET("/projects", p.ProjectHandler.ListProjects)
		adminGroup.GET("/projects/:id", p.ProjectHandler.GetProject)
		adminGroup.PATCH("/projects/:id/status", p.ProjectHandler.AdvanceProjectStatus)
		adminGroup.PATCH("/projects/:id/days", p.ProjectHandler.SetDaysRemaining)
		adminGroup.GET("/projects/:id/tasks", p.ProjectHandler.ListProjectTasks)
		adminGroup.POST("/tasks", p.ProjectHandler.CreateTask)
		adminGroup.GET("/tasks", p.ProjectHandler.ListMyTasks)
		adminGroup.PATCH("/tasks/:id", p.ProjectHandler.UpdateTaskProgress)

		adminGroup.GET("/projects/:id/modification-requests", p.RequestHandler.ListModificationRequests)
		adminGroup.PATCH("/modification-requests/:id/status", p.RequestHandler.UpdateModificationRequestStatus)
		adminGroup.GET("/projects/:id/feature-requests", p.RequestHandler.ListFeatureRequests)
		adminGroup.PATCH("/feature-requests/:id/status", p.RequestHandler.UpdateFeatureRequestStatus)
		adminGroup.PATCH("/feature-requests/:id/estimate", p.RequestHandler.EstimateFeatureRequest)

		adminGroup.POST("/enrollments/:id/progress", p.LearningHandler.SetProgress)
		adminGroup.POST("/enrollments/:id/certificate", p.LearningHandler.ApproveCertificate)

		adminGroup.GET("/dashboard", p.DashboardHandler.GetDashboard)
		adminGroup.GET("/reports/productivity", p.DashboardHandler.GetProductivity)
		adminGroup.GET("/reports/financial", p.DashboardHandler.GetFinancialReport)
	}
}
