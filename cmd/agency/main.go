package main

import (
	"context"
	"log/slog"
	"os"

	"agency/config"
	"agency/internal/delivery"
	"agency/internal/delivery/http"
	"agency/internal/delivery/http/middleware"
	"agency/internal/delivery/http/router/handler"
	"agency/internal/domain/service"
	"agency/internal/infra/auth"
	logs "agency/internal/infra/log"
	"agency/internal/infra/mail"
	"agency/internal/infra/persistence"
	"agency/internal/infra/qrcode"
	"agency/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
			persistence.OrderRepositoryFrom,
			persistence.CatalogRepositoryFrom,
			persistence.InvoiceRepositoryFrom,
			persistence.AccountRepositoryFrom,
			persistence.SessionRepositoryFrom,
			persistence.ProjectRepositoryFrom,
			persistence.TaskRepositoryFrom,
			persistence.RequestRepositoryFrom,
			persistence.ChatRepositoryFrom,
			persistence.LearningRepositoryFrom,
			persistence.ReportRepositoryFrom,
			persistence.TransactionManagerFrom,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			newQRCodeService,
			mail.NewLogMailer,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewProjectService,
			impl.NewRequestService,
			impl.NewChatService,
			impl.NewLearningService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewProjectHandler,
			handler.NewRequestHandler,
			handler.NewChatHandler,
			handler.NewLearningHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
