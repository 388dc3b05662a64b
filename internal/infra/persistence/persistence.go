// Package persistence selects and assembles a storage backend. The choice is
// a tagged enum parsed from configuration, not an untyped string: an unknown
// backend fails fast at startup instead of silently defaulting.
package persistence

import (
	"log/slog"

	"agency/config"
	"agency/internal/domain/repository"
	"agency/internal/errors"
	"agency/internal/infra/persistence/memory"
	mongostore "agency/internal/infra/persistence/mongo"
	"agency/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Backend identifies one of the interchangeable storage implementations.
type Backend string

const (
	// BackendMemory is the process-local, mutex-guarded map store.
	BackendMemory Backend = "memory"
	// BackendPostgres is the relational store backed by GORM.
	BackendPostgres Backend = "postgres"
	// BackendMongo is the document store. It lacks chat and change requests.
	BackendMongo Backend = "mongo"
)

// ParseBackend converts the configured string into a Backend.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendMemory, BackendPostgres, BackendMongo:
		return Backend(s), nil
	}

	return "", errors.Errorf("unknown storage backend %q", s)
}

// Stores bundles every repository of the active backend. All fields are
// always non-nil; families a backend cannot serve are filled with stand-ins
// that return repository.ErrNotSupported.
type Stores struct {
	Orders   repository.OrderRepository
	Catalog  repository.CatalogRepository
	Invoices repository.InvoiceRepository
	Accounts repository.AccountRepository
	Sessions repository.SessionRepository
	Projects repository.ProjectRepository
	Tasks    repository.TaskRepository
	Requests repository.RequestRepository
	Chat     repository.ChatRepository
	Learning repository.LearningRepository
	Reports  repository.ReportRepository
	Tx       repository.TransactionManager
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the Stores bundle for the configured backend. Connections are
// opened lazily through fx lifecycle hooks, so constructing the bundle never
// blocks on the network.
func New(params Params) (*Stores, error) {
	backend, err := ParseBackend(params.Config.Storage.Backend)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendMemory:
		store := memory.New()

		return &Stores{
			Orders:   store,
			Catalog:  store,
			Invoices: store,
			Accounts: store,
			Sessions: store,
			Projects: store,
			Tasks:    store,
			Requests: store,
			Chat:     store,
			Learning: store,
			Reports:  store,
			Tx:       store,
		}, nil

	case BackendPostgres:
		db, err := postgres.New(params.Lifecycle, params.Config, params.Logger)
		if err != nil {
			return nil, err
		}

		return &Stores{
			Orders:   postgres.NewOrderRepository(db),
			Catalog:  postgres.NewCatalogRepository(db),
			Invoices: postgres.NewInvoiceRepository(db),
			Accounts: postgres.NewAccountRepository(db),
			Sessions: postgres.NewSessionRepository(db),
			Projects: postgres.NewProjectRepository(db),
			Tasks:    postgres.NewTaskRepository(db),
			Requests: postgres.NewRequestRepository(db),
			Chat:     postgres.NewChatRepository(db),
			Learning: postgres.NewLearningRepository(db),
			Reports:  postgres.NewReportRepository(db),
			Tx:       postgres.NewTransactionManager(db),
		}, nil

	case BackendMongo:
		db, err := mongostore.New(params.Lifecycle, params.Config, params.Logger)
		if err != nil {
			return nil, err
		}

		return &Stores{
			Orders:   mongostore.NewOrderRepository(db),
			Catalog:  mongostore.NewCatalogRepository(db),
			Invoices: mongostore.NewInvoiceRepository(db),
			Accounts: mongostore.NewAccountRepository(db),
			Sessions: mongostore.NewSessionRepository(db),
			Projects: mongostore.NewProjectRepository(db),
			Tasks:    mongostore.NewTaskRepository(db),
			Requests: mongostore.NewRequestRepository(),
			Chat:     mongostore.NewChatRepository(),
			Learning: mongostore.NewLearningRepository(db),
			Reports:  mongostore.NewReportRepository(db),
			Tx:       mongostore.NewTransactionManager(db),
		}, nil
	}

	return nil, errors.Errorf("unhandled storage backend %q", backend)
}

// Repository extractors for fx wiring. Use cases depend on narrow interfaces,
// never on the bundle itself.

func OrderRepositoryFrom(s *Stores) repository.OrderRepository       { return s.Orders }
func CatalogRepositoryFrom(s *Stores) repository.CatalogRepository   { return s.Catalog }
func InvoiceRepositoryFrom(s *Stores) repository.InvoiceRepository   { return s.Invoices }
func AccountRepositoryFrom(s *Stores) repository.AccountRepository   { return s.Accounts }
func SessionRepositoryFrom(s *Stores) repository.SessionRepository   { return s.Sessions }
func ProjectRepositoryFrom(s *Stores) repository.ProjectRepository   { return s.Projects }
func TaskRepositoryFrom(s *Stores) repository.TaskRepository         { return s.Tasks }
func RequestRepositoryFrom(s *Stores) repository.RequestRepository   { return s.Requests }
func ChatRepositoryFrom(s *Stores) repository.ChatRepository         { return s.Chat }
func LearningRepositoryFrom(s *Stores) repository.LearningRepository { return s.Learning }
func ReportRepositoryFrom(s *Stores) repository.ReportRepository     { return s.Reports }
func TransactionManagerFrom(s *Stores) repository.TransactionManager { return s.Tx }
