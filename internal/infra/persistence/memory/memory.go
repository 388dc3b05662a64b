// Package memory implements every repository interface over plain in-process
// maps. It is the development and test backend: no persistence across
// restarts, safe only as a single-process fallback. The store is an
// injectable struct constructed fresh per process or test, never a
// module-level singleton.
package memory

import (
	"context"
	"sync"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"
	"agency/internal/infra/persistence/seed"

	"github.com/google/uuid"
)

// Store owns one map per entity family. All maps are guarded by a single
// mutex; operations copy entities on the way in and out so callers never
// share memory with the store.
type Store struct {
	mu sync.RWMutex

	orders        map[uuid.UUID]*entity.Order
	services      map[uuid.UUID]*entity.Service
	discountCodes map[uuid.UUID]*entity.DiscountCode
	invoices      map[uuid.UUID]*entity.Invoice
	accounts      map[uuid.UUID]*entity.Account
	sessions      map[uuid.UUID]*entity.Session
	projects      map[uuid.UUID]*entity.Project
	tasks         map[uuid.UUID]*entity.EmployeeTask
	modRequests   map[uuid.UUID]*entity.ModificationRequest
	featRequests  map[uuid.UUID]*entity.FeatureRequest
	conversations map[uuid.UUID]*entity.ChatConversation
	messages      map[uuid.UUID]*entity.ChatMessage
	courses       map[uuid.UUID]*entity.Course
	enrollments   map[uuid.UUID]*entity.Enrollment
	lessons       map[uuid.UUID]*entity.LessonProgress
	quizzes       map[uuid.UUID]*entity.QuizAttempt
	certificates  map[uuid.UUID]*entity.Certificate
}

// New creates an empty store and installs the default catalog.
func New() *Store {
	s := &Store{
		orders:        make(map[uuid.UUID]*entity.Order),
		services:      make(map[uuid.UUID]*entity.Service),
		discountCodes: make(map[uuid.UUID]*entity.DiscountCode),
		invoices:      make(map[uuid.UUID]*entity.Invoice),
		accounts:      make(map[uuid.UUID]*entity.Account),
		sessions:      make(map[uuid.UUID]*entity.Session),
		projects:      make(map[uuid.UUID]*entity.Project),
		tasks:         make(map[uuid.UUID]*entity.EmployeeTask),
		modRequests:   make(map[uuid.UUID]*entity.ModificationRequest),
		featRequests:  make(map[uuid.UUID]*entity.FeatureRequest),
		conversations: make(map[uuid.UUID]*entity.ChatConversation),
		messages:      make(map[uuid.UUID]*entity.ChatMessage),
		courses:       make(map[uuid.UUID]*entity.Course),
		enrollments:   make(map[uuid.UUID]*entity.Enrollment),
		lessons:       make(map[uuid.UUID]*entity.LessonProgress),
		quizzes:       make(map[uuid.UUID]*entity.QuizAttempt),
		certificates:  make(map[uuid.UUID]*entity.Certificate),
	}
	_ = s.EnsureSeedData(context.Background())

	return s
}

// EnsureSeedData installs the default catalog when it is missing. Idempotent
// by natural key: calling it again never duplicates rows.
func (s *Store) EnsureSeedData(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, svc := range seed.Services() {
		if s.findServiceByNameLocked(svc.Name) == nil {
			s.services[svc.ID] = cloneService(svc)
		}
	}
	for _, code := range seed.DiscountCodes() {
		if s.findDiscountByCodeLocked(code.Code) == nil {
			s.discountCodes[code.ID] = cloneDiscountCode(code)
		}
	}
	for _, course := range seed.Courses() {
		if s.findCourseByTitleLocked(course.Title) == nil {
			s.courses[course.ID] = cloneCourse(course)
		}
	}

	return nil
}

func (s *Store) findServiceByNameLocked(name string) *entity.Service {
	for _, svc := range s.services {
		if svc.Name == name {
			return svc
		}
	}

	return nil
}

func (s *Store) findDiscountByCodeLocked(code string) *entity.DiscountCode {
	for _, d := range s.discountCodes {
		if d.Code == code {
			return d
		}
	}

	return nil
}

func (s *Store) findCourseByTitleLocked(title string) *entity.Course {
	for _, c := range s.courses {
		if c.Title == title {
			return c
		}
	}

	return nil
}

// Execute implements repository.TransactionManager as a pass-through: the
// in-memory backend has no transaction demarcation, so the two-step write
// sequences are two independent writes here.
func (s *Store) Execute(_ context.Context, fn func(repos repository.Atomic) error) error {
	return fn(s)
}

// Orders returns the store itself; in-memory repositories are not
// transaction-bound.
func (s *Store) Orders() repository.OrderRepository { return s }

// Invoices returns the store itself.
func (s *Store) Invoices() repository.InvoiceRepository { return s }

// Chat returns the store itself.
func (s *Store) Chat() repository.ChatRepository { return s }
