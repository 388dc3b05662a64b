package memory

import (
	"slices"
	"time"

	"agency/internal/domain/entity"
)

// Clone helpers keep store-owned entities isolated from caller-owned ones.

func cloneOrder(o *entity.Order) *entity.Order {
	if o == nil {
		return nil
	}
	c := *o

	return &c
}

func cloneService(s *entity.Service) *entity.Service {
	if s == nil {
		return nil
	}
	c := *s
	c.Features = slices.Clone(s.Features)

	return &c
}

func cloneDiscountCode(d *entity.DiscountCode) *entity.DiscountCode {
	if d == nil {
		return nil
	}
	c := *d
	if d.ExpiresAt != nil {
		t := *d.ExpiresAt
		c.ExpiresAt = &t
	}

	return &c
}

func cloneInvoice(i *entity.Invoice) *entity.Invoice {
	if i == nil {
		return nil
	}
	c := *i

	return &c
}

func cloneAccount(a *entity.Account) *entity.Account {
	if a == nil {
		return nil
	}
	c := *a

	return &c
}

func cloneSession(s *entity.Session) *entity.Session {
	if s == nil {
		return nil
	}
	c := *s

	return &c
}

func cloneProject(p *entity.Project) *entity.Project {
	if p == nil {
		return nil
	}
	c := *p

	return &c
}

func cloneTask(t *entity.EmployeeTask) *entity.EmployeeTask {
	if t == nil {
		return nil
	}
	c := *t

	return &c
}

func cloneModificationRequest(r *entity.ModificationRequest) *entity.ModificationRequest {
	if r == nil {
		return nil
	}
	c := *r

	return &c
}

func cloneFeatureRequest(r *entity.FeatureRequest) *entity.FeatureRequest {
	if r == nil {
		return nil
	}
	c := *r

	return &c
}

func cloneConversation(conv *entity.ChatConversation) *entity.ChatConversation {
	if conv == nil {
		return nil
	}
	c := *conv
	if conv.EmployeeID != nil {
		id := *conv.EmployeeID
		c.EmployeeID = &id
	}

	return &c
}

func cloneMessage(m *entity.ChatMessage) *entity.ChatMessage {
	if m == nil {
		return nil
	}
	c := *m

	return &c
}

func cloneCourse(c *entity.Course) *entity.Course {
	if c == nil {
		return nil
	}
	cc := *c

	return &cc
}

func cloneEnrollment(e *entity.Enrollment) *entity.Enrollment {
	if e == nil {
		return nil
	}
	c := *e

	return &c
}

func cloneLessonProgress(l *entity.LessonProgress) *entity.LessonProgress {
	if l == nil {
		return nil
	}
	c := *l

	return &c
}

func cloneQuizAttempt(q *entity.QuizAttempt) *entity.QuizAttempt {
	if q == nil {
		return nil
	}
	c := *q

	return &c
}

func cloneCertificate(c *entity.Certificate) *entity.Certificate {
	if c == nil {
		return nil
	}
	cc := *c
	cc.QRCodePNG = slices.Clone(c.QRCodePNG)

	return &cc
}

// sortByTimeDesc orders a slice newest-first by the extracted timestamp.
func sortByTimeDesc[T any](items []T, at func(T) time.Time) {
	slices.SortStableFunc(items, func(a, b T) int {
		return at(b).Compare(at(a))
	})
}

// sortByTimeAsc orders a slice oldest-first by the extracted timestamp.
func sortByTimeAsc[T any](items []T, at func(T) time.Time) {
	slices.SortStableFunc(items, func(a, b T) int {
		return at(a).Compare(at(b))
	})
}
