// Package seed holds the canonical default catalog every backend installs on
// first boot. Seeding is idempotent by natural key (service name, discount
// code, course title): the relational backend inserts with ON CONFLICT DO
// NOTHING, the document backend upserts with $setOnInsert, the in-memory
// backend seeds once at construction.
package seed

import (
	"time"

	"agency/internal/domain/entity"

	"github.com/google/uuid"
)

// Services returns the default service catalog.
func Services() []*entity.Service {
	now := time.Now()

	return []*entity.Service{
		{
			ID:          uuid.New(),
			Name:        "Landing Page",
			Description: "Single-page marketing site with contact form",
			Category:    "web",
			Price:       25000,
			Features:    []string{"responsive design", "contact form", "basic SEO"},
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Name:        "Business Website",
			Description: "Multi-page company website with CMS",
			Category:    "web",
			Price:       60000,
			Features:    []string{"up to 10 pages", "content management", "analytics setup"},
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Name:        "E-Commerce Store",
			Description: "Online store with catalog and checkout",
			Category:    "web",
			Price:       120000,
			Features:    []string{"product catalog", "payment checkout", "order management"},
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Name:        "Mobile App",
			Description: "Cross-platform mobile application",
			Category:    "mobile",
			Price:       200000,
			Features:    []string{"iOS and Android", "push notifications", "offline mode"},
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Name:        "Brand Identity",
			Description: "Logo, color system and brand guidelines",
			Category:    "design",
			Price:       40000,
			Features:    []string{"logo design", "brand guidelines", "social media kit"},
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Name:        "SEO Package",
			Description: "Three-month search optimization program",
			Category:    "marketing",
			Price:       30000,
			Features:    []string{"keyword research", "on-page optimization", "monthly report"},
			IsActive:    true,
			CreatedAt:   now,
		},
	}
}

// DiscountCodes returns the default promotional codes.
func DiscountCodes() []*entity.DiscountCode {
	now := time.Now()
	yearEnd := time.Date(now.Year(), 12, 31, 23, 59, 59, 0, time.UTC)

	return []*entity.DiscountCode{
		{
			ID:        uuid.New(),
			Code:      "WELCOME10",
			Percent:   10,
			IsActive:  true,
			ExpiresAt: nil, // no expiry
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			Code:      "LAUNCH20",
			Percent:   20,
			IsActive:  true,
			ExpiresAt: &yearEnd,
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			Code:      "LEGACY15",
			Percent:   15,
			IsActive:  false,
			ExpiresAt: nil,
			CreatedAt: now,
		},
	}
}

// Courses returns the default course catalog.
func Courses() []*entity.Course {
	now := time.Now()

	return []*entity.Course{
		{
			ID:          uuid.New(),
			Title:       "Modern Web Development",
			Description: "HTML, CSS, JavaScript and a modern framework",
			Price:       15000,
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Title:       "UI/UX Foundations",
			Description: "Design thinking, wireframing and prototyping",
			Price:       12000,
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Title:       "Digital Marketing Essentials",
			Description: "SEO, social media and paid campaigns",
			Price:       10000,
			IsActive:    true,
			CreatedAt:   now,
		},
	}
}
