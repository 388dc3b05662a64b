package impl

import (
	"testing"
	"time"

	"agency/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBuckets(t *testing.T) {
	now := time.Date(2026, time.February, 15, 12, 0, 0, 0, time.UTC)

	buckets := monthBuckets(now, 6)
	require.Len(t, buckets, 6)

	// Oldest first, crossing the year boundary.
	assert.Equal(t, "Sep 2025", buckets[0].Label)
	assert.Equal(t, "Dec 2025", buckets[3].Label)
	assert.Equal(t, "Jan 2026", buckets[4].Label)
	assert.Equal(t, "Feb 2026", buckets[5].Label)
	for _, b := range buckets {
		assert.Zero(t, b.Value)
	}
}

func TestRevenueByMonth_OnlyPaidOrdersCount(t *testing.T) {
	now := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)
	orders := []*entity.Order{
		{Price: 1000, PaymentStatus: entity.PaymentStatusCompleted, CreatedAt: now},
		{Price: 500, PaymentStatus: entity.PaymentStatusCompleted, CreatedAt: now.AddDate(0, -1, 0)},
		{Price: 9999, PaymentStatus: entity.PaymentStatusPending, CreatedAt: now},
		// Outside the window.
		{Price: 777, PaymentStatus: entity.PaymentStatusCompleted, CreatedAt: now.AddDate(0, -7, 0)},
	}

	series := revenueByMonth(orders, now, 6)
	require.Len(t, series, 6)
	assert.Equal(t, int64(500), series[4].Value)
	assert.Equal(t, int64(1000), series[5].Value)

	counts := ordersByMonth(orders, now, 6)
	assert.Equal(t, int64(1), counts[4].Value)
	assert.Equal(t, int64(1), counts[5].Value)
}

func TestTrendPercent(t *testing.T) {
	tests := []struct {
		name             string
		recent, previous int64
		want             int
	}{
		{"growth", 150, 100, 50},
		{"decline", 100, 200, -50},
		{"full decline", 0, 100, -100},
		{"from zero", 500, 0, 100},
		{"both zero", 0, 0, 0},
		{"rounded", 4, 3, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trendPercent(tt.recent, tt.previous))
		})
	}
}

func TestRevenueWindows(t *testing.T) {
	now := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	paid := entity.PaymentStatusCompleted
	orders := []*entity.Order{
		{Price: 500, PaymentStatus: paid, CreatedAt: now.AddDate(0, 0, -5)},
		{Price: 300, PaymentStatus: paid, CreatedAt: now.AddDate(0, 0, -29)},
		{Price: 200, PaymentStatus: paid, CreatedAt: now.AddDate(0, 0, -31)},
		{Price: 900, PaymentStatus: entity.PaymentStatusPending, CreatedAt: now.AddDate(0, 0, -5)},
		// Older than both windows.
		{Price: 777, PaymentStatus: paid, CreatedAt: now.AddDate(0, 0, -61)},
	}

	recent, previous := revenueWindows(orders, now)
	assert.Equal(t, int64(800), recent)
	assert.Equal(t, int64(200), previous)
}

func TestTrendPercent_WindowedNotCalendar(t *testing.T) {
	// A sale late last month still counts toward the trailing 30 days when
	// the reading is taken early in the next month.
	now := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	orders := []*entity.Order{
		{Price: 500, PaymentStatus: entity.PaymentStatusCompleted, CreatedAt: time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)},
	}

	recent, previous := revenueWindows(orders, now)
	assert.Equal(t, 100, trendPercent(recent, previous))
}

func TestTopServicesByRevenue(t *testing.T) {
	paid := entity.PaymentStatusCompleted
	orders := []*entity.Order{
		{ServiceName: "Landing Page", Price: 25000, PaymentStatus: paid},
		{ServiceName: "Landing Page", Price: 25000, PaymentStatus: paid},
		{ServiceName: "Mobile App", Price: 200000, PaymentStatus: paid},
		{ServiceName: "Brand Identity", Price: 50000, PaymentStatus: paid},
		// Ties with Brand Identity, sorts after it by name.
		{ServiceName: "SEO Package", Price: 50000, PaymentStatus: paid},
		{ServiceName: "Ignored", Price: 999999, PaymentStatus: entity.PaymentStatusPending},
	}

	rows := topServicesByRevenue(orders, 3)
	require.Len(t, rows, 3)
	assert.Equal(t, "Mobile App", rows[0].ServiceName)
	assert.Equal(t, "Brand Identity", rows[1].ServiceName)
	assert.Equal(t, "SEO Package", rows[2].ServiceName)

	full := topServicesByRevenue(orders, 5)
	require.Len(t, full, 4)
	assert.Equal(t, "Landing Page", full[3].ServiceName)
	assert.Equal(t, int64(50000), full[3].Revenue)
	assert.Equal(t, int64(2), full[3].Orders)
}

func TestRatioPercent(t *testing.T) {
	assert.Equal(t, 0, ratioPercent(5, 0))
	assert.Equal(t, 50, ratioPercent(1, 2))
	assert.Equal(t, 33, ratioPercent(1, 3))
	assert.Equal(t, 67, ratioPercent(2, 3))
	assert.Equal(t, 100, ratioPercent(3, 3))
}
