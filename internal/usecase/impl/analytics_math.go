package impl

import (
	"math"
	"sort"
	"time"

	"agency/internal/domain/entity"
)

// monthKey identifies one calendar month without December/January ambiguity.
type monthKey struct {
	year  int
	month time.Month
}

// monthBuckets builds n trailing calendar-month buckets ending at the month
// of now, oldest first, all values zeroed. Months with no data stay present.
func monthBuckets(now time.Time, n int) []entity.MonthPoint {
	buckets := make([]entity.MonthPoint, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := n - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		buckets = append(buckets, entity.MonthPoint{
			Year:  m.Year(),
			Month: int(m.Month()),
			Label: m.Format("Jan 2006"),
		})
	}

	return buckets
}

func bucketIndex(buckets []entity.MonthPoint) map[monthKey]int {
	idx := make(map[monthKey]int, len(buckets))
	for i, b := range buckets {
		idx[monthKey{year: b.Year, month: time.Month(b.Month)}] = i
	}

	return idx
}

// revenueByMonth sums paid order prices into trailing month buckets.
func revenueByMonth(orders []*entity.Order, now time.Time, months int) []entity.MonthPoint {
	buckets := monthBuckets(now, months)
	idx := bucketIndex(buckets)
	for _, o := range orders {
		if !o.Paid() {
			continue
		}
		if i, ok := idx[monthKey{year: o.CreatedAt.Year(), month: o.CreatedAt.Month()}]; ok {
			buckets[i].Value += o.Price
		}
	}

	return buckets
}

// ordersByMonth counts paid orders per trailing month bucket.
func ordersByMonth(orders []*entity.Order, now time.Time, months int) []entity.MonthPoint {
	buckets := monthBuckets(now, months)
	idx := bucketIndex(buckets)
	for _, o := range orders {
		if !o.Paid() {
			continue
		}
		if i, ok := idx[monthKey{year: o.CreatedAt.Year(), month: o.CreatedAt.Month()}]; ok {
			buckets[i].Value++
		}
	}

	return buckets
}

// clientGrowthByMonth counts client registrations per trailing month bucket.
func clientGrowthByMonth(clients []*entity.Account, now time.Time, months int) []entity.MonthPoint {
	buckets := monthBuckets(now, months)
	idx := bucketIndex(buckets)
	for _, c := range clients {
		if i, ok := idx[monthKey{year: c.CreatedAt.Year(), month: c.CreatedAt.Month()}]; ok {
			buckets[i].Value++
		}
	}

	return buckets
}

// trendWindow is the length of each trend comparison period. The trend is
// windowed on days, not calendar months, so a reading early in a month still
// reflects the last 30 days of activity.
const trendWindow = 30 * 24 * time.Hour

// revenueWindows sums paid-order revenue over the trailing window ending at
// now and over the window immediately before it.
func revenueWindows(orders []*entity.Order, now time.Time) (recent, previous int64) {
	recentStart := now.Add(-trendWindow)
	previousStart := now.Add(-2 * trendWindow)
	for _, o := range orders {
		if !o.Paid() {
			continue
		}
		switch {
		case !o.CreatedAt.Before(recentStart) && o.CreatedAt.Before(now):
			recent += o.Price
		case !o.CreatedAt.Before(previousStart) && o.CreatedAt.Before(recentStart):
			previous += o.Price
		}
	}

	return recent, previous
}

// trendPercent compares the trailing window against the one before it. A rise
// from zero reads as 100, two zeroes as 0; the result is always a finite
// rounded percentage.
func trendPercent(recent, previous int64) int {
	if previous == 0 {
		if recent > 0 {
			return 100
		}

		return 0
	}

	return int(math.Round(float64(recent-previous) / float64(previous) * 100))
}

// topServicesByRevenue ranks paid orders by service name: revenue descending,
// name ascending on ties, at most limit rows.
func topServicesByRevenue(orders []*entity.Order, limit int) []entity.ServiceRevenue {
	byName := make(map[string]*entity.ServiceRevenue)
	for _, o := range orders {
		if !o.Paid() {
			continue
		}
		row, ok := byName[o.ServiceName]
		if !ok {
			row = &entity.ServiceRevenue{ServiceName: o.ServiceName}
			byName[o.ServiceName] = row
		}
		row.Orders++
		row.Revenue += o.Price
	}

	rows := make([]entity.ServiceRevenue, 0, len(byName))
	for _, row := range byName {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}

		return rows[i].ServiceName < rows[j].ServiceName
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	return rows
}

// ratioPercent reports part of total as a rounded percentage, 0 when total
// is 0.
func ratioPercent(part, total int64) int {
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(part) / float64(total) * 100))
}
