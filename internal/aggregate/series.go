package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ChartPoint is one month of a chart series.
type ChartPoint struct {
	Key   string
	Month time.Time
	Label string
	Totals
}

// CategoryPoint is one slice of a category chart.
type CategoryPoint struct {
	Category string
	Amount   decimal.Decimal
}

// ChartSeries orders buckets ascending by calendar month. Map iteration order
// is random, so the order comes from the parsed key only.
func ChartSeries(buckets map[string]*MonthlyBucket) []ChartPoint {
	points := make([]ChartPoint, 0, len(buckets))
	for key, bucket := range buckets {
		month, err := time.Parse(MonthKeyLayout, key)
		if err != nil {
			continue
		}
		points = append(points, ChartPoint{
			Key:    key,
			Month:  month,
			Label:  month.Format("Jan 2006"),
			Totals: bucket.Totals,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Month.Before(points[j].Month)
	})
	return points
}

// Months lists buckets newest first, matching the transaction list order.
func Months(buckets map[string]*MonthlyBucket) []MonthlyBucket {
	months := make([]MonthlyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		months = append(months, *bucket)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Key > months[j].Key
	})
	return months
}

// CategorySeries orders category totals by amount, largest first, breaking
// ties by label.
func CategorySeries(totals CategoryTotals) []CategoryPoint {
	points := make([]CategoryPoint, 0, len(totals))
	for category, amount := range totals {
		points = append(points, CategoryPoint{Category: category, Amount: amount})
	}
	sort.Slice(points, func(i, j int) bool {
		if cmp := points[i].Amount.Cmp(points[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return strings.Compare(points[i].Category, points[j].Category) < 0
	})
	return points
}
