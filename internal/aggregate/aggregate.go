// Package aggregate derives monthly buckets, annual totals, per-category
// expense totals and chart series from a flat list of transactions.
//
// Every function is pure and recomputes from scratch; nothing is cached
// between calls.
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// MonthKeyLayout is the layout of bucket keys, e.g. "2024-01".
const MonthKeyLayout = "2006-01"

// Totals holds summed income and expenses and their difference.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// add accumulates one transaction and recomputes the balance. Transactions of
// an unknown type leave the totals untouched.
func (t *Totals) add(tx service.Transaction) {
	switch tx.Type {
	case service.TransactionTypeIncome:
		t.Income = t.Income.Add(tx.Amount)
	case service.TransactionTypeExpense:
		t.Expenses = t.Expenses.Add(tx.Amount)
	default:
		return
	}
	t.Balance = t.Income.Sub(t.Expenses)
}

// MonthlyBucket aggregates the transactions of one calendar month.
type MonthlyBucket struct {
	Key string
	Totals
	Transactions []service.Transaction
}

// AnnualSummary aggregates every transaction it was given.
type AnnualSummary struct {
	Totals
}

// CategoryTotals maps a category label to its summed expenses.
type CategoryTotals map[string]decimal.Decimal

// MonthKey returns the bucket key of a date.
func MonthKey(date time.Time) string {
	return date.Format(MonthKeyLayout)
}

// GroupByMonth partitions txs by calendar month.
func GroupByMonth(txs []service.Transaction) map[string]*MonthlyBucket {
	buckets := make(map[string]*MonthlyBucket)
	for _, tx := range txs {
		key := MonthKey(tx.Date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &MonthlyBucket{Key: key}
			buckets[key] = bucket
		}
		bucket.add(tx)
		bucket.Transactions = append(bucket.Transactions, tx)
	}
	return buckets
}

// Annual totals txs in a single pass.
func Annual(txs []service.Transaction) AnnualSummary {
	var summary AnnualSummary
	for _, tx := range txs {
		summary.add(tx)
	}
	return summary
}

// ExpensesByCategory sums expense amounts per category label. Labels are
// compared exactly: "Food" and "food" are different categories.
func ExpensesByCategory(txs []service.Transaction) CategoryTotals {
	totals := make(CategoryTotals)
	for _, tx := range txs {
		if tx.Type != service.TransactionTypeExpense {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}

// InYear keeps the transactions dated in year. Year zero keeps everything.
func InYear(txs []service.Transaction, year int) []service.Transaction {
	if year == 0 {
		return txs
	}
	filtered := make([]service.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date.Year() == year {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}
