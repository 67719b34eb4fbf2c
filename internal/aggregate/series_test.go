package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/service"
)

func TestChartSeries_AscendingRegardlessOfInput(t *testing.T) {
	txs := []service.Transaction{
		tx(service.TransactionTypeExpense, "1", "", "2024-03-02"),
		tx(service.TransactionTypeExpense, "1", "", "2023-11-20"),
		tx(service.TransactionTypeIncome, "1", "", "2024-01-15"),
		tx(service.TransactionTypeIncome, "1", "", "2023-12-01"),
		tx(service.TransactionTypeIncome, "1", "", "2024-10-01"),
	}

	for i := 0; i < 10; i++ {
		series := ChartSeries(GroupByMonth(txs))

		keys := make([]string, len(series))
		for j, point := range series {
			keys[j] = point.Key
		}
		assert.Equal(t, []string{"2023-11", "2023-12", "2024-01", "2024-03", "2024-10"}, keys)
	}
}

func TestChartSeries_CarriesTotalsAndLabels(t *testing.T) {
	series := ChartSeries(GroupByMonth(exampleTransactions()))

	require.Len(t, series, 2)
	assert.Equal(t, "Jan 2024", series[0].Label)
	assertDecimal(t, "800", series[0].Balance)
	assert.Equal(t, "Feb 2024", series[1].Label)
	assertDecimal(t, "-50", series[1].Balance)
	assert.True(t, series[0].Month.Before(series[1].Month))
}

func TestMonths_NewestFirst(t *testing.T) {
	months := Months(GroupByMonth(exampleTransactions()))

	require.Len(t, months, 2)
	assert.Equal(t, "2024-02", months[0].Key)
	assert.Equal(t, "2024-01", months[1].Key)
	assert.Len(t, months[1].Transactions, 2)
}

func TestCategorySeries_OrderedByAmountThenLabel(t *testing.T) {
	txs := []service.Transaction{
		tx(service.TransactionTypeExpense, "10", "rent", "2024-01-01"),
		tx(service.TransactionTypeExpense, "40", "food", "2024-01-01"),
		tx(service.TransactionTypeExpense, "10", "bills", "2024-01-01"),
	}

	points := CategorySeries(ExpensesByCategory(txs))

	require.Len(t, points, 3)
	assert.Equal(t, "food", points[0].Category)
	assert.Equal(t, "bills", points[1].Category)
	assert.Equal(t, "rent", points[2].Category)
	assertDecimal(t, "40", points[0].Amount)
}

func TestSummarize(t *testing.T) {
	summary := Summarize(exampleTransactions())

	assertDecimal(t, "750", summary.Annual.Balance)
	require.Len(t, summary.Months, 2)
	require.Len(t, summary.Series, 2)
	require.Len(t, summary.Categories, 1)
	assert.Equal(t, "food", summary.Categories[0].Category)
	assertDecimal(t, "250", summary.Categories[0].Amount)
}
