package aggregate

import "github.com/carson-networks/finance-tracker/internal/service"

// Summary bundles every derived view of one transaction snapshot.
type Summary struct {
	Annual     AnnualSummary
	Months     []MonthlyBucket
	Categories []CategoryPoint
	Series     []ChartPoint
}

// Summarize derives all views of txs.
func Summarize(txs []service.Transaction) Summary {
	buckets := GroupByMonth(txs)
	return Summary{
		Annual:     Annual(txs),
		Months:     Months(buckets),
		Categories: CategorySeries(ExpensesByCategory(txs)),
		Series:     ChartSeries(buckets),
	}
}
