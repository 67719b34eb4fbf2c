package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/aggregate"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type Totals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

type Month struct {
	Key              string   `json:"key" doc:"Month key (YYYY-MM)"`
	Totals           Totals   `json:"totals"`
	TransactionCount int      `json:"transactionCount"`
	TransactionIDs   []string `json:"transactionIds"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type ChartPoint struct {
	Key   string `json:"key" doc:"Month key (YYYY-MM)"`
	Label string `json:"label" doc:"Display label, e.g. Jan 2024"`
	Totals
}

// SummaryResponse is every aggregate derived from the selected transactions.
type SummaryResponse struct {
	Year       int             `json:"year,omitempty" doc:"Year filter, omitted when every year is included"`
	Annual     Totals          `json:"annual"`
	Months     []Month         `json:"months" doc:"Monthly buckets, newest first"`
	Categories []CategoryTotal `json:"categories" doc:"Expense totals per category, largest first"`
	Series     []ChartPoint    `json:"series" doc:"Monthly chart series, oldest first"`
}

type GetSummaryInput struct {
	Year int `query:"year" minimum:"0" maximum:"9999" doc:"Restrict to one calendar year; 0 or absent means all"`
}

type GetSummaryOutput struct {
	Body SummaryResponse
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context) ([]service.Transaction, error)
}

// GetSummaryHandler handles GET /summary.
type GetSummaryHandler struct {
	TransactionService transactionLister
}

func NewGetSummaryHandler(svc transactionLister) *GetSummaryHandler {
	return &GetSummaryHandler{TransactionService: svc}
}

func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/summary",
		Summary:     "Get summary",
		Description: "Returns annual totals, monthly buckets, category expense totals and the monthly chart series.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	transactions, err := h.TransactionService.ListTransactions(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}
	if input.Year > 0 {
		transactions = aggregate.InYear(transactions, input.Year)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summarizeMs")
	}
	summary := aggregate.Summarize(transactions)
	if stopTimer != nil {
		stopTimer()
		logData.AddData("transactionCount", len(transactions))
	}

	return &GetSummaryOutput{Body: toResponse(input.Year, summary)}, nil
}

func toResponse(year int, summary aggregate.Summary) SummaryResponse {
	resp := SummaryResponse{
		Year:       year,
		Annual:     toTotals(summary.Annual.Totals),
		Months:     make([]Month, len(summary.Months)),
		Categories: make([]CategoryTotal, len(summary.Categories)),
		Series:     make([]ChartPoint, len(summary.Series)),
	}

	for i, bucket := range summary.Months {
		ids := make([]string, len(bucket.Transactions))
		for j, tx := range bucket.Transactions {
			ids[j] = tx.ID.String()
		}
		resp.Months[i] = Month{
			Key:              bucket.Key,
			Totals:           toTotals(bucket.Totals),
			TransactionCount: len(bucket.Transactions),
			TransactionIDs:   ids,
		}
	}
	for i, point := range summary.Categories {
		resp.Categories[i] = CategoryTotal{Category: point.Category, Amount: amount(point.Amount)}
	}
	for i, point := range summary.Series {
		resp.Series[i] = ChartPoint{Key: point.Key, Label: point.Label, Totals: toTotals(point.Totals)}
	}

	return resp
}

func toTotals(t aggregate.Totals) Totals {
	return Totals{
		Income:   amount(t.Income),
		Expenses: amount(t.Expenses),
		Balance:  amount(t.Balance),
	}
}

func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
