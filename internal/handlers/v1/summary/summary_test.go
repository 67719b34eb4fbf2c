package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context) ([]service.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func newTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetSummaryHandler(svc).Register(api)
	return api
}

func tx(amount string, txType service.TransactionType, category string, year int, month time.Month, day int) service.Transaction {
	return service.Transaction{
		ID:       uuid.Must(uuid.NewV4()),
		Amount:   decimal.RequireFromString(amount),
		Type:     txType,
		Category: category,
		Date:     time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

func sample() []service.Transaction {
	return []service.Transaction{
		tx("50", service.TransactionTypeExpense, "Food", 2024, time.February, 3),
		tx("300", service.TransactionTypeExpense, "Housing", 2024, time.January, 10),
		tx("1000", service.TransactionTypeIncome, "Work", 2024, time.January, 5),
		tx("20", service.TransactionTypeExpense, "Food", 2023, time.December, 30),
	}
}

func TestHTTP_GetSummary_AllYears(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything).Return(sample(), nil)

	resp := newTestAPI(t, mockSvc).Get("/summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 0, body.Year)
	assert.Equal(t, Totals{Income: 1000, Expenses: 370, Balance: 630}, body.Annual)

	if assert.Len(t, body.Months, 3) {
		assert.Equal(t, "2024-02", body.Months[0].Key)
		assert.Equal(t, "2024-01", body.Months[1].Key)
		assert.Equal(t, "2023-12", body.Months[2].Key)
		assert.Equal(t, Totals{Income: 1000, Expenses: 300, Balance: 700}, body.Months[1].Totals)
		assert.Equal(t, 2, body.Months[1].TransactionCount)
	}

	if assert.Len(t, body.Series, 3) {
		assert.Equal(t, "2023-12", body.Series[0].Key)
		assert.Equal(t, "Dec 2023", body.Series[0].Label)
		assert.Equal(t, "2024-02", body.Series[2].Key)
	}

	assert.Equal(t, []CategoryTotal{
		{Category: "Housing", Amount: 300},
		{Category: "Food", Amount: 70},
	}, body.Categories)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetSummary_YearFilter(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything).Return(sample(), nil)

	resp := newTestAPI(t, mockSvc).Get("/summary?year=2023")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2023, body.Year)
	assert.Equal(t, Totals{Expenses: 20, Balance: -20}, body.Annual)
	if assert.Len(t, body.Months, 1) {
		assert.Equal(t, "2023-12", body.Months[0].Key)
	}
}

func TestHTTP_GetSummary_Empty(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything).Return([]service.Transaction{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body map[string]json.RawMessage
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.JSONEq(t, `{"income":0,"expenses":0,"balance":0}`, string(body["annual"]))
	assert.JSONEq(t, `[]`, string(body["months"]))
	assert.JSONEq(t, `[]`, string(body["categories"]))
	assert.JSONEq(t, `[]`, string(body["series"]))
	assert.NotContains(t, body, "year")
}

func TestHTTP_GetSummary_InvalidYear(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newTestAPI(t, mockSvc).Get("/summary?year=abc")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}

func TestHTTP_GetSummary_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything).Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/summary")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
