package transaction

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string  `json:"id" doc:"Transaction UUID"`
	Description string  `json:"description" doc:"Free-text description"`
	Amount      float64 `json:"amount" doc:"Unsigned amount; the type decides the sign"`
	Type        string  `json:"type" enum:"income,expense" doc:"Transaction type"`
	Category    string  `json:"category" doc:"Free-text category label"`
	Date        string  `json:"date" format:"date" doc:"Calendar date (YYYY-MM-DD)"`
}

// TransactionBody is the request body for creating or replacing a transaction.
type TransactionBody struct {
	Description string  `json:"description" doc:"Free-text description"`
	Amount      float64 `json:"amount" doc:"Unsigned amount; the type decides the sign"`
	Type        string  `json:"type" enum:"income,expense" doc:"Transaction type"`
	Category    string  `json:"category" doc:"Free-text category label"`
	Date        string  `json:"date" doc:"Calendar date (YYYY-MM-DD); an RFC3339 timestamp is truncated to its date"`
}

// parseTransactionBody converts the API body into a service transaction.
func parseTransactionBody(body TransactionBody) (service.Transaction, error) {
	if body.Amount < 0 {
		return service.Transaction{}, huma.Error400BadRequest("invalid amount: must not be negative")
	}

	date, err := parseDate(body.Date)
	if err != nil {
		return service.Transaction{}, huma.Error400BadRequest("invalid date", err)
	}

	return service.Transaction{
		Description: body.Description,
		Amount:      decimal.NewFromFloat(body.Amount),
		Type:        service.TransactionType(body.Type),
		Category:    body.Category,
		Date:        date,
	}, nil
}

// parseDate keeps only the calendar date of value.
func parseDate(value string) (time.Time, error) {
	if date, err := time.Parse(time.DateOnly, value); err == nil {
		return date, nil
	}
	if _, err := time.Parse(time.RFC3339, value); err == nil {
		return time.Parse(time.DateOnly, value[:len(time.DateOnly)])
	}
	return time.Time{}, fmt.Errorf("date %q is neither YYYY-MM-DD nor RFC3339", value)
}

func parseID(value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.Error400BadRequest("invalid id", err)
	}
	return id, nil
}

func toResponse(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Description: tx.Description,
		Amount:      tx.Amount.InexactFloat64(),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Date:        tx.Date.Format(time.DateOnly),
	}
}

// serviceError maps validation failures to 400 and everything else to 500.
func serviceError(message string, err error) error {
	if errors.Is(err, service.ErrInvalidTransaction) {
		return huma.NewError(http.StatusBadRequest, err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, message, err)
}
