package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionType distinguishes income from expense. Amounts are stored
// unsigned, the type decides the sign during aggregation.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// ErrInvalidTransaction is returned when a record fails validation.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Date        time.Time
	CreatedAt   time.Time
}

// Validate checks the constraints of the data model.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: type must be %q or %q, got %q",
			ErrInvalidTransaction, TransactionTypeIncome, TransactionTypeExpense, t.Type)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidTransaction)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidTransaction)
	}
	return nil
}

func (t Transaction) toStorage() *sqlconfig.TransactionCreate {
	return &sqlconfig.TransactionCreate{
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Date:        calendarDate(t.Date),
	}
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Description: row.Description,
		Amount:      row.Amount,
		Type:        TransactionType(row.Type),
		Category:    row.Category,
		Date:        calendarDate(row.Date),
		CreatedAt:   row.CreatedAt,
	}
}

// calendarDate drops the time of day, keeping the date as written.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
