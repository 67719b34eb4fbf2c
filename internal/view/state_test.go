package view

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/service"
)

func newTransaction(kind service.TransactionType, amount string, day int) service.Transaction {
	return service.Transaction{
		ID:       uuid.Must(uuid.NewV4()),
		Amount:   decimal.RequireFromString(amount),
		Type:     kind,
		Category: "food",
		Date:     time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestState_AddPrepends(t *testing.T) {
	existing := newTransaction(service.TransactionTypeIncome, "1000", 5)
	state := NewState([]service.Transaction{existing})

	created := newTransaction(service.TransactionTypeExpense, "200", 10)
	state.Add(created)

	txs := state.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, created.ID, txs[0].ID)
	assert.Equal(t, existing.ID, txs[1].ID)
}

func TestState_AddExistingIDMerges(t *testing.T) {
	existing := newTransaction(service.TransactionTypeIncome, "1000", 5)
	state := NewState([]service.Transaction{existing})

	again := existing
	again.Description = "salary"
	state.Add(again)

	txs := state.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, "salary", txs[0].Description)
}

func TestState_ReplaceByID(t *testing.T) {
	first := newTransaction(service.TransactionTypeIncome, "1000", 5)
	second := newTransaction(service.TransactionTypeExpense, "200", 10)
	state := NewState([]service.Transaction{first, second})

	updated := second
	updated.Amount = decimal.RequireFromString("250")
	assert.True(t, state.Replace(updated))
	assert.False(t, state.Replace(newTransaction(service.TransactionTypeExpense, "1", 1)))

	txs := state.Transactions()
	require.Len(t, txs, 2)
	assert.True(t, txs[1].Amount.Equal(decimal.RequireFromString("250")))
	assert.True(t, state.Summary().Annual.Balance.Equal(decimal.RequireFromString("750")))
}

func TestState_RemoveIsIdempotent(t *testing.T) {
	first := newTransaction(service.TransactionTypeIncome, "1000", 5)
	second := newTransaction(service.TransactionTypeExpense, "200", 10)
	state := NewState([]service.Transaction{first, second})

	state.Remove(first.ID)
	state.Remove(first.ID)

	txs := state.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, second.ID, txs[0].ID)
}

func TestState_DoesNotAliasInput(t *testing.T) {
	input := []service.Transaction{newTransaction(service.TransactionTypeIncome, "1", 1)}
	state := NewState(input)

	state.Remove(input[0].ID)

	assert.Len(t, input, 1)
	assert.NotEqual(t, uuid.Nil, input[0].ID)
	assert.Empty(t, state.Transactions())
}

func TestState_ToggleMonthIndependentOfData(t *testing.T) {
	state := NewState(nil)

	assert.False(t, state.IsExpanded("2024-01"))
	assert.True(t, state.ToggleMonth("2024-01"))
	assert.True(t, state.IsExpanded("2024-01"))

	state.Add(newTransaction(service.TransactionTypeExpense, "5", 2))
	assert.True(t, state.IsExpanded("2024-01"))

	assert.False(t, state.ToggleMonth("2024-01"))
	assert.False(t, state.IsExpanded("2024-01"))
}

func TestState_SummaryRecomputes(t *testing.T) {
	state := NewState(nil)
	assert.Empty(t, state.Summary().Months)

	income := newTransaction(service.TransactionTypeIncome, "1000", 5)
	state.Add(income)
	state.Add(newTransaction(service.TransactionTypeExpense, "200", 10))

	summary := state.Summary()
	require.Len(t, summary.Months, 1)
	assert.True(t, summary.Months[0].Balance.Equal(decimal.RequireFromString("800")))

	state.Remove(income.ID)
	assert.True(t, state.Summary().Annual.Balance.Equal(decimal.RequireFromString("-200")))
}
