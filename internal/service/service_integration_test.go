//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/storagetest"
)

func TestTransactionService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStorageFromDB(storagetest.NewPostgres(t))

	delegator := operator.NewOperatorDelegator(store, 2)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	svc := NewService(store, delegator, events.NoopPublisher{}).Transaction

	before, err := svc.ListTransactions(ctx)
	require.NoError(t, err)

	created, err := svc.CreateTransaction(ctx, Transaction{
		Description: "Groceries",
		Amount:      decimal.RequireFromString("42.10"),
		Type:        TransactionTypeExpense,
		Category:    "Food",
		Date:        time.Date(2024, time.May, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	after, err := svc.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	replacement := *created
	replacement.Category = "Household"
	replaced, err := svc.ReplaceTransaction(ctx, created.ID, replacement)
	require.NoError(t, err)
	require.NotNil(t, replaced)
	assert.Equal(t, "Household", replaced.Category)

	afterEdit, err := svc.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, afterEdit, len(after))

	require.NoError(t, svc.DeleteTransaction(ctx, created.ID))
	require.NoError(t, svc.DeleteTransaction(ctx, created.ID))

	afterDelete, err := svc.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, afterDelete, len(before))

	missing, err := svc.ReplaceTransaction(ctx, created.ID, replacement)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
