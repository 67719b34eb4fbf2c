package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	Create *sqlconfig.TransactionCreate

	// Result is the stored row, including its assigned ID.
	Result *sqlconfig.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Insert(ctx, t.Create)
	if err != nil {
		return err
	}

	t.Result = row
	return nil
}
