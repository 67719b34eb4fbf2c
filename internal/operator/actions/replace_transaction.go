package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type ReplaceTransaction struct {
	ID      uuid.UUID
	Replace *sqlconfig.TransactionCreate

	// Result stays nil when no row has ID.
	Result *sqlconfig.Transaction
}

func (t *ReplaceTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Update(ctx, t.ID, t.Replace)
	if err != nil {
		return err
	}

	t.Result = row
	return nil
}
