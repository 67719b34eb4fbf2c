package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type DeleteTransaction struct {
	ID uuid.UUID

	Deleted bool
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transactions.Delete(ctx, t.ID)
	if err != nil {
		return err
	}

	t.Deleted = deleted
	return nil
}
