package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Committer finishes a unit of work. bob.Tx satisfies it.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Writer struct {
	tx           Committer
	Transactions sqlconfig.ITransactionTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: sqlconfig.NewTransactionsTable(tx),
	}
}

// NewWriterWithTable builds a Writer from an arbitrary committer and table,
// which lets callers substitute the storage layer in tests.
func NewWriterWithTable(tx Committer, transactions sqlconfig.ITransactionTable) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
