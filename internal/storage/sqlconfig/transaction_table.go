package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{
	"id", "description", "amount", "type", "category", "date", "created_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable bound to exec, which may be
// the pooled database or an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key. A missing row yields nil, nil.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new transaction and returns the stored row with its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	query := psql.Insert(
		im.Into(transactionsTableName, "description", "amount", "type", "category", "date"),
		im.Values(psql.Arg(create.Description, create.Amount, create.Type, create.Category, create.Date)),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update replaces every writable column of the row with the given ID.
// A missing row yields nil, nil.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionCreate) (*Transaction, error) {
	query := psql.Update(
		um.Table(transactionsTableName),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("type").ToArg(update.Type),
		um.SetCol("category").ToArg(update.Category),
		um.SetCol("date").ToArg(update.Date),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes the row with the given ID and reports whether one existed.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// List returns every transaction, newest date first.
func (t *TransactionsTable) List(ctx context.Context) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
