package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// ActionProcessor runs a write action inside a storage transaction.
// *operator.OperatorDelegator implements it.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	operator  ActionProcessor
	publisher events.Publisher
}

// NewTransactionService creates a new TransactionService. A nil publisher
// disables change events.
func NewTransactionService(store *storage.Storage, op ActionProcessor, publisher events.Publisher) *TransactionService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &TransactionService{
		storage:   store,
		operator:  op,
		publisher: publisher,
	}
}

// ListTransactions returns every transaction, newest date first.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

// CreateTransaction stores a new transaction and returns it with its assigned ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction Transaction) (*Transaction, error) {
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{Create: transaction.toStorage()}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	created := transactionFromStorage(action.Result)
	s.publish(ctx, events.KindCreated, created.ID)
	return &created, nil
}

// ReplaceTransaction overwrites every field of the transaction with the given
// ID. It returns nil, nil when no such transaction exists.
func (s *TransactionService) ReplaceTransaction(ctx context.Context, id uuid.UUID, transaction Transaction) (*Transaction, error) {
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	action := &actions.ReplaceTransaction{ID: id, Replace: transaction.toStorage()}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("replace transaction %s: %w", id, err)
	}
	if action.Result == nil {
		return nil, nil
	}

	replaced := transactionFromStorage(action.Result)
	s.publish(ctx, events.KindUpdated, replaced.ID)
	return &replaced, nil
}

// DeleteTransaction removes the transaction with the given ID. Deleting an
// absent ID succeeds without effect.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	action := &actions.DeleteTransaction{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deleted", action.Deleted)
	}
	if action.Deleted {
		s.publish(ctx, events.KindDeleted, id)
	}
	return nil
}

// publish never fails the write that triggered it.
func (s *TransactionService) publish(ctx context.Context, kind events.Kind, id uuid.UUID) {
	err := s.publisher.Publish(ctx, events.NewTransactionEvent(kind, id))
	if err == nil {
		return
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("publishError", err.Error())
	}
	logrus.WithError(err).WithFields(logrus.Fields{
		"kind":          kind,
		"transactionID": id.String(),
	}).Warn("TransactionService.publish")
}
