package service

import (
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage, write operator and
// event publisher.
func NewService(store *storage.Storage, op ActionProcessor, publisher events.Publisher) *Service {
	return &Service{
		Transaction: NewTransactionService(store, op, publisher),
	}
}
