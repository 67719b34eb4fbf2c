// Package view holds the client-side mirror of the transaction list and the
// disclosure state of the monthly breakdown. Aggregates are re-derived from
// the current snapshot on every read.
package view

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/aggregate"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type State struct {
	transactions []service.Transaction
	expanded     map[string]struct{}
}

// NewState seeds the state with a fetched list, kept in the given order.
func NewState(transactions []service.Transaction) *State {
	return &State{
		transactions: append([]service.Transaction(nil), transactions...),
		expanded:     make(map[string]struct{}),
	}
}

// Transactions returns a copy of the current list.
func (s *State) Transactions() []service.Transaction {
	return append([]service.Transaction(nil), s.transactions...)
}

// Add prepends a newly created transaction. If one with the same ID is
// already present it is replaced in place instead.
func (s *State) Add(tx service.Transaction) {
	if s.Replace(tx) {
		return
	}
	s.transactions = append([]service.Transaction{tx}, s.transactions...)
}

// Replace merges tx over the entry with the same ID and reports whether one
// was found.
func (s *State) Replace(tx service.Transaction) bool {
	for i := range s.transactions {
		if s.transactions[i].ID == tx.ID {
			s.transactions[i] = tx
			return true
		}
	}
	return false
}

// Remove drops the entry with id, if any.
func (s *State) Remove(id uuid.UUID) {
	kept := s.transactions[:0]
	for _, tx := range s.transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	s.transactions = kept
}

// ToggleMonth flips the disclosure of a month key and returns the new state.
func (s *State) ToggleMonth(key string) bool {
	if _, ok := s.expanded[key]; ok {
		delete(s.expanded, key)
		return false
	}
	s.expanded[key] = struct{}{}
	return true
}

func (s *State) IsExpanded(key string) bool {
	_, ok := s.expanded[key]
	return ok
}

// Summary derives every aggregate from the current list.
func (s *State) Summary() aggregate.Summary {
	return aggregate.Summarize(s.transactions)
}
