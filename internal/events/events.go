// Package events announces changes to the transaction set to interested
// consumers, such as a dashboard that refreshes its aggregates.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Kind string

const (
	KindCreated Kind = "transaction.created"
	KindUpdated Kind = "transaction.updated"
	KindDeleted Kind = "transaction.deleted"
)

// TransactionEvent is a lightweight change notice. It carries only the ID;
// consumers re-read the record if they need it.
type TransactionEvent struct {
	Kind          Kind      `json:"kind"`
	TransactionID uuid.UUID `json:"transactionId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func NewTransactionEvent(kind Kind, id uuid.UUID) TransactionEvent {
	return TransactionEvent{
		Kind:          kind,
		TransactionID: id,
		OccurredAt:    time.Now().UTC(),
	}
}

func (e TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func TransactionEventFromJSON(data []byte) (TransactionEvent, error) {
	var event TransactionEvent
	err := json.Unmarshal(data, &event)
	return event, err
}

type Publisher interface {
	Publish(ctx context.Context, event TransactionEvent) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, TransactionEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
