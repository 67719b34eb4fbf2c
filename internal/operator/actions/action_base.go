package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is a unit of write work performed inside one storage transaction.
// Implementations record their outcome on themselves for the caller to read
// once Process returns.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
