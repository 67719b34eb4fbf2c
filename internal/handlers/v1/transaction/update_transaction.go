package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateTransactionInput is the Huma input for replacing a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body TransactionBody
}

// UpdateTransactionOutput is the Huma output for replacing a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionReplacer is the interface for replacing transactions.
type transactionReplacer interface {
	ReplaceTransaction(ctx context.Context, id uuid.UUID, transaction service.Transaction) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionReplacer
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionReplacer) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}",
		Summary:     "Replace transaction",
		Description: "Replaces every field of an existing transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	transaction, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	replaced, err := h.TransactionService.ReplaceTransaction(ctx, id, transaction)
	if err != nil {
		return nil, serviceError("failed to update transaction", err)
	}
	if replaced == nil {
		return nil, huma.Error404NotFound("transaction not found")
	}

	return &UpdateTransactionOutput{Body: toResponse(*replaced)}, nil
}
