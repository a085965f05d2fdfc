package usecase

import (
	"context"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// TransactionUseCase defines the transaction ledger operations.
// Ownership always comes from the authenticated identity, never from the payload.
type TransactionUseCase interface {
	// ListCurrentMonth returns the user's transactions dated within the
	// server's current calendar month, inclusive of both month boundaries
	ListCurrentMonth(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// Create persists a new transaction owned by userID
	Create(ctx context.Context, userID uint64, fields entity.TransactionFields) (*entity.Transaction, error)

	// Update overwrites a transaction the user owns
	// (ErrTransactionNotFound / ErrForbidden otherwise)
	Update(ctx context.Context, userID, id uint64, fields entity.TransactionFields) (*entity.Transaction, error)

	// Delete removes a transaction the user owns
	// (ErrTransactionNotFound / ErrForbidden otherwise)
	Delete(ctx context.Context, userID, id uint64) error
}
