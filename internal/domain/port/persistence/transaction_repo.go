package persistence

import (
	"context"
	"time"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// TransactionRepository defines the durable transaction ledger
type TransactionRepository interface {
	// Create persists a new transaction and fills in the generated ID
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by ID regardless of owner
	// (ErrTransactionNotFound if absent); the ownership check happens
	// in the use case so Forbidden and NotFound stay distinguishable
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListByUserAndDateRange returns the user's transactions with
	// from <= date <= to, in storage order
	ListByUserAndDateRange(ctx context.Context, userID uint64, from, to time.Time) ([]*entity.Transaction, error)

	// Update overwrites the transaction's mutable fields
	// (ErrTransactionNotFound if absent)
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes the transaction (ErrTransactionNotFound if absent)
	Delete(ctx context.Context, id uint64) error
}
