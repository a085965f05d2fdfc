package transaction

import (
	"context"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/persistence"
)

// UseCase implements the transaction ledger operations
type UseCase struct {
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewUseCase creates a new transaction use case
func NewUseCase(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// ListCurrentMonth returns the user's transactions dated within the current
// calendar month, both boundary days included
func (u *UseCase) ListCurrentMonth(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	period := entity.PeriodOf(u.timeProvider.Now())
	return u.transactionRepo.ListByUserAndDateRange(ctx, userID, period.Start(), period.End())
}

// Create persists a new transaction. The owner is always userID; any
// ownership hint in the payload is ignored by construction.
func (u *UseCase) Create(ctx context.Context, userID uint64, fields entity.TransactionFields) (*entity.Transaction, error) {
	transaction, err := entity.NewTransaction(userID, fields, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.transactionRepo.Create(ctx, transaction); err != nil {
		u.logger.Error("Failed to create transaction", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Transaction created", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        userID,
		"type":           string(transaction.Type),
	})

	return transaction, nil
}

// Update overwrites a transaction after the ownership check
func (u *UseCase) Update(ctx context.Context, userID, id uint64, fields entity.TransactionFields) (*entity.Transaction, error) {
	transaction, err := u.ownedTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := transaction.ApplyFields(fields, u.timeProvider); err != nil {
		return nil, err
	}

	if err := u.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	u.logger.Info("Transaction updated", map[string]any{
		"transaction_id": id,
		"user_id":        userID,
	})

	return transaction, nil
}

// Delete removes a transaction after the ownership check
func (u *UseCase) Delete(ctx context.Context, userID, id uint64) error {
	if _, err := u.ownedTransaction(ctx, userID, id); err != nil {
		return err
	}

	if err := u.transactionRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": id,
		"user_id":        userID,
	})

	return nil
}

// ownedTransaction loads a transaction and verifies userID owns it
func (u *UseCase) ownedTransaction(ctx context.Context, userID, id uint64) (*entity.Transaction, error) {
	transaction, err := u.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transaction.OwnedBy(userID) {
		u.logger.Warn("Ownership violation on transaction", map[string]any{
			"transaction_id": id,
			"owner_id":       transaction.UserID,
			"caller_id":      userID,
		})
		return nil, errs.ErrForbidden
	}

	return transaction, nil
}
