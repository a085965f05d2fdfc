package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/database"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          txModel.ID,
		UserID:      txModel.UserID,
		Description: txModel.Description,
		Amount:      txModel.Amount,
		Category:    txModel.Category,
		Date:        txModel.Date,
		Type:        entity.TransactionType(txModel.Type),
		CreatedAt:   txModel.CreatedAt,
		UpdatedAt:   txModel.UpdatedAt,
	}
}

func (r *TransactionRepository) entityToModel(tx *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Description: tx.Description,
		Amount:      tx.Amount,
		Category:    tx.Category,
		Date:        tx.Date,
		Type:        string(tx.Type),
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

// handleDatabaseError logs the failure and maps it to a domain error
func (r *TransactionRepository) handleDatabaseError(operation string, err error, txID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": txID,
		"error":          err.Error(),
	})

	return r.errorMapper.MapEntityNotFoundError(err, database.EntityTypeTransaction)
}

// Create persists a new transaction and fills in the generated ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel := r.entityToModel(transaction)

	if err := r.db.WithContext(ctx).Create(txModel).Error; err != nil {
		return r.handleDatabaseError("creating transaction", err, 0)
	}

	transaction.ID = txModel.ID
	return nil
}

// GetByID retrieves a transaction by ID regardless of owner
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var txModel model.Transaction
	if err := r.db.WithContext(ctx).First(&txModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, id)
	}

	return r.modelToEntity(&txModel), nil
}

// ListByUserAndDateRange returns the user's transactions with from <= date <= to
func (r *TransactionRepository) ListByUserAndDateRange(ctx context.Context, userID uint64, from, to time.Time) ([]*entity.Transaction, error) {
	var txModels []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Find(&txModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, 0)
	}

	transactions := make([]*entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, r.modelToEntity(&txModels[i]))
	}

	return transactions, nil
}

// Update overwrites the transaction's mutable fields
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	txModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]any{
			"description": txModel.Description,
			"amount":      txModel.Amount,
			"category":    txModel.Category,
			"date":        txModel.Date,
			"type":        txModel.Type,
			"updated_at":  txModel.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error, transaction.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

// Delete removes the transaction
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting transaction", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}
