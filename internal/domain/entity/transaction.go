package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
)

// TransactionType classifies a ledger entry
type TransactionType string

const (
	// TypeIncome marks money coming in
	TypeIncome TransactionType = "INCOME"
	// TypeExpense marks money going out
	TypeExpense TransactionType = "EXPENSE"
)

// ParseTransactionType converts a string to a TransactionType, case-insensitively
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(TypeIncome):
		return TypeIncome, nil
	case string(TypeExpense):
		return TypeExpense, nil
	default:
		return "", errs.NewValidationError("type", "Type must be INCOME or EXPENSE")
	}
}

// Valid reports whether the type is one of the known transaction types
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a dated income or expense entry owned by a single user.
// The owner never changes after creation; the amount's sign is not constrained.
type Transaction struct {
	ID          uint64
	UserID      uint64
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Type        TransactionType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransactionFields are the caller-supplied attributes of a transaction.
// Ownership is never part of the fields; it is assigned from the
// authenticated identity.
type TransactionFields struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Type        TransactionType
}

// Validate checks the caller-supplied fields
func (f TransactionFields) Validate() error {
	if !f.Type.Valid() {
		return errs.NewValidationError("type", "Type must be INCOME or EXPENSE")
	}
	if f.Date.IsZero() {
		return errs.NewValidationError("date", "Date is required")
	}
	return nil
}

// NewTransaction creates a transaction owned by userID
func NewTransaction(userID uint64, fields TransactionFields, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrUserNotFound
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Transaction{
		UserID:      userID,
		Description: fields.Description,
		Amount:      fields.Amount,
		Category:    fields.Category,
		Date:        fields.Date,
		Type:        fields.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// OwnedBy reports whether userID owns the transaction
func (t *Transaction) OwnedBy(userID uint64) bool {
	return t.UserID == userID
}

// ApplyFields overwrites the mutable attributes; ownership is untouched
func (t *Transaction) ApplyFields(fields TransactionFields, timeProvider coreport.TimeProvider) error {
	if err := fields.Validate(); err != nil {
		return err
	}

	t.Description = fields.Description
	t.Amount = fields.Amount
	t.Category = fields.Category
	t.Date = fields.Date
	t.Type = fields.Type
	t.UpdatedAt = timeProvider.Now()
	return nil
}
