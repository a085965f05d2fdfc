package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// transactionDateLayout is the wire format for transaction dates
const transactionDateLayout = "2006-01-02"

// TransactionRequest is the request body for creating or updating a transaction
type TransactionRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category"`
	Date        string          `json:"date" binding:"required"`
	Type        string          `json:"type" binding:"required"`
}

// ParseDate parses the wire-format date
func (r TransactionRequest) ParseDate() (time.Time, error) {
	return time.Parse(transactionDateLayout, r.Date)
}

// TransactionResponse is the wire representation of a ledger entry
type TransactionResponse struct {
	ID          uint64          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
}

// NewTransactionResponse converts a transaction entity to its wire form
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      tx.Amount,
		Category:    tx.Category,
		Date:        tx.Date.Format(transactionDateLayout),
		Type:        string(tx.Type),
	}
}

// NewTransactionListResponse converts a slice of transactions to wire form
func NewTransactionListResponse(txs []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransactionResponse(tx))
	}
	return out
}
