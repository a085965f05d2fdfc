package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	domainerr "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	usecaseport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/usecase"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/dto"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler handles transaction ledger HTTP requests
type TransactionHandler struct {
	transactionService usecaseport.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionService usecaseport.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidToken,
			Message: "Invalid token",
		})
		return
	}

	transactions, err := h.transactionService.ListCurrentMonth(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidToken,
			Message: "Invalid token",
		})
		return
	}

	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	transaction, err := h.transactionService.Create(c.Request.Context(), user.ID, fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// Update handles PUT /api/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidToken,
			Message: "Invalid token",
		})
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	transaction, err := h.transactionService.Update(c.Request.Context(), user.ID, id, fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// Delete handles DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidToken,
			Message: "Invalid token",
		})
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID extracts the numeric transaction ID from the path
func (h *TransactionHandler) parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Invalid transaction ID format",
		})
		return 0, false
	}
	return id, true
}

// bindFields parses and converts the transaction request body
func (h *TransactionHandler) bindFields(c *gin.Context) (entity.TransactionFields, bool) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Invalid request format: " + err.Error(),
		})
		return entity.TransactionFields{}, false
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Date must use the yyyy-MM-dd format",
		})
		return entity.TransactionFields{}, false
	}

	txType, err := entity.ParseTransactionType(req.Type)
	if err != nil {
		respondError(c, err)
		return entity.TransactionFields{}, false
	}

	return entity.TransactionFields{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		Type:        txType,
	}, true
}
