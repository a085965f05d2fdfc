package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	domainerr "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	usecaseport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/usecase"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/dto"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/middleware"
)

// BudgetHandler handles budget planner HTTP requests
type BudgetHandler struct {
	budgetService usecaseport.BudgetUseCase
	logger        coreport.Logger
}

// NewBudgetHandler creates a new budget handler instance
func NewBudgetHandler(budgetService usecaseport.BudgetUseCase, logger coreport.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// Get handles GET /api/budgets
func (h *BudgetHandler) Get(c *gin.Context) {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidToken,
			Message: "Invalid token",
		})
		return
	}

	budget, err := h.budgetService.GetCurrentMonth(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// Upsert handles POST /api/budgets
func (h *BudgetHandler) Upsert(c *gin.Context) {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidToken,
			Message: "Invalid token",
		})
		return
	}

	var req dto.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	budget, err := h.budgetService.Upsert(c.Request.Context(), user.ID, entity.BudgetFigures{
		MonthlyIncome:    req.MonthlyIncome,
		SavingGoal:       req.SavingGoal,
		TargetExpenses:   req.TargetExpenses,
		CategoryExpenses: req.CategoryExpenses,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BudgetSavedResponse{
		Message: "Budget saved successfully",
		Budget:  dto.NewBudgetResponse(budget),
	})
}
