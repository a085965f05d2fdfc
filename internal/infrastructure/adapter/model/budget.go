package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents the database model for monthly budgets.
// The composite unique index enforces one budget per user per period.
type Budget struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	UserID         uint64          `gorm:"not null;uniqueIndex:idx_budgets_user_period"`
	Period         string          `gorm:"not null;size:7;uniqueIndex:idx_budgets_user_period"`
	MonthlyIncome  decimal.Decimal `gorm:"not null;type:numeric(10,2)"`
	SavingGoal     decimal.Decimal `gorm:"not null;type:numeric(10,2)"`
	TargetExpenses decimal.Decimal `gorm:"not null;type:numeric(10,2)"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	User             User                    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	CategoryExpenses []BudgetCategoryExpense `gorm:"foreignKey:BudgetID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}

// BudgetCategoryExpense represents a single category allocation inside a budget
type BudgetCategoryExpense struct {
	ID       uint64          `gorm:"primaryKey;autoIncrement"`
	BudgetID uint64          `gorm:"not null;uniqueIndex:idx_budget_category"`
	Category string          `gorm:"not null;size:100;uniqueIndex:idx_budget_category"`
	Amount   decimal.Decimal `gorm:"not null;type:numeric(10,2)"`
}

// TableName specifies the table name for BudgetCategoryExpense
func (BudgetCategoryExpense) TableName() string {
	return "budget_category_expenses"
}
