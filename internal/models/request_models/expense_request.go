package request_models

import "github.com/shopspring/decimal"

type AddExpenseRequest struct {
	Category string           `json:"category" binding:"required"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
	PaidBy   string           `json:"paid_by" binding:"required"`
	SplitBy  string           `json:"split_by" binding:"required"`
}
