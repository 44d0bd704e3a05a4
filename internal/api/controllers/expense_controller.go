package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlog/internal/models/request_models"
	"wanderlog/internal/models/response_models"
	"wanderlog/internal/services"
	"wanderlog/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
	}
}

// AddExpense godoc
// @Summary Add an expense
// @Description paid_by must match a user's name or Google id
// @Tags Expenses
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddExpenseRequest true "Expense payload"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /addExpense/{tripId} [post]
func (e *ExpenseController) AddExpense(c *gin.Context) {
	var req request_models.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := e.expenseService.AddExpense(c.Request.Context(), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildTripResponse(trip), "Expense added successfully")
}

// GetExpenses godoc
// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=response_models.ExpensesResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /getExpense/{tripId} [get]
func (e *ExpenseController) GetExpenses(c *gin.Context) {
	expenses, err := e.expenseService.GetExpenses(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ExpensesResponse{Expenses: expenses}, "")
}
