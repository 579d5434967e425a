package routes

import (
	"gta_clima/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
	PathBudgets  = "/budgets"
	PathOrders   = "/orders"
	PathHistory  = "/history"
)

func addLifecycleRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.ServiceRequestHandler,
	budgetHandler *handlers.BudgetHandler,
	orderHandler *handlers.OrderHandler,
	historyHandler *handlers.HistoryHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("/:request_id", requestHandler.GetRequest)
		requests.PATCH("/:request_id/visit", requestHandler.ScheduleVisit)
		requests.GET("/:request_id/budget", budgetHandler.GetBudgetByRequest)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("/:budget_id", budgetHandler.GetBudget)
		budgets.PATCH("/:budget_id/resolve", budgetHandler.ResolveBudget)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id", orderHandler.UpdateOrder)
	}

	history := rg.Group(PathHistory)
	{
		history.POST("", historyHandler.RegisterHistory)
		history.GET("/environment/:environment_id", historyHandler.ListHistoryByEnvironment)
	}
}
