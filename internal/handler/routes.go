package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, transactionHandler *TransactionHandler, categoryHandler *CategoryHandler, recurringHandler *RecurringHandler, analyticsHandler *AnalyticsHandler, projectionHandler *ProjectionHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.Create)
	transactions.GET("", transactionHandler.List)
	transactions.GET("/:id", transactionHandler.Get)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete)

	// Category routes
	categories := api.Group("/categories")
	categories.POST("", categoryHandler.Create)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	// Recurring transaction routes
	recurring := api.Group("/recurring")
	recurring.POST("", recurringHandler.Create)
	recurring.GET("", recurringHandler.List)
	recurring.GET("/:id", recurringHandler.Get)
	recurring.PUT("/:id", recurringHandler.Update)
	recurring.DELETE("/:id", recurringHandler.Delete)
	recurring.POST("/process", recurringHandler.Process)

	// Analytics routes
	analytics := api.Group("/analytics")
	analytics.GET("/monthly", analyticsHandler.MonthlyBalances)
	analytics.GET("/categories", analyticsHandler.CategoryBreakdown)
	analytics.GET("/summary", analyticsHandler.PeriodSummary)

	// Projection routes
	projections := api.Group("/projections")
	projections.POST("/compound-interest", projectionHandler.CompoundInterest)
}
