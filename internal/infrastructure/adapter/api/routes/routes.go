package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	usecaseport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/usecase"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/handler"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authService usecaseport.AuthUseCase,
	authHandler *handler.AuthHandler,
	transactionHandler *handler.TransactionHandler,
	budgetHandler *handler.BudgetHandler,
	adminHandler *handler.AdminHandler,
	logger coreport.Logger,
) {
	authRequired := middleware.Auth(authService, logger)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.Signup)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.PUT("/profile", authRequired, authHandler.UpdateProfile)
		}

		transactionRoutes := api.Group("/transactions", authRequired)
		{
			transactionRoutes.GET("", transactionHandler.List)
			transactionRoutes.POST("", transactionHandler.Create)
			transactionRoutes.PUT("/:id", transactionHandler.Update)
			transactionRoutes.DELETE("/:id", transactionHandler.Delete)
		}

		budgetRoutes := api.Group("/budgets", authRequired)
		{
			budgetRoutes.GET("", budgetHandler.Get)
			budgetRoutes.POST("", budgetHandler.Upsert)
		}

		adminRoutes := api.Group("/admin", authRequired, middleware.RequireRole(entity.RoleAdmin))
		{
			adminRoutes.GET("/users", adminHandler.ListUsers)
			adminRoutes.DELETE("/users/:id", adminHandler.DeleteUser)
			adminRoutes.POST("/users/create-admin", adminHandler.CreateAdmin)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, corsOrigins []string) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(corsOrigins))
}
