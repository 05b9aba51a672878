package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bw3sley/ignite-daily-diet-api/controllers"
	"github.com/bw3sley/ignite-daily-diet-api/middlewares"
	"github.com/bw3sley/ignite-daily-diet-api/services"
)

// SetupRouter wires the controllers and middleware onto a gin engine.
func SetupRouter(db *gorm.DB, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(logger), gin.Recovery())

	userCtrl := controllers.NewUserController(services.NewUserService(db))
	mealCtrl := controllers.NewMealController(
		services.NewMealService(db),
		services.NewSummaryService(db),
	)

	r.POST("/users", userCtrl.CreateUser)

	// Every meal route runs behind the session gate.
	meals := r.Group("/meals")
	meals.Use(middlewares.SessionMiddleware(db))
	{
		meals.POST("", mealCtrl.CreateMeal)
		meals.GET("", mealCtrl.ListMeals)
		meals.GET("/summary", mealCtrl.GetSummary)
		meals.GET("/:id", mealCtrl.GetMeal)
		meals.PUT("/:id", mealCtrl.UpdateMeal)
		meals.DELETE("/:id", mealCtrl.DeleteMeal)
	}

	return r
}
