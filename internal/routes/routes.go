// Package routes wires controllers and middleware onto a gin engine.
package routes

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a gin engine with recovery, request ids, logging and metrics installed
func NewRouter(logger logrus.FieldLogger, pizzaController controllers.PizzaController) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(),
	)
	Setup(router, pizzaController)
	return router
}

// Setup defines the routes for the gin router
func Setup(router *gin.Engine, pizzaController controllers.PizzaController) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(observability.MetricsHandler()))

	// Menu routes are public and read-only
	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/pizzas", pizzaController.GetAllPizzas)
			publicApi.GET("/pizzas/:id", pizzaController.GetPizzaByID)
			publicApi.GET("/menu", pizzaController.GetMenu)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(notFoundHandler)
}

func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Route not found"))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-pizza-menu",
	})
}
