package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/data"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/observability"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// GetMenu renders the menu as display lines
	GetMenu(c *gin.Context)
}

type controller struct {
	service services.PizzaService
	labeler *data.Labeler
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService, labeler *data.Labeler) PizzaController {
	return &controller{service: service, labeler: labeler}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get every pizza on the menu in menu order
// @Tags pizzas
// @Accept json
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/pizzas [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve pizzas"))
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/pizzas/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	id := ctx.Param("id")
	pizzaId, err := strconv.Atoi(id)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid pizza ID format",
			map[string]interface{}{"id": id}))
		return
	}

	pizza, err := c.service.GetPizzaByID(ctx.Request.Context(), pizzaId)
	if err != nil {
		if errors.Is(err, services.ErrPizzaNotFound) {
			observability.RecordPizzaLookup(observability.LookupNotFound)
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "Pizza not found",
				map[string]interface{}{"id": pizzaId}))
			return
		}
		observability.RecordPizzaLookup(observability.LookupError)
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve pizza"))
		return
	}
	observability.RecordPizzaLookup(observability.LookupFound)
	ctx.JSON(http.StatusOK, pizza)
}

// GetMenu godoc
// @Summary Get the printable menu
// @Description Get one display line per pizza, in menu order
// @Tags pizzas
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/menu [get]
func (c *controller) GetMenu(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve menu"))
		return
	}
	ctx.JSON(http.StatusOK, c.labeler.Lines(pizzas))
}
