package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/data"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"gorm.io/gorm"
)

// ErrPizzaNotFound is returned when no pizza has the requested ID
var ErrPizzaNotFound = errors.New("pizza not found")

// PizzaService provides read access to the pizza menu
type PizzaService interface {
	// GetAllPizzas retrieves every pizza in menu order
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id int) (models.Pizza, error)
}

// pizzaService is the database backed implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService backed by db
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("failed to list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id int) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, fmt.Errorf("pizza %d: %w", id, ErrPizzaNotFound)
		}
		return models.Pizza{}, fmt.Errorf("failed to get pizza %d: %w", id, err)
	}
	return pizza, nil
}

// staticPizzaService serves the compiled-in menu without a database
type staticPizzaService struct{}

// NewStaticPizzaService creates a PizzaService over the static menu
func NewStaticPizzaService() PizzaService {
	return staticPizzaService{}
}

func (staticPizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	return data.Pizzas(), nil
}

func (staticPizzaService) GetPizzaByID(ctx context.Context, id int) (models.Pizza, error) {
	for _, p := range data.Pizzas() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Pizza{}, fmt.Errorf("pizza %d: %w", id, ErrPizzaNotFound)
}
