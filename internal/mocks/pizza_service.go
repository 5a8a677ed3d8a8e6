package mocks

import (
	"context"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/stretchr/testify/mock"
)

// PizzaService is a mock implementation of services.PizzaService
type PizzaService struct {
	mock.Mock
}

func (m *PizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pizza), args.Error(1)
}

func (m *PizzaService) GetPizzaByID(ctx context.Context, id int) (models.Pizza, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Pizza), args.Error(1)
}
