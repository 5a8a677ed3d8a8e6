package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/data"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"pgregory.net/rapid"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Every pooled connection to :memory: would open a separate empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Pizza{})
	require.NoError(t, err)

	// Insert in reverse to prove ordering does not depend on insertion order
	pizzas := data.Pizzas()
	for i := len(pizzas) - 1; i >= 0; i-- {
		require.NoError(t, db.Create(&pizzas[i]).Error)
	}

	return db
}

func testServices(t *testing.T) map[string]PizzaService {
	return map[string]PizzaService{
		"gorm":   NewPizzaService(setupTestDB(t)),
		"static": NewStaticPizzaService(),
	}
}

func TestGetAllPizzas(t *testing.T) {
	for name, service := range testServices(t) {
		t.Run(name, func(t *testing.T) {
			pizzas, err := service.GetAllPizzas(context.Background())

			require.NoError(t, err)
			assert.Equal(t, data.Pizzas(), pizzas)
		})
	}
}

func TestGetPizzaByID(t *testing.T) {
	for name, service := range testServices(t) {
		t.Run(name+"/should return new york pizza for id 3", func(t *testing.T) {
			pizza, err := service.GetPizzaByID(context.Background(), 3)

			require.NoError(t, err)
			assert.Equal(t, data.Pizzas()[2], pizza)
		})

		t.Run(name+"/should return not found for unknown id", func(t *testing.T) {
			_, err := service.GetPizzaByID(context.Background(), 99)

			assert.ErrorIs(t, err, ErrPizzaNotFound)
		})
	}
}

func TestGetPizzaByIDProperty(t *testing.T) {
	service := NewPizzaService(setupTestDB(t))

	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.IntRange(-10, 20).Draw(rt, "id")

		pizza, err := service.GetPizzaByID(context.Background(), id)

		if id >= 1 && id <= 4 {
			if err != nil {
				rt.Fatalf("expected pizza %d, got error: %v", id, err)
			}
			if pizza.ID != id {
				rt.Fatalf("expected id %d, got %d", id, pizza.ID)
			}
			return
		}
		if err == nil {
			rt.Fatalf("expected not found for id %d, got %+v", id, pizza)
		}
	})
}

func TestGetAllPizzasClosedDatabase(t *testing.T) {
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = NewPizzaService(db).GetAllPizzas(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPizzaNotFound)
}
