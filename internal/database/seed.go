package database

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the menu schema
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Pizza{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedPizzas inserts pizzas when the table is empty and reports whether it did.
// An already seeded table is left untouched.
func SeedPizzas(ctx context.Context, db *gorm.DB, pizzas []models.Pizza) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Pizza{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count pizzas: %w", err)
	}
	if count > 0 {
		log.WithField("count", count).Info("Database already seeded with initial data")
		return false, nil
	}

	log.WithField("count", len(pizzas)).Info("Database is empty, seeding initial data")
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range pizzas {
			if err := tx.Create(&pizzas[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed pizzas: %w", err)
	}
	log.Info("Database seeded successfully")
	return true, nil
}
