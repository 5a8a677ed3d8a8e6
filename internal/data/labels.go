package data

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
)

// Labeler renders display text for menu entries.
// Name and Price are plain function fields so they can be swapped at runtime.
type Labeler struct {
	Name  func(name string) string
	Price func(price float64) string
}

// NewLabeler returns a Labeler with the default formats
func NewLabeler() *Labeler {
	return &Labeler{
		Name: func(name string) string {
			return fmt.Sprintf("Pizza name: %s", name)
		},
		Price: func(price float64) string {
			return fmt.Sprintf("$%.2f", price)
		},
	}
}

// Line renders a single menu line for the given pizza
func (l *Labeler) Line(p models.Pizza) string {
	return fmt.Sprintf("%s (%s)", l.Name(p.Name), l.Price(p.Price))
}

// Lines renders one line per pizza, preserving order
func (l *Labeler) Lines(pizzas []models.Pizza) []string {
	lines := make([]string, 0, len(pizzas))
	for _, p := range pizzas {
		lines = append(lines, l.Line(p))
	}
	return lines
}
