// Package data holds the static pizza menu.
package data

import "github.com/franciscosanchezn/gin-pizza-menu/internal/models"

var pizzas = [...]models.Pizza{
	{
		ID:    1,
		Name:  "Chicago Pizza",
		Image: "/images/chicago-pizza.jpg",
		Desc:  "Chicago-style pizza is baked in a deep pan with high edges. The thick crust is layered with cheese, fillings and a chunky tomato sauce on top.",
		Price: 9,
	},
	{
		ID:    2,
		Name:  "Neapolitan Pizza",
		Image: "/images/neapolitan-pizza.jpg",
		Desc:  "Neapolitan pizza has a thin, soft crust with a puffy, charred edge. It is topped with San Marzano tomatoes, fresh mozzarella, basil and olive oil.",
		Price: 7,
	},
	{
		ID:    3,
		Name:  "New York Pizza",
		Image: "/images/ny-pizza.jpg",
		Desc:  "New York-style pizza has slices that are large and wide with a thin crust that is foldable yet crispy. It is traditionally topped with tomato sauce and mozzarella cheese.",
		Price: 8,
	},
	{
		ID:    4,
		Name:  "Sicilian Pizza",
		Image: "/images/sicilian-pizza.jpg",
		Desc:  "Sicilian pizza is baked in a rectangular sheet pan. The crust is thick and spongy and it is topped with a rich tomato sauce, onions, herbs and hard cheese.",
		Price: 9,
	},
}

// Pizzas returns the menu in its fixed order.
// Every call returns a new slice, so callers may modify the result freely.
func Pizzas() []models.Pizza {
	out := make([]models.Pizza, len(pizzas))
	copy(out, pizzas[:])
	return out
}
