package data_test

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/data"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/mocks"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestPizzaDataIsCorrect(t *testing.T) {
	pizzas := data.Pizzas()

	matchSnapshot(t, "pizzas.golden.json", pizzas)
	require.Len(t, pizzas, 4)

	names := make([]string, 0, len(pizzas))
	for _, p := range pizzas {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"Chicago Pizza",
		"Neapolitan Pizza",
		"New York Pizza",
		"Sicilian Pizza",
	}, names)
}

func TestPizzaHasProperties(t *testing.T) {
	for i, p := range data.Pizzas() {
		t.Run(fmt.Sprintf("Pizza[%d] should have properties (id, name, image, desc, price)", i), func(t *testing.T) {
			raw, err := json.Marshal(p)
			require.NoError(t, err)

			var fields map[string]any
			require.NoError(t, json.Unmarshal(raw, &fields))

			keys := make([]string, 0, len(fields))
			for k := range fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			assert.Equal(t, []string{"desc", "id", "image", "name", "price"}, keys)
		})
	}
}

func TestPizzaDataHasNewYorkPizza(t *testing.T) {
	newYorkPizza := models.Pizza{
		ID:    3,
		Name:  "New York Pizza",
		Image: "/images/ny-pizza.jpg",
		Desc:  "New York-style pizza has slices that are large and wide with a thin crust that is foldable yet crispy. It is traditionally topped with tomato sauce and mozzarella cheese.",
		Price: 8,
	}

	assert.Equal(t, newYorkPizza, data.Pizzas()[2])
}

func TestPizzaReturnsNewYorkLast(t *testing.T) {
	pizzas := data.Pizzas()
	pizza := mocks.NewFn[models.Pizza, string]().MockImplementation(func(p ...models.Pizza) string {
		return p[0].Name
	})

	pizza.Call(pizzas[0])
	pizza.Call(pizzas[1])
	pizza.Call(pizzas[2])

	pizza.AssertLastReturnedWith(t, "New York Pizza")
	pizza.AssertCalledTimes(t, 3)
}

func TestPizzasReturnsIndependentCopies(t *testing.T) {
	first := data.Pizzas()
	first[0].Name = "Pineapple Pizza"

	second := data.Pizzas()
	require.Len(t, second, 4)
	assert.Equal(t, "Chicago Pizza", second[0].Name)
	assert.Equal(t, "Neapolitan Pizza", second[1].Name)
}

func TestPizzaIDsAreUnique(t *testing.T) {
	seen := map[int]bool{}
	for _, p := range data.Pizzas() {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

// matchSnapshot compares v, serialized as indented JSON, with testdata/name.
// Run with -update to rewrite the file.
func matchSnapshot(t *testing.T, name string, v any) {
	t.Helper()

	got, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)

	path := filepath.Join("testdata", name)
	if *update {
		require.NoError(t, os.WriteFile(path, append(got, '\n'), 0o644))
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "missing snapshot %s, run with -update", path)
	assert.JSONEq(t, string(want), string(got))
}
