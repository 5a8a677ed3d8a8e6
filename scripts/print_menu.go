package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/data"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/database"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	"gopkg.in/yaml.v3"
)

// menuEntry is the YAML shape of a pizza
type menuEntry struct {
	ID    int     `yaml:"id"`
	Name  string  `yaml:"name"`
	Image string  `yaml:"image"`
	Desc  string  `yaml:"desc"`
	Price float64 `yaml:"price"`
}

func main() {
	// Parse command line flags
	format := flag.String("format", "text", "Output format (text, json or yaml)")
	dbPath := flag.String("db", "", "SQLite database to read and seed; the static menu is used when empty")
	flag.Parse()

	service := services.NewStaticPizzaService()
	if *dbPath != "" {
		db, err := database.InitDatabase(context.Background(), database.DatabaseConfig{Driver: "sqlite", Path: *dbPath, MaxRetries: 1})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		seeded, err := database.SeedPizzas(context.Background(), db, data.Pizzas())
		if err != nil {
			log.Fatal("Failed to seed database:", err)
		}
		if seeded {
			fmt.Fprintf(os.Stderr, "✓ Seeded %s with the static menu\n", *dbPath)
		}
		service = services.NewPizzaService(db)
	}

	pizzas, err := service.GetAllPizzas(context.Background())
	if err != nil {
		log.Fatal("Failed to read menu:", err)
	}

	if err := printMenu(os.Stdout, *format, pizzas); err != nil {
		log.Fatal(err)
	}
}

// printMenu writes pizzas to w in the requested format
func printMenu(w io.Writer, format string, pizzas []models.Pizza) error {
	switch format {
	case "text":
		for _, line := range data.NewLabeler().Lines(pizzas) {
			fmt.Fprintln(w, line)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pizzas)
	case "yaml":
		entries := make([]menuEntry, 0, len(pizzas))
		for _, p := range pizzas {
			entries = append(entries, menuEntry(p))
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unknown format %q (supported: text, json, yaml)", format)
	}
}
