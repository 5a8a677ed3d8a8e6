package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/gin-pizza-menu/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-pizza-menu/internal/async"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/config"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/data"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/database"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/routes"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	pizzaService    services.PizzaService
	pizzaController controllers.PizzaController
	configuration   *config.Config
)

// @title Pizza Menu API
// @version 1.0
// @description A read-only pizza menu API
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", configuration.Host, configuration.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database while the router is being built
	dbReady := setupDatabase(ctx, configuration)

	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	labeler := data.NewLabeler()

	db, err := dbReady.Await(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("Shutdown requested before the database was ready")
		return
	}
	checkPanicErr(err)

	// Initialize services and controllers
	if db == nil {
		log.Info("Serving the static menu without a database")
		pizzaService = services.NewStaticPizzaService()
	} else {
		pizzaService = services.NewPizzaService(db)
	}
	pizzaController = controllers.NewPizzaController(pizzaService, labeler)

	router := routes.NewRouter(log.StandardLogger(), pizzaController)

	if err := serve(ctx, router); err != nil {
		log.WithError(err).Fatal("Server stopped with error")
	}
	log.Info("Server stopped")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
// LOG_LEVEL, when set, overrides the environment default
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase connects, migrates and seeds the database in the background.
// The promise resolves to nil when the memory driver is configured.
func setupDatabase(ctx context.Context, conf *config.Config) *async.Promise[*gorm.DB] {
	if conf.DBDriver == config.DriverMemory {
		return async.Resolve[*gorm.DB](nil)
	}

	return async.Run(ctx, func(ctx context.Context) (*gorm.DB, error) {
		db, err := database.InitDatabase(ctx, database.DatabaseConfig{
			Driver:   conf.DBDriver,
			Host:     conf.DBHost,
			Port:     conf.DBPort,
			User:     conf.DBUser,
			Password: conf.DBPassword,
			Name:     conf.DBName,
			SSLMode:  conf.DBSSLMode,
			Path:     conf.DBPath,
		})
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		if conf.SeedOnStart {
			if _, err := database.SeedPizzas(ctx, db, data.Pizzas()); err != nil {
				return nil, err
			}
		}
		return db, nil
	})
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully
func serve(ctx context.Context, handler http.Handler) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(configuration.ShutdownTimeout)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
