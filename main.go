package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/tour-booking/tour-service/config"
	"github.com/Eursukkul/tour-booking/tour-service/internal/catalog"
	"github.com/Eursukkul/tour-booking/tour-service/internal/handler"
	"github.com/Eursukkul/tour-booking/tour-service/internal/middleware"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/internal/service"
	"github.com/Eursukkul/tour-booking/tour-service/pkg/database"
	"github.com/Eursukkul/tour-booking/tour-service/pkg/rabbitmq"
	"github.com/Eursukkul/tour-booking/tour-service/pkg/storage"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"
)

func main() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if err := run(config.Load(), quit); err != nil {
		log.Fatal(err)
	}
}

// run serves until quit fires. Startup and listen failures come back as
// errors so the deferred closes still run before the process exits.
func run(cfg *config.Config, quit <-chan os.Signal) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[Storage] close: %v", err)
		}
	}()

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Notifications are always logged; RabbitMQ is optional.
	notifiers := []notify.Notifier{notify.LogNotifier{}}
	if cfg.RabbitURL != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		defer publisher.Close()
		notifiers = append(notifiers, notify.NewBrokerNotifier(publisher))
	}

	app, err := service.NewApp(context.Background(), store, cat, notify.Multi(notifiers...), service.Options{})
	if err != nil {
		return fmt.Errorf("failed to restore state: %w", err)
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "tour-service", "storage": cfg.StorageDriver})
	})

	handler.RegisterRoutes(e, app)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           c.Handler(e),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Tour Service starting on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("ListenAndServe: %w", err)
	case <-quit:
	}
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	return nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "badger":
		s, err := storage.OpenBadger(cfg.BadgerPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger at %s: %w", cfg.BadgerPath, err)
		}
		log.Printf("[Storage] badger at %s", cfg.BadgerPath)
		return s, nil
	case "postgres":
		return storage.NewPostgresStore(database.NewPostgresDB(cfg.DSN())), nil
	case "memory":
		log.Println("[Storage] in-memory; state is lost on exit")
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (want badger, postgres or memory)", cfg.StorageDriver)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	log.Printf("[Catalog] loading %s", path)
	return catalog.LoadFile(path)
}
