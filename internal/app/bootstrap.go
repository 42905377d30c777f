package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"careercraft/internal/config"
	"careercraft/internal/database/migration"
	"careercraft/internal/delivery/http/middleware"
	"careercraft/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		BodyLimit: int(c.Config.Upload.MaxFileSize) + (1 << 20),
	})

	registerGlobalMiddleware(f, c.Logger)
	routes.NewRegistry(c.DB, c.Cache).Register(f)
	routes.RegisterV1(f.Group("/api/v1"), c.Config, c.DB, c.Cache, c.Mailer, c.Provider, c.Hub, c.Logger)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: "migrations"}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
