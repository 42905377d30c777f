package routes

import (
	"context"

	"careercraft/internal/database"
	"careercraft/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Registry struct {
	health *handler.HealthHandler
}

func NewRegistry(db database.DB, cache pinger) *Registry {
	return &Registry{health: handler.NewHealthHandler(db, cache)}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
}
