package routes

import (
	"log"

	"careercraft/internal/config"
	"careercraft/internal/database"
	v1 "careercraft/internal/delivery/http/routes/v1"
	"careercraft/internal/infrastructure/cache"
	"careercraft/internal/infrastructure/jobapi"
	"careercraft/internal/infrastructure/mailer"
	"careercraft/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, mail mailer.Mailer, provider jobapi.Provider, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, v1.Deps{
		Config:   cfg,
		DB:       db,
		Cache:    redis,
		Mailer:   mail,
		Provider: provider,
		Hub:      hub,
		Logger:   logger,
	})
}
