package app

import (
	"context"
	"log"
	"time"

	"careercraft/internal/config"
	"careercraft/internal/database"
	dbpostgres "careercraft/internal/database/postgres"
	"careercraft/internal/infrastructure/cache"
	"careercraft/internal/infrastructure/jobapi"
	"careercraft/internal/infrastructure/mailer"
	"careercraft/internal/infrastructure/scrape"
	"careercraft/internal/ws"
)

type Container struct {
	Config   config.Config
	Logger   *log.Logger
	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	Mailer   *mailer.SMTPMailer
	Provider jobapi.Provider
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redis,
		Hub:      hub,
		Mailer:   mailer.NewSMTPMailer(cfg.SMTP, logger),
		Provider: buildProvider(cfg.JobAPI, logger),
	}, nil
}

// buildProvider picks the listing source: Adzuna when credentials exist,
// the HTML board scraper when only a board URL is configured. With
// neither, Adzuna stays in place and reports the missing credentials as
// a structured search failure.
func buildProvider(cfg config.JobAPIConfig, logger *log.Logger) jobapi.Provider {
	if cfg.AdzunaAppID != "" && cfg.AdzunaAppKey != "" {
		return jobapi.NewAdzunaClient(cfg, logger)
	}
	if board := scrape.NewBoardProvider(cfg.BoardBaseURL, logger); board != nil {
		logger.Printf("[JobAPI] Adzuna credentials missing, using board scraper at %s", cfg.BoardBaseURL)
		return board
	}
	return jobapi.NewAdzunaClient(cfg, logger)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
