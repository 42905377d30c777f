package v1

import (
	"log"

	"careercraft/internal/config"
	"careercraft/internal/database"
	"careercraft/internal/delivery/http/handler"
	"careercraft/internal/delivery/http/middleware"
	"careercraft/internal/infrastructure/cache"
	"careercraft/internal/infrastructure/extract"
	"careercraft/internal/infrastructure/jobapi"
	"careercraft/internal/infrastructure/mailer"
	"careercraft/internal/pkg/jwt"
	"careercraft/internal/repository"
	"careercraft/internal/usecase"
	"careercraft/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Mailer   mailer.Mailer
	Provider jobapi.Provider
	Hub      *ws.Hub
	Logger   *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(d.DB)
	profileRepo := repository.NewPostgresProfileRepository(d.DB)
	analysisRepo := repository.NewPostgresAnalysisRepository(d.DB)
	savedJobRepo := repository.NewPostgresSavedJobRepository(d.DB)

	authUC := usecase.NewAuthUsecase(userRepo, d.Cache, d.Mailer, jwtSvc)
	analyzerUC := usecase.NewAnalyzerUsecase(
		extract.ResumeText,
		extract.Allowed,
		analysisRepo,
		profileRepo,
		ws.NewNotifier(d.Hub),
		d.Logger,
	)
	profileUC := usecase.NewProfileUsecase(profileRepo, analysisRepo)
	jobSearchUC := usecase.NewJobSearchUsecase(d.Provider, profileRepo, analysisRepo, d.Cache, d.Config.JobAPI.Country, d.Logger)
	savedJobsUC := usecase.NewSavedJobsUsecase(savedJobRepo)

	authHandler := handler.NewAuthHandler(authUC)
	analyzerHandler := handler.NewAnalyzerHandler(analyzerUC, d.Config.Upload.MaxFileSize)
	profileHandler := handler.NewProfileHandler(profileUC)
	jobsHandler := handler.NewJobsHandler(jobSearchUC)
	savedJobsHandler := handler.NewSavedJobsHandler(savedJobsUC)
	wsHandler := ws.NewHandler(d.Hub, d.Logger)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	analyzerHandler.RegisterRoutes(protected.Group("/resumes"))
	profileHandler.RegisterRoutes(protected.Group("/profile"))
	jobsHandler.RegisterRoutes(protected.Group("/jobs"))
	savedJobsHandler.RegisterRoutes(protected.Group("/jobs/saved"))

	r.Get("/ws/events", wsHandler.HandleEventsWS)
}
