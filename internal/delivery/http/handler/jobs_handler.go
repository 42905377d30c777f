package handler

import (
	"strconv"

	"careercraft/internal/delivery/http/middleware"
	"careercraft/internal/infrastructure/jobapi"
	"careercraft/internal/pkg/response"
	"careercraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc usecase.JobSearchUsecase
}

func NewJobsHandler(uc usecase.JobSearchUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/search", h.Search)
	r.Get("/suggested-search", h.SuggestedSearch)
}

// Search proxies the listing provider and adds per-user match
// percentages. Provider faults arrive as success=false inside the body,
// not as an HTTP error.
func (h *JobsHandler) Search(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		page = v
	}

	params := jobapi.SearchParams{
		Query:     c.Query("query"),
		Location:  c.Query("location"),
		Page:      page,
		SalaryMin: c.Query("salary_min"),
		SalaryMax: c.Query("salary_max"),
	}

	out, err := h.uc.SearchJobs(c.Context(), userID, params)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobsHandler) SuggestedSearch(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	suggested, err := h.uc.SuggestedSearch(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"suggested_search": suggested})
}
