package handler

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"careercraft/internal/delivery/http/middleware"
	"careercraft/internal/domain/analysis"
	"careercraft/internal/pkg/response"
	"careercraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AnalyzerHandler struct {
	uc       usecase.AnalyzerUsecase
	maxBytes int64
}

func NewAnalyzerHandler(uc usecase.AnalyzerUsecase, maxBytes int64) *AnalyzerHandler {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &AnalyzerHandler{uc: uc, maxBytes: maxBytes}
}

func (h *AnalyzerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/analyze", h.Analyze)
	r.Get("/history", h.History)
	r.Delete("/history/:id", h.DeleteOne)
	r.Delete("/history", h.DeleteAll)
}

// Analyze accepts a multipart "resume" field, scores it, and returns the
// stored report.
func (h *AnalyzerHandler) Analyze(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", nil, err)
	}
	if fh.Filename == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file selected", nil, nil)
	}

	file, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Failed to open uploaded file", nil, err)
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}

	out, err := h.uc.AnalyzeResume(c.Context(), userID, fh.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoFile):
			return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", nil, err)
		case errors.Is(err, usecase.ErrUnsupportedFile):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid file type. Only PDF, DOCX and TXT allowed", nil, err)
		case errors.Is(err, usecase.ErrExtractionFail):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Error processing file", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalyzerHandler) History(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		limit = v
	}

	items, err := h.uc.History(c.Context(), userID, limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"analyses": items})
}

func (h *AnalyzerHandler) DeleteOne(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteAnalysis(c.Context(), userID, id); err != nil {
		if errors.Is(err, analysis.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Analysis not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"message": "Analysis deleted"})
}

func (h *AnalyzerHandler) DeleteAll(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	deleted, err := h.uc.DeleteAllAnalyses(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	data := map[string]any{
		"message": "All analysis history deleted",
		"deleted": deleted,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func readAtMost(f io.Reader, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
