package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/wikiquiz/wikiquiz-backend/internal/apierr"
  "github.com/wikiquiz/wikiquiz-backend/internal/logger"
  "github.com/wikiquiz/wikiquiz-backend/internal/services"
)

type QuizHandler struct {
  log          *logger.Logger
  ingestionSvc services.IngestionService
}

func NewQuizHandler(log *logger.Logger, ingestionSvc services.IngestionService) *QuizHandler {
  return &QuizHandler{
    log:          log.With("handler", "QuizHandler"),
    ingestionSvc: ingestionSvc,
  }
}

// GET /generate-quiz?url=
// Ingest a wikipedia URL: scrape, generate and persist a quiz, or return the
// existing one if the article was already ingested.
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
  rawURL := c.Query("url")

  result, err := h.ingestionSvc.Ingest(c.Request.Context(), rawURL)
  if err != nil {
    if errors.Is(err, services.ErrInvalidURL) {
      RespondError(c, apierr.New(http.StatusBadRequest, "invalid_url", err))
      return
    }
    // Extraction, generation and persistence failures all collapse into one
    // generic message at this boundary.
    h.log.Error("Quiz ingestion failed", "url", rawURL, "error", err)
    RespondError(c, apierr.New(http.StatusInternalServerError, "generation_failed", services.ErrGenerationFailed))
    return
  }
  RespondOK(c, result)
}
