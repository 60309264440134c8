package handlers

import (
  "fmt"
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/wikiquiz/wikiquiz-backend/internal/apierr"
  "github.com/wikiquiz/wikiquiz-backend/internal/logger"
  "github.com/wikiquiz/wikiquiz-backend/internal/services"
)

type ArticleHandler struct {
  log        *logger.Logger
  articleSvc services.ArticleService
}

func NewArticleHandler(log *logger.Logger, articleSvc services.ArticleService) *ArticleHandler {
  return &ArticleHandler{
    log:        log.With("handler", "ArticleHandler"),
    articleSvc: articleSvc,
  }
}

// GET /articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
  articles, err := h.articleSvc.ListArticles(c.Request.Context())
  if err != nil {
    h.log.Error("Failed to list articles", "error", err)
    RespondError(c, apierr.New(http.StatusInternalServerError, "list_failed", fmt.Errorf("failed to list articles")))
    return
  }

  type articleView struct {
    ID      uint   `json:"id"`
    URL     string `json:"url"`
    Title   string `json:"title"`
    Summary string `json:"summary"`
  }
  views := make([]articleView, 0, len(articles))
  for _, article := range articles {
    views = append(views, articleView{
      ID:      article.ID,
      URL:     article.URL,
      Title:   article.Title,
      Summary: article.Summary,
    })
  }
  RespondOK(c, views)
}

// GET /articles/:id/quizzes
func (h *ArticleHandler) GetArticleQuizzes(c *gin.Context) {
  articleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
  if err != nil {
    RespondError(c, apierr.New(http.StatusBadRequest, "invalid_article_id", fmt.Errorf("invalid article id %q", c.Param("id"))))
    return
  }

  quizzes, err := h.articleSvc.GetQuizzes(c.Request.Context(), uint(articleID))
  if err != nil {
    h.log.Error("Failed to get quizzes", "article_id", articleID, "error", err)
    RespondError(c, apierr.New(http.StatusInternalServerError, "quizzes_failed", fmt.Errorf("failed to get quizzes")))
    return
  }
  RespondOK(c, quizzes)
}
