package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/wikiquiz/wikiquiz-backend/internal/handlers"
)

type RouterConfig struct {
  QuizHandler    *handlers.QuizHandler
  ArticleHandler *handlers.ArticleHandler
  AllowOrigins   []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins:     cfg.AllowOrigins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/healthcheck", handlers.HealthCheck)
  router.GET("/generate-quiz", cfg.QuizHandler.GenerateQuiz)
  router.GET("/articles", cfg.ArticleHandler.ListArticles)
  router.GET("/articles/:id/quizzes", cfg.ArticleHandler.GetArticleQuizzes)

  return router
}
