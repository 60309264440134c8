package main

import (
  "fmt"
  "os"
  "github.com/wikiquiz/wikiquiz-backend/internal/logger"
  "github.com/wikiquiz/wikiquiz-backend/internal/utils"
  "github.com/wikiquiz/wikiquiz-backend/internal/db"
  "github.com/wikiquiz/wikiquiz-backend/internal/repos"
  "github.com/wikiquiz/wikiquiz-backend/internal/scraper"
  "github.com/wikiquiz/wikiquiz-backend/internal/services"
  "github.com/wikiquiz/wikiquiz-backend/internal/handlers"
  "github.com/wikiquiz/wikiquiz-backend/internal/server"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  articleRepo := repos.NewArticleRepo(thePG, log)
  quizRepo := repos.NewQuizRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  wikiScraper := scraper.New(log)
  geminiClient, err := services.NewGeminiClient(log)
  if err != nil {
    log.Error("Could not init GeminiClient", "error", err)
    os.Exit(1)
  }
  ingestionService := services.NewIngestionService(thePG, log, wikiScraper, geminiClient, articleRepo, quizRepo)
  articleService := services.NewArticleService(thePG, log, articleRepo, quizRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  quizHandler := handlers.NewQuizHandler(log, ingestionService)
  articleHandler := handlers.NewArticleHandler(log, articleService)

  // Router
  log.Info("Setting up router from main...")
  allowOrigin := utils.GetEnv("CORS_ALLOW_ORIGIN", "http://localhost:3000", log)
  router := server.NewRouter(server.RouterConfig{
    QuizHandler:    quizHandler,
    ArticleHandler: articleHandler,
    AllowOrigins:   []string{allowOrigin},
  })

  port := utils.GetEnv("PORT", "8000", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}
