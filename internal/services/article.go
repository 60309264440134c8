package services

import (
  "context"

  "gorm.io/gorm"

  "github.com/wikiquiz/wikiquiz-backend/internal/logger"
  "github.com/wikiquiz/wikiquiz-backend/internal/repos"
  "github.com/wikiquiz/wikiquiz-backend/internal/types"
)

type ArticleService interface {
  ListArticles(ctx context.Context) ([]types.Article, error)
  GetQuizzes(ctx context.Context, articleID uint) ([]types.QuizView, error)
}

type articleService struct {
  db          *gorm.DB
  log         *logger.Logger
  articleRepo repos.ArticleRepo
  quizRepo    repos.QuizRepo
}

func NewArticleService(db *gorm.DB, baseLog *logger.Logger, articleRepo repos.ArticleRepo, quizRepo repos.QuizRepo) ArticleService {
  return &articleService{
    db:          db,
    log:         baseLog.With("service", "ArticleService"),
    articleRepo: articleRepo,
    quizRepo:    quizRepo,
  }
}

func (s *articleService) ListArticles(ctx context.Context) ([]types.Article, error) {
  return s.articleRepo.List(ctx, nil)
}

// GetQuizzes returns the stored quizzes for an article with the options
// column normalized into a native list. An unknown article id yields an empty
// list, not an error.
func (s *articleService) GetQuizzes(ctx context.Context, articleID uint) ([]types.QuizView, error) {
  quizzes, err := s.quizRepo.GetByArticleID(ctx, nil, articleID)
  if err != nil {
    return nil, err
  }

  views := make([]types.QuizView, 0, len(quizzes))
  for _, quiz := range quizzes {
    views = append(views, types.QuizView{
      ID:          quiz.ID,
      Question:    quiz.Question,
      Options:     ParseOptions(quiz.Options),
      Answer:      quiz.Answer,
      Difficulty:  quiz.Difficulty,
      Explanation: quiz.Explanation,
    })
  }
  return views, nil
}
