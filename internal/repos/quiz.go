package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/wikiquiz/wikiquiz-backend/internal/logger"
  "github.com/wikiquiz/wikiquiz-backend/internal/types"
)

type QuizRepo interface {
  CreateBatch(ctx context.Context, tx *gorm.DB, quizzes []*types.Quiz) error
  CountByArticleID(ctx context.Context, tx *gorm.DB, articleID uint) (int64, error)
  GetByArticleID(ctx context.Context, tx *gorm.DB, articleID uint) ([]types.Quiz, error)
}

type quizRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
  repoLog := baseLog.With("repo", "QuizRepo")
  return &quizRepo{db: db, log: repoLog}
}

func (r *quizRepo) CreateBatch(ctx context.Context, tx *gorm.DB, quizzes []*types.Quiz) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(quizzes) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).Create(&quizzes).Error; err != nil {
    return err
  }
  return nil
}

func (r *quizRepo) CountByArticleID(ctx context.Context, tx *gorm.DB, articleID uint) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Quiz{}).
    Where("article_id = ?", articleID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (r *quizRepo) GetByArticleID(ctx context.Context, tx *gorm.DB, articleID uint) ([]types.Quiz, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []types.Quiz
  if err := transaction.WithContext(ctx).
    Where("article_id = ?", articleID).
    Order("id ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
