package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/wikiquiz/wikiquiz-backend/internal/logger"
  "github.com/wikiquiz/wikiquiz-backend/internal/types"
)

type ArticleRepo interface {
  GetByURL(ctx context.Context, tx *gorm.DB, url string) (*types.Article, error)
  Create(ctx context.Context, tx *gorm.DB, article *types.Article) error
  List(ctx context.Context, tx *gorm.DB) ([]types.Article, error)
}

type articleRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewArticleRepo(db *gorm.DB, baseLog *logger.Logger) ArticleRepo {
  repoLog := baseLog.With("repo", "ArticleRepo")
  return &articleRepo{db: db, log: repoLog}
}

// GetByURL returns (nil, nil) when no article exists for the URL.
func (r *articleRepo) GetByURL(ctx context.Context, tx *gorm.DB, url string) (*types.Article, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var article types.Article
  if err := transaction.WithContext(ctx).
    Where("url = ?", url).
    First(&article).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &article, nil
}

func (r *articleRepo) Create(ctx context.Context, tx *gorm.DB, article *types.Article) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(article).Error; err != nil {
    return err
  }
  return nil
}

func (r *articleRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Article, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []types.Article
  if err := transaction.WithContext(ctx).
    Order("id ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
