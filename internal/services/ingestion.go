package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "net/url"

  "gorm.io/gorm"

  "github.com/wikiquiz/wikiquiz-backend/internal/logger"
  "github.com/wikiquiz/wikiquiz-backend/internal/repos"
  "github.com/wikiquiz/wikiquiz-backend/internal/types"
)

var (
  ErrInvalidURL       = errors.New("invalid url")
  ErrGenerationFailed = errors.New("quiz generation failed")
)

const (
  StatusAlreadyGenerated = "already generated"
  StatusSaved            = "saved successfully"
)

// PageScraper is what the orchestrator needs from the extractor.
type PageScraper interface {
  Scrape(ctx context.Context, pageURL string) (*types.ExtractedContent, error)
}

type IngestResult struct {
  ArticleID uint   `json:"article_id"`
  QuizCount int    `json:"quiz_count"`
  Status    string `json:"status"`
}

type IngestionService interface {
  Ingest(ctx context.Context, rawURL string) (*IngestResult, error)
}

type ingestionService struct {
  db          *gorm.DB
  log         *logger.Logger
  scraper     PageScraper
  gemini      GeminiClient
  articleRepo repos.ArticleRepo
  quizRepo    repos.QuizRepo
}

func NewIngestionService(db *gorm.DB, baseLog *logger.Logger, scraper PageScraper, gemini GeminiClient, articleRepo repos.ArticleRepo, quizRepo repos.QuizRepo) IngestionService {
  return &ingestionService{
    db:          db,
    log:         baseLog.With("service", "IngestionService"),
    scraper:     scraper,
    gemini:      gemini,
    articleRepo: articleRepo,
    quizRepo:    quizRepo,
  }
}

// Ingest runs the pipeline for one URL: validate, scrape, get-or-create the
// article, then generate and persist quizzes unless the article already has
// some. Generation is the expensive step; the quiz-count check is what keeps
// repeat requests from paying for it again.
func (s *ingestionService) Ingest(ctx context.Context, rawURL string) (*IngestResult, error) {
  parsed, err := url.Parse(rawURL)
  if err != nil || parsed.Scheme == "" || parsed.Host == "" {
    return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
  }

  extracted, err := s.scraper.Scrape(ctx, rawURL)
  if err != nil {
    return nil, err
  }

  article, err := s.articleRepo.GetByURL(ctx, nil, rawURL)
  if err != nil {
    return nil, err
  }
  if article == nil {
    article = &types.Article{
      URL:     rawURL,
      Title:   extracted.Title,
      Summary: extracted.Summary,
    }
    if err := s.articleRepo.Create(ctx, nil, article); err != nil {
      return nil, err
    }
    s.log.Info("Created article", "article_id", article.ID, "url", rawURL)
  }

  existing, err := s.quizRepo.CountByArticleID(ctx, nil, article.ID)
  if err != nil {
    return nil, err
  }
  if existing > 0 {
    s.log.Info("Quizzes already generated for article", "article_id", article.ID, "quiz_count", existing)
    return &IngestResult{
      ArticleID: article.ID,
      QuizCount: int(existing),
      Status:    StatusAlreadyGenerated,
    }, nil
  }

  rawOutput, err := s.gemini.GenerateQuiz(ctx, extracted.Content)
  if err != nil {
    s.log.Error("Generation backend call failed", "article_id", article.ID, "error", err)
    return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
  }
  records, err := decodeQuizEnvelope(rawOutput)
  if err != nil {
    s.log.Error("Generation output rejected", "article_id", article.ID, "error", err)
    return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
  }

  quizzes := make([]*types.Quiz, 0, len(records))
  for i, record := range records {
    quiz, err := quizFromRecord(article.ID, record)
    if err != nil {
      return nil, fmt.Errorf("question %d: %w", i+1, err)
    }
    quizzes = append(quizzes, quiz)
  }

  // One transaction for the whole batch: a bad question record rolls the
  // entire quiz set back rather than leaving a partial one behind.
  if err := s.db.Transaction(func(tx *gorm.DB) error {
    return s.quizRepo.CreateBatch(ctx, tx, quizzes)
  }); err != nil {
    return nil, err
  }

  s.log.Info("Saved quizzes for article", "article_id", article.ID, "quiz_count", len(quizzes))
  return &IngestResult{
    ArticleID: article.ID,
    QuizCount: len(quizzes),
    Status:    StatusSaved,
  }, nil
}

func quizFromRecord(articleID uint, record types.QuestionRecord) (*types.Quiz, error) {
  if record.Question == "" {
    return nil, errors.New("missing required field question")
  }
  if record.Answer == "" {
    return nil, errors.New("missing required field answer")
  }

  encoded, err := json.Marshal(record.Options)
  if err != nil {
    return nil, err
  }

  quiz := &types.Quiz{
    ArticleID: articleID,
    Question:  record.Question,
    Options:   string(encoded),
    Answer:    record.Answer,
  }
  if record.Difficulty != "" {
    quiz.Difficulty = &record.Difficulty
  }
  if record.Explanation != "" {
    quiz.Explanation = &record.Explanation
  }
  return quiz, nil
}
