package types

import (
  "time"
)

// Article is a deduplicated-by-URL snapshot of a scraped page. Rows are
// immutable after creation; re-ingesting the same URL reuses the row as-is.
type Article struct {
  ID            uint            `gorm:"primaryKey" json:"id"`
  URL           string          `gorm:"column:url;uniqueIndex;not null" json:"url"`
  Title         string          `gorm:"column:title;not null" json:"title"`
  Summary       string          `gorm:"column:summary;type:text" json:"summary"`
  Quizzes       []Quiz          `gorm:"constraint:OnDelete:CASCADE;foreignKey:ArticleID;references:ID" json:"quizzes,omitempty"`
  CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (Article) TableName() string {
  return "articles"
}

// Quiz is one persisted question belonging to an Article. Options holds a
// JSON-serialized string array; all shape tolerance on read lives in
// services.ParseOptions.
type Quiz struct {
  ID            uint            `gorm:"primaryKey" json:"id"`
  ArticleID     uint            `gorm:"column:article_id;not null;index" json:"article_id"`
  Question      string          `gorm:"column:question;type:text;not null" json:"question"`
  Options       string          `gorm:"column:options;type:text;not null" json:"options"`
  Answer        string          `gorm:"column:answer;not null" json:"answer"`
  Difficulty    *string         `gorm:"column:difficulty" json:"difficulty"`
  Explanation   *string         `gorm:"column:explanation;type:text" json:"explanation"`
  CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (Quiz) TableName() string {
  return "quizzes"
}

// ExtractedContent is the transient output of a scrape. It is never persisted
// on its own; Title and Summary become an Article on first ingestion and
// Content is handed to the generation backend as grounding text.
type ExtractedContent struct {
  Title         string          `json:"title"`
  Summary       string          `json:"summary"`
  Sections      []string        `json:"sections"`
  Content       string          `json:"content"`
}
