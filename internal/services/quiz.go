package services

import (
  "encoding/json"
  "fmt"
  "strings"

  "github.com/wikiquiz/wikiquiz-backend/internal/types"
)

// ParseOptions reconciles the shapes an options column may hold. It is total:
// a JSON-encoded array decodes to its elements, anything else falls back to a
// comma split with trimmed, non-empty pieces. It runs on every quiz read, so
// it must never fail regardless of what was stored.
func ParseOptions(raw string) []string {
  var decoded []string
  if err := json.Unmarshal([]byte(raw), &decoded); err == nil && decoded != nil {
    return decoded
  }

  var options []string
  for _, piece := range strings.Split(raw, ",") {
    if trimmed := strings.TrimSpace(piece); trimmed != "" {
      options = append(options, trimmed)
    }
  }
  return options
}

// decodeQuizEnvelope is the strict counterpart used right after generation:
// the raw backend text must be valid JSON carrying a quiz array, otherwise the
// whole generation attempt is rejected. No partial acceptance.
func decodeQuizEnvelope(raw string) ([]types.QuestionRecord, error) {
  var envelope types.QuizEnvelope
  if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
    return nil, fmt.Errorf("malformed generation output: %w", err)
  }
  if envelope.Quiz == nil {
    return nil, fmt.Errorf("generation output missing quiz array")
  }
  return envelope.Quiz, nil
}
