package types

// QuestionRecord is the wire shape of a single question as produced by the
// generation backend. Question and Answer are required; Difficulty and
// Explanation may be absent.
type QuestionRecord struct {
  Question      string          `json:"question"`
  Options       []string        `json:"options"`
  Answer        string          `json:"answer"`
  Difficulty    string          `json:"difficulty,omitempty"`
  Explanation   string          `json:"explanation,omitempty"`
}

// QuizEnvelope is the top-level object the backend is instructed to return.
// RelatedTopics is decoded but not persisted.
type QuizEnvelope struct {
  Quiz          []QuestionRecord  `json:"quiz"`
  RelatedTopics []string          `json:"related_topics"`
}

// QuizView is the read-back shape served to clients, with the stored options
// column already normalized into a native list.
type QuizView struct {
  ID            uint            `json:"id"`
  Question      string          `json:"question"`
  Options       []string        `json:"options"`
  Answer        string          `json:"answer"`
  Difficulty    *string         `json:"difficulty"`
  Explanation   *string         `json:"explanation"`
}
