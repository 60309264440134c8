package services

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "os"
  "time"

  "github.com/wikiquiz/wikiquiz-backend/internal/logger"
  "github.com/wikiquiz/wikiquiz-backend/internal/utils"
)

// GeminiClient is the adapter over the generation backend: grounding text in,
// raw response text out. It performs exactly one call with no validation and
// no retry; whatever the backend returns is passed through verbatim.
type GeminiClient interface {
  GenerateQuiz(ctx context.Context, articleText string) (string, error)
}

type geminiClient struct {
  log         *logger.Logger
  baseURL     string
  apiKey      string
  model       string
  temperature float64
  httpClient  *http.Client
}

func NewGeminiClient(log *logger.Logger) (GeminiClient, error) {
  apiKey := os.Getenv("GEMINI_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing GEMINI_API_KEY")
  }

  baseURL := utils.GetEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com", log)
  model := utils.GetEnv("GEMINI_MODEL", "gemini-flash-latest", log)
  timeoutSec := utils.GetEnvAsInt("GEMINI_TIMEOUT_SECONDS", 90, log)

  return &geminiClient{
    log:         log.With("service", "GeminiClient"),
    baseURL:     baseURL,
    apiKey:      apiKey,
    model:       model,
    temperature: 0.2,
    httpClient:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
  }, nil
}

// Safety cap against backend input limits and cost. Truncation is silent.
const maxArticleChars = 12000

const quizPromptTemplate = `
You are an API that returns ONLY valid JSON.

Using ONLY the article content below, generate a quiz.

RULES:
- 5 to 10 questions
- Each question has exactly 4 options
- Exactly ONE correct answer
- Difficulty must be: easy | medium | hard
- Explanation must be grounded in the article
- NO markdown
- NO extra text
- NO hallucinations

OUTPUT FORMAT:
{
  "quiz": [
    {
      "question": "",
      "options": ["", "", "", ""],
      "answer": "",
      "difficulty": "",
      "explanation": ""
    }
  ],
  "related_topics": ["", "", ""]
}

ARTICLE CONTENT:
%s
`

type geminiPart struct {
  Text string `json:"text"`
}

type geminiContent struct {
  Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
  Temperature      float64 `json:"temperature"`
  ResponseMIMEType string  `json:"responseMimeType"`
}

type geminiRequest struct {
  Contents         []geminiContent        `json:"contents"`
  GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
  Candidates []struct {
    Content struct {
      Parts []geminiPart `json:"parts"`
    } `json:"content"`
  } `json:"candidates"`
}

func (c *geminiClient) GenerateQuiz(ctx context.Context, articleText string) (string, error) {
  if runes := []rune(articleText); len(runes) > maxArticleChars {
    articleText = string(runes[:maxArticleChars])
  }
  prompt := fmt.Sprintf(quizPromptTemplate, articleText)

  payload := geminiRequest{
    Contents: []geminiContent{
      {Parts: []geminiPart{{Text: prompt}}},
    },
    GenerationConfig: geminiGenerationConfig{
      Temperature:      c.temperature,
      ResponseMIMEType: "application/json",
    },
  }

  body, err := json.Marshal(payload)
  if err != nil {
    return "", err
  }

  endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
  req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
  if err != nil {
    return "", err
  }
  req.Header.Set("Content-Type", "application/json")

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return "", err
  }
  defer resp.Body.Close()

  raw, err := io.ReadAll(resp.Body)
  if err != nil {
    return "", err
  }
  if resp.StatusCode != http.StatusOK {
    return "", fmt.Errorf("gemini http %d: %s", resp.StatusCode, string(raw))
  }

  var parsed geminiResponse
  if err := json.Unmarshal(raw, &parsed); err != nil {
    return "", fmt.Errorf("gemini unexpected response: %s", string(raw))
  }
  if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
    return "", fmt.Errorf("gemini returned no candidates")
  }

  var out bytes.Buffer
  for _, part := range parsed.Candidates[0].Content.Parts {
    out.WriteString(part.Text)
  }
  return out.String(), nil
}
