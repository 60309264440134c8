package scraper

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "regexp"
  "strings"
  "time"
  "unicode/utf8"

  "github.com/PuerkitoBio/goquery"
  "golang.org/x/net/html"

  "github.com/wikiquiz/wikiquiz-backend/internal/logger"
  "github.com/wikiquiz/wikiquiz-backend/internal/types"
  "github.com/wikiquiz/wikiquiz-backend/internal/utils"
)

var (
  ErrFetch     = errors.New("failed to fetch wikipedia page")
  ErrStructure = errors.New("wikipedia page structure not found")
  ErrNoContent = errors.New("no valid article content extracted")
)

// Wikipedia rejects default-identified clients, so every fetch carries a
// browser User-Agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

// Paragraphs shorter than this after cleaning are captions or fragments.
const minParagraphChars = 40

var citationMarker = regexp.MustCompile(`\[\d+\]`)

type Scraper struct {
  log        *logger.Logger
  httpClient *http.Client
}

func New(baseLog *logger.Logger) *Scraper {
  scraperLog := baseLog.With("service", "Scraper")
  timeoutSec := utils.GetEnvAsInt("SCRAPE_TIMEOUT_SECONDS", 10, baseLog)
  return &Scraper{
    log:        scraperLog,
    httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
  }
}

// Scrape fetches a Wikipedia page and reduces it to title, summary, section
// headings and the full cleaned paragraph text used as grounding for quiz
// generation.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*types.ExtractedContent, error) {
  req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
  if err != nil {
    return nil, fmt.Errorf("%w: %v", ErrFetch, err)
  }
  req.Header.Set("User-Agent", browserUserAgent)

  resp, err := s.httpClient.Do(req)
  if err != nil {
    return nil, fmt.Errorf("%w: %v", ErrFetch, err)
  }
  defer resp.Body.Close()

  if resp.StatusCode != http.StatusOK {
    return nil, fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
  }

  doc, err := goquery.NewDocumentFromReader(resp.Body)
  if err != nil {
    return nil, fmt.Errorf("%w: %v", ErrStructure, err)
  }

  // Missing title is not fatal, missing content containers is.
  title := strings.TrimSpace(doc.Find("h1").First().Text())

  contentDiv := doc.Find("div#mw-content-text")
  parserOutput := doc.Find("div.mw-parser-output")
  if contentDiv.Length() == 0 || parserOutput.Length() == 0 {
    return nil, ErrStructure
  }

  var cleaned []string
  contentDiv.Find("p").Each(func(_ int, sel *goquery.Selection) {
    text := flattenText(sel)
    text = citationMarker.ReplaceAllString(text, "")
    text = strings.TrimSpace(text)

    if utf8.RuneCountInString(text) < minParagraphChars {
      return
    }
    if strings.HasPrefix(strings.ToLower(text), "coordinates") {
      return
    }
    cleaned = append(cleaned, text)
  })

  if len(cleaned) == 0 {
    return nil, ErrNoContent
  }

  var sections []string
  parserOutput.Find("h2").Each(func(_ int, sel *goquery.Selection) {
    headline := sel.Find("span.mw-headline").First()
    if headline.Length() > 0 {
      sections = append(sections, strings.TrimSpace(headline.Text()))
    }
  })

  s.log.Debug("Scraped wikipedia page", "url", pageURL, "paragraphs", len(cleaned), "sections", len(sections))

  return &types.ExtractedContent{
    Title:    title,
    Summary:  cleaned[0],
    Sections: sections,
    Content:  strings.Join(cleaned, " "),
  }, nil
}

// flattenText collapses a selection's inline markup into space-joined plain
// text: every non-empty text node is trimmed and the pieces are joined with a
// single space.
func flattenText(sel *goquery.Selection) string {
  var parts []string
  for _, node := range sel.Nodes {
    collectText(node, &parts)
  }
  return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
  if n.Type == html.TextNode {
    if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
      *parts = append(*parts, trimmed)
    }
    return
  }
  for child := n.FirstChild; child != nil; child = child.NextSibling {
    collectText(child, parts)
  }
}
