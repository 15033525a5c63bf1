package webscraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/askweb/askweb/core/cost"
	"github.com/askweb/askweb/internal/extract"
	"github.com/askweb/askweb/internal/utils"
	"github.com/askweb/askweb/providers/tool"
)

const (
	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is sent with every request. Some sites serve empty
	// or blocked pages to clients that do not look like a desktop browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64, x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// MaxBodySize caps the response body read (10MB).
	MaxBodySize = 10 * 1024 * 1024
)

// Format selects how the fetched page is rendered for the model.
const (
	// FormatText is the default: flattened plain text.
	FormatText = "text"
	// FormatMarkdown converts the page HTML to Markdown instead.
	FormatMarkdown = "markdown"
)

// NewWebScraperTool returns the page-fetching [tool.Tool]. It is registered
// under the name "WebScraper". Fetch failures are reported to the model as
// an error payload in the tool result, never as a tool execution error, so
// the agent can read the failure and decide what to do next.
func NewWebScraperTool() *tool.Tool[Input, string] {
	return tool.NewTool[Input, string](
		"WebScraper",
		Run,
		tool.WithDescription("Useful for scraping content from a webpage. Input should be a valid URL starting with http:// or https://."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.0, // local HTTP request
			Currency:                "USD",
			CostDescription:         "local HTTP request",
			Accuracy:                0.90,
			AverageDurationInMillis: 900,
		}),
	)
}

// Run fetches the page at req.URL and formats the result for the agent.
// On success the content is returned as "Content from {url}:\n\n{text}";
// on any failure it is "Error scraping {url}:{message}". Run never returns
// an error: both outcomes are plain text the model reads and reasons about.
func Run(ctx context.Context, req Input) (string, error) {
	text, err := Scrape(ctx, req)
	if err != nil {
		return fmt.Sprintf("Error scraping %s:%s", req.URL, err.Error()), nil
	}
	return fmt.Sprintf("Content from %s:\n\n%s", req.URL, text), nil
}

// Scrape fetches req.URL and returns the cleaned page content without the
// agent-facing envelope. It is the typed path for callers that want to
// handle errors themselves.
//
// Requests carry [DefaultUserAgent] and time out after [DefaultTimeout]
// unless req.TimeoutSeconds overrides it. A non-2xx status is an error.
// The page is rendered as plain text via [extract.Text] by default, or as
// Markdown when req.Format is [FormatMarkdown]; both are capped at
// [extract.MaxTextLength] with [extract.TruncationMarker] appended when cut.
func Scrape(ctx context.Context, req Input) (string, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return "", fmt.Errorf("URL cannot be empty")
	}

	timeout := DefaultTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctxWithTimeout, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		if ctxWithTimeout.Err() != nil {
			return "", fmt.Errorf("request timeout or canceled: %w", err)
		}
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status code: %d %s", resp.StatusCode, resp.Status)
	}

	// Any content type is fed to the HTML parser; non-HTML input just
	// degrades to near-empty extracted text.
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if req.Format == FormatMarkdown {
		markdown, err := htmltomarkdown.ConvertString(string(body))
		if err != nil {
			return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
		}
		return truncate(markdown), nil
	}

	return extract.Text(string(body)), nil
}

// truncate applies the same length cap to Markdown output that
// [extract.Text] applies to plain text.
func truncate(text string) string {
	if len(text) <= extract.MaxTextLength {
		return text
	}
	cut := extract.MaxTextLength
	for cut > 0 && !isRuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + extract.TruncationMarker
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// Input holds the parameters the model supplies to the scraper tool.
type Input struct {
	// URL is the web page to fetch.
	URL string `json:"url" jsonschema:"description=The URL of the web page to scrape including the http:// or https:// prefix,required"`

	// TimeoutSeconds overrides the default 10 second request timeout.
	TimeoutSeconds int `json:"timeout_seconds,omitempty" jsonschema:"description=Request timeout in seconds,minimum=1,maximum=60"`

	// Format selects plain text (default) or Markdown rendering.
	Format string `json:"format,omitempty" jsonschema:"description=Output format for the page content,enum=text,enum=markdown"`
}
