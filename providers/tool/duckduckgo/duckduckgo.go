package duckduckgo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/askweb/askweb/core/cost"
	"github.com/askweb/askweb/internal/utils"
	"github.com/askweb/askweb/providers/tool"
)

const (
	// requestTimeout bounds a single Instant Answer API call.
	requestTimeout = 10 * time.Second

	// userAgent identifies this client to the DuckDuckGo API.
	userAgent = "askweb-search-tool/1.0"

	// maxRelatedTopics caps how many related topics make it into the summary.
	maxRelatedTopics = 5
)

// apiBaseURL is a variable so tests can point the tool at a mock server.
var apiBaseURL = "https://api.duckduckgo.com/"

// NewSearchTool returns the web-search [tool.Tool]. It is registered under
// the name "Search"; the model supplies a plain search query and receives a
// text summary of what DuckDuckGo knows about it.
func NewSearchTool() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output](
		"Search",
		Search,
		tool.WithDescription("Useful for searching the web for information. Input should be a search query."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.0, // free, the Instant Answer API needs no key
			Currency:                "USD",
			CostDescription:         "free API",
			Accuracy:                0.50,
			AverageDurationInMillis: 600,
		}),
	)
}

// Search queries the DuckDuckGo Instant Answer API and condenses the result
// into a plain-text summary. An empty result set yields a fixed "no results"
// sentence rather than an error so the agent can reason about it.
func Search(ctx context.Context, req Input) (Output, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return Output{}, fmt.Errorf("search query cannot be empty")
	}

	response, err := fetchInstantAnswer(ctx, query)
	if err != nil {
		return Output{}, err
	}

	return Output{
		Query:   query,
		Summary: summarize(response),
	}, nil
}

// fetchInstantAnswer performs the API call and decodes the response.
func fetchInstantAnswer(ctx context.Context, query string) (*instantAnswerResponse, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")
	params.Add("no_html", "1")
	params.Add("skip_disambig", "1")

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, "GET", apiBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	var response instantAnswerResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}

	return &response, nil
}

// summarize flattens the structured instant answer into readable text.
func summarize(response *instantAnswerResponse) string {
	var sections []string

	if response.AbstractText != "" {
		sections = append(sections, fmt.Sprintf("Abstract: %s", response.AbstractText))
		if response.AbstractURL != "" {
			sections = append(sections, fmt.Sprintf("Source: %s", response.AbstractURL))
		}
	}

	if response.Answer != "" {
		sections = append(sections, fmt.Sprintf("Answer: %s", response.Answer))
	}

	if response.Definition != "" {
		sections = append(sections, fmt.Sprintf("Definition: %s", response.Definition))
	}

	var topics []string
	for _, topic := range response.RelatedTopics {
		if topic.Text == "" {
			continue
		}
		topics = append(topics, topic.Text)
		if len(topics) == maxRelatedTopics {
			break
		}
	}
	if len(topics) > 0 {
		sections = append(sections, fmt.Sprintf("Related topics: %s", strings.Join(topics, "; ")))
	}

	summary := strings.Join(sections, "\n\n")
	if summary == "" {
		return "No results found for this query."
	}
	return summary
}

// Input holds the single argument the model supplies to the search tool.
type Input struct {
	Query string `json:"query" jsonschema:"description=The search query to look up on the web,required"`
}

// Output carries the original query and the condensed search summary.
type Output struct {
	Query   string `json:"query" jsonschema:"description=The original search query"`
	Summary string `json:"summary" jsonschema:"description=Summary of search results with abstracts and answers and related topics"`
}

// instantAnswerResponse mirrors the fields of the DuckDuckGo Instant Answer
// API response that feed the summary.
type instantAnswerResponse struct {
	AbstractText  string         `json:"AbstractText"`
	AbstractURL   string         `json:"AbstractURL"`
	Answer        string         `json:"Answer"`
	Definition    string         `json:"Definition"`
	Heading       string         `json:"Heading"`
	RelatedTopics []relatedTopic `json:"RelatedTopics"`
}

type relatedTopic struct {
	FirstURL string `json:"FirstURL"`
	Text     string `json:"Text"`
}
