package duckduckgo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// withMockAPI points the package at a mock Instant Answer server for the
// duration of a test.
func withMockAPI(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	previous := apiBaseURL
	apiBaseURL = server.URL + "/"
	t.Cleanup(func() { apiBaseURL = previous })
}

// TestSearch exercises the full request, decode, and summarize path.
func TestSearch(t *testing.T) {
	t.Run("abstract and answer are summarized", func(t *testing.T) {
		withMockAPI(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != "golang" {
				t.Errorf("expected query %q, got %q", "golang", got)
			}
			if got := r.URL.Query().Get("format"); got != "json" {
				t.Errorf("expected format json, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"AbstractText": "Go is a statically typed language.",
				"AbstractURL": "https://en.wikipedia.org/wiki/Go",
				"Answer": "42",
				"RelatedTopics": [{"Text": "Go standard library", "FirstURL": "https://pkg.go.dev"}]
			}`))
		})

		out, err := Search(context.Background(), Input{Query: "golang"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Query != "golang" {
			t.Errorf("expected query to round-trip, got %q", out.Query)
		}
		for _, want := range []string{
			"Abstract: Go is a statically typed language.",
			"Source: https://en.wikipedia.org/wiki/Go",
			"Answer: 42",
			"Related topics: Go standard library",
		} {
			if !strings.Contains(out.Summary, want) {
				t.Errorf("summary missing %q:\n%s", want, out.Summary)
			}
		}
	})

	t.Run("empty result set yields the no-results sentence", func(t *testing.T) {
		withMockAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		out, err := Search(context.Background(), Input{Query: "zxqvbn"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary != "No results found for this query." {
			t.Errorf("expected no-results sentence, got %q", out.Summary)
		}
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		if _, err := Search(context.Background(), Input{Query: "   "}); err == nil {
			t.Fatal("expected an error for a blank query")
		}
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		withMockAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		if _, err := Search(context.Background(), Input{Query: "golang"}); err == nil {
			t.Fatal("expected an error for a 500 response")
		}
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		withMockAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})

		if _, err := Search(context.Background(), Input{Query: "golang"}); err == nil {
			t.Fatal("expected an error for a malformed body")
		}
	})

	t.Run("related topics are capped", func(t *testing.T) {
		withMockAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"RelatedTopics": [
					{"Text": "one"}, {"Text": "two"}, {"Text": "three"},
					{"Text": "four"}, {"Text": "five"}, {"Text": "six"}
				]
			}`))
		})

		out, err := Search(context.Background(), Input{Query: "golang"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out.Summary, "six") {
			t.Errorf("expected at most %d related topics, got: %s", maxRelatedTopics, out.Summary)
		}
		if !strings.Contains(out.Summary, "five") {
			t.Errorf("expected the fifth topic to be present, got: %s", out.Summary)
		}
	})
}

// TestNewSearchTool checks the registered tool surface.
func TestNewSearchTool(t *testing.T) {
	searchTool := NewSearchTool()

	info := searchTool.ToolInfo()
	if info.Name != "Search" {
		t.Errorf("expected tool name Search, got %q", info.Name)
	}
	if info.Description == "" {
		t.Error("expected a non-empty description")
	}
	if info.Parameters == nil {
		t.Fatal("expected generated parameters schema")
	}
	if _, ok := info.Parameters.Properties["query"]; !ok {
		t.Error("expected a query property in the schema")
	}

	if searchTool.GetMetrics() == nil {
		t.Error("expected cost metrics to be set")
	}
}
