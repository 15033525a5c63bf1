package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type echoResponse struct {
	Greeting string `json:"greeting"`
}

// TestDoPostSync_Success tests the happy-path JSON round trip
func TestDoPostSync_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}
		fmt.Fprint(w, `{"greeting":"hello"}`)
	}))
	defer server.Close()

	res, out, err := DoPostSync[echoResponse](context.Background(), nil, server.URL, "test-key", map[string]string{"q": "hi"})
	if err != nil {
		t.Fatalf("DoPostSync failed: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", res.StatusCode)
	}
	if out == nil || out.Greeting != "hello" {
		t.Errorf("decoded = %+v, want greeting hello", out)
	}
}

// TestDoPostSync_Non2xx tests that error statuses carry the response body
func TestDoPostSync_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"bad key"}`)
	}))
	defer server.Close()

	_, out, err := DoPostSync[echoResponse](context.Background(), nil, server.URL, "", nil)
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if out != nil {
		t.Errorf("decoded = %+v, want nil on error", out)
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "bad key") {
		t.Errorf("error should carry status and body, got: %v", err)
	}
}

// TestDoPostSync_DecodeError tests that garbage bodies produce a preview-bearing error
func TestDoPostSync_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer server.Close()

	_, _, err := DoPostSync[echoResponse](context.Background(), nil, server.URL, "", nil)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "not json at all") {
		t.Errorf("error should include response preview, got: %v", err)
	}
}

// TestDoPostSync_ContextCancel tests that cancellation aborts the request
func TestDoPostSync_ContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, err := DoPostSync[echoResponse](ctx, nil, server.URL, "", nil)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded in chain", err)
	}
}

// TestTruncateString tests length handling and the omission suffix
func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("TruncateString() = %q, want unchanged input", got)
	}

	long := strings.Repeat("a", 100)
	got := TruncateString(long, 10)
	if !strings.HasPrefix(got, "aaaaaaaaaa...") {
		t.Errorf("TruncateString() = %q, want truncated prefix", got)
	}
	if !strings.Contains(got, "100 total chars") {
		t.Errorf("TruncateString() = %q, want original length in suffix", got)
	}

	// Zero maxLen falls back to the default.
	veryLong := strings.Repeat("b", DefaultMaxStringLength+1)
	if got := TruncateString(veryLong, 0); len(got) >= len(veryLong)+10 {
		t.Errorf("TruncateString() with zero maxLen did not truncate")
	}
}

// TestPtr tests pointer conversion for a couple of types
func TestPtr(t *testing.T) {
	f := Ptr(0.5)
	if f == nil || *f != 0.5 {
		t.Errorf("Ptr(0.5) = %v", f)
	}

	s := Ptr("x")
	if s == nil || *s != "x" {
		t.Errorf("Ptr(\"x\") = %v", s)
	}
}

// TestCloseWithLog_Nil tests the nil guard
func TestCloseWithLog_Nil(t *testing.T) {
	CloseWithLog(nil) // must not panic
}
