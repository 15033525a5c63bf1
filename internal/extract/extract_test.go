package extract

import (
	"strings"
	"testing"
)

// TestText_PhrasePerLine tests that space-separated words become separate lines
func TestText_PhrasePerLine(t *testing.T) {
	got := Text("<html><body><p>Hello   world</p></body></html>")

	if got != "Hello\nworld" {
		t.Errorf("Text() = %q, want %q", got, "Hello\nworld")
	}
}

// TestText_SkipsNonContentElements tests that script/style/footer/nav/aside
// subtrees never leak into the output
func TestText_SkipsNonContentElements(t *testing.T) {
	markup := `<html><body>
		<script>var secret = "secret";</script>
		<style>.hidden { display: none; }</style>
		<nav><a href="/">navlink</a></nav>
		<footer>footertext</footer>
		<aside>asidetext</aside>
		<p>visible content</p>
	</body></html>`

	got := Text(markup)

	for _, forbidden := range []string{"secret", "hidden", "navlink", "footertext", "asidetext"} {
		if strings.Contains(got, forbidden) {
			t.Errorf("Text() output contains %q, should have been stripped", forbidden)
		}
	}

	if !strings.Contains(got, "visible") || !strings.Contains(got, "content") {
		t.Errorf("Text() output missing visible content: %q", got)
	}
}

// TestText_NoEmptyOrPaddedLines tests the normalization invariant for a
// variety of messy inputs
func TestText_NoEmptyOrPaddedLines(t *testing.T) {
	inputs := []string{
		"<html><body><p>  padded  </p><p></p><div>\n\n\t tabs\there </div></body></html>",
		"<p>one</p>\n\n<p>two</p>",
		"plain text without markup",
		"<div>   </div>",
	}

	for _, markup := range inputs {
		got := Text(markup)
		if got == "" {
			continue
		}
		for i, line := range strings.Split(got, "\n") {
			if line == "" {
				t.Errorf("Text(%q) line %d is empty", markup, i)
			}
			if line != strings.TrimSpace(line) {
				t.Errorf("Text(%q) line %d has surrounding whitespace: %q", markup, i, line)
			}
		}
	}
}

// TestText_SeparatesBlockElements tests that adjacent block elements do not
// glue their words together
func TestText_SeparatesBlockElements(t *testing.T) {
	got := Text("<p>alpha</p><p>beta</p>")

	if strings.Contains(got, "alphabeta") {
		t.Errorf("Text() merged adjacent blocks: %q", got)
	}
	if got != "alpha\nbeta" {
		t.Errorf("Text() = %q, want %q", got, "alpha\nbeta")
	}
}

// TestText_Truncation tests the length cap and marker
func TestText_Truncation(t *testing.T) {
	// 10000 single-character words; normalized form is "x\nx\n..." which is
	// well over the cap.
	markup := "<p>" + strings.Repeat("x ", 10000) + "</p>"

	got := Text(markup)

	if !strings.HasSuffix(got, TruncationMarker) {
		t.Fatalf("Text() missing truncation marker, got tail %q", got[len(got)-50:])
	}

	body := strings.TrimSuffix(got, TruncationMarker)
	if len(body) > MaxTextLength {
		t.Errorf("Text() body length = %d, want <= %d", len(body), MaxTextLength)
	}
	if len(body) != MaxTextLength {
		t.Errorf("Text() body length = %d, want exactly %d for oversized ASCII input", len(body), MaxTextLength)
	}
}

// TestText_UnderCapUntouched tests that short content gets no marker
func TestText_UnderCapUntouched(t *testing.T) {
	got := Text("<p>short</p>")

	if got != "short" {
		t.Errorf("Text() = %q, want %q", got, "short")
	}
	if strings.Contains(got, TruncationMarker) {
		t.Error("Text() added truncation marker to short content")
	}
}

// TestText_TruncationRuneBoundary tests that multi-byte runes are never split
func TestText_TruncationRuneBoundary(t *testing.T) {
	markup := "<p>" + strings.Repeat("é ", 5000) + "</p>"

	got := Text(markup)

	body := strings.TrimSuffix(got, TruncationMarker)
	if len(body) > MaxTextLength {
		t.Errorf("Text() body length = %d, want <= %d", len(body), MaxTextLength)
	}
	if strings.Contains(got, "�") {
		t.Error("Text() produced an invalid UTF-8 sequence at the truncation point")
	}
}

// TestText_Idempotent tests that extraction has no hidden state
func TestText_Idempotent(t *testing.T) {
	markup := `<html><body><h1>Title</h1><p>Some   body text</p><script>x()</script></body></html>`

	first := Text(markup)
	second := Text(markup)

	if first != second {
		t.Errorf("Text() not idempotent: %q vs %q", first, second)
	}
}

// TestText_DegradedInput tests graceful degradation on weird inputs
func TestText_DegradedInput(t *testing.T) {
	cases := []struct {
		name   string
		markup string
	}{
		{"empty", ""},
		{"unclosed tag", "<div><p>dangling"},
		{"binary-ish", "\x00\x01\x02"},
		{"json body", `{"not": "html"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Must not panic; content checks are intentionally loose.
			_ = Text(tc.markup)
		})
	}

	if got := Text("<div><p>dangling"); !strings.Contains(got, "dangling") {
		t.Errorf("Text() lost recoverable text from unclosed markup: %q", got)
	}
}
