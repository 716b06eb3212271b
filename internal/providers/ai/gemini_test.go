package ai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func geminiBody(judgment string) *http.Response {
	body := `{"candidates":[{"content":{"role":"model","parts":[{"text":` + jsonString(judgment) + `}]}}]}`
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func jsonString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func newTestAnalyzer(t *testing.T, rt roundTripFunc) *GeminiAnalyzer {
	t.Helper()
	g, err := NewGeminiAnalyzer(GeminiOptions{
		APIKey:     "dummy",
		HTTPClient: &http.Client{Transport: rt},
	})
	if err != nil {
		t.Fatalf("NewGeminiAnalyzer returned error: %v", err)
	}
	return g
}

func TestGeminiAnalyzerRequiresAPIKey(t *testing.T) {
	if _, err := NewGeminiAnalyzer(GeminiOptions{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestGeminiAnalyzerTrendRelevance(t *testing.T) {
	var capturedURL string
	g := newTestAnalyzer(t, func(r *http.Request) (*http.Response, error) {
		capturedURL = r.URL.String()
		return geminiBody(`{"value": 8.5, "feedback": "rides current audio trends"}`), nil
	})

	res, err := g.AnalyzeTrendRelevance(context.Background(), []string{"new reel #fyp"})
	if err != nil {
		t.Fatalf("AnalyzeTrendRelevance returned error: %v", err)
	}
	if res.Value != 8.5 {
		t.Fatalf("Value = %v, want 8.5", res.Value)
	}
	if res.Feedback == "" {
		t.Fatal("expected feedback text")
	}
	if !strings.Contains(capturedURL, ":generateContent") {
		t.Fatalf("unexpected endpoint %q", capturedURL)
	}
}

func TestGeminiAnalyzerNormalizesLabels(t *testing.T) {
	g := newTestAnalyzer(t, func(r *http.Request) (*http.Response, error) {
		return geminiBody(`{"rating": " Outperforming "}`), nil
	})

	res, err := g.RateHashtags(context.Background(), []string{"#ootd #fashion"})
	if err != nil {
		t.Fatalf("RateHashtags returned error: %v", err)
	}
	if res.Rating != "outperforming" {
		t.Fatalf("Rating = %q, want %q", res.Rating, "outperforming")
	}
}

func TestGeminiAnalyzerTransportError(t *testing.T) {
	g := newTestAnalyzer(t, func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("boom")
	})

	if _, err := g.AnalyzeSentiment(context.Background(), []string{"hello"}); err == nil {
		t.Fatal("expected transport error to surface")
	}
}

func TestGeminiAnalyzerNon200(t *testing.T) {
	g := newTestAnalyzer(t, func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusTooManyRequests, Body: io.NopCloser(strings.NewReader("{}"))}, nil
	})

	if _, err := g.DetectNiches(context.Background(), nil); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestGeminiAnalyzerLanguageMix(t *testing.T) {
	g := newTestAnalyzer(t, func(r *http.Request) (*http.Response, error) {
		return geminiBody(`{"id": 70, "en": 30}`), nil
	})

	mix, err := g.DetectCaptionLanguages(context.Background(), []string{"halo semua", "hello world"})
	if err != nil {
		t.Fatalf("DetectCaptionLanguages returned error: %v", err)
	}
	if mix["id"] != 70 || mix["en"] != 30 {
		t.Fatalf("mix = %v, want id=70 en=30", mix)
	}
}

func TestUnavailableAnalyzer(t *testing.T) {
	u := NewUnavailable()
	if u.Available() {
		t.Fatal("unavailable analyzer must report Available() == false")
	}
	if _, err := u.AnalyzeTrendRelevance(context.Background(), nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}
