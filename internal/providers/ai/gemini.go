package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const geminiDefaultTimeout = 15 * time.Second

// GeminiOptions controls how the Gemini analyzer is configured.
type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiAnalyzer implements Analyzer against the Gemini generateContent API.
// Every judgment is a single JSON-mode call; the HTTP client carries a
// bounded timeout so a slow provider degrades a metric, never a request.
type GeminiAnalyzer struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiAnalyzer constructs the analyzer. The API key is required.
func NewGeminiAnalyzer(opts GeminiOptions) (*GeminiAnalyzer, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: geminiDefaultTimeout}
	}
	return &GeminiAnalyzer{
		apiKey:  opts.APIKey,
		model:   model,
		baseURL: baseURL,
		client:  client,
	}, nil
}

// Available reports whether the analyzer can be called.
func (g *GeminiAnalyzer) Available() bool {
	return g != nil && g.apiKey != ""
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	CandidateCount   int     `json:"candidateCount,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generate performs one JSON-mode generateContent call and decodes the
// model's JSON answer into out.
func (g *GeminiAnalyzer) generate(ctx context.Context, prompt string, out any) error {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			CandidateCount:   1,
			ResponseMimeType: "application/json",
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return errors.New("gemini returned no candidates")
	}
	text := decoded.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decode judgment: %w", err)
	}
	return nil
}

func captionBlock(captions []string) string {
	if len(captions) == 0 {
		return "(no captions)"
	}
	var b strings.Builder
	for i, c := range captions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.TrimSpace(c))
	}
	return b.String()
}

func urlBlock(urls []string) string {
	if len(urls) == 0 {
		return "(no media)"
	}
	return strings.Join(urls, "\n")
}

// AnalyzeTrendRelevance rates how well recent captions ride current trends,
// 1..10.
func (g *GeminiAnalyzer) AnalyzeTrendRelevance(ctx context.Context, captions []string) (*ScoreResult, error) {
	prompt := fmt.Sprintf(`Rate how well these social media captions align with current content trends on a 1-10 scale.
Respond as JSON {"value": <number>, "feedback": "<one sentence>"}.

Captions:
%s`, captionBlock(captions))
	var res ScoreResult
	if err := g.generate(ctx, prompt, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DetectNiches identifies the primary and secondary content niches.
func (g *GeminiAnalyzer) DetectNiches(ctx context.Context, captions []string) (*NicheResult, error) {
	prompt := fmt.Sprintf(`Identify the primary content niche and up to four secondary niches for a creator with these captions.
Use single lowercase words (e.g. fashion, food, travel, fitness, beauty, tech, gaming, lifestyle, education, comedy).
Respond as JSON {"primary": "<niche>", "secondary": ["<niche>", ...]}.

Captions:
%s`, captionBlock(captions))
	var res NicheResult
	if err := g.generate(ctx, prompt, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RateHashtags classifies hashtag effectiveness as one of outperforming,
// effective, medium or need_improvement.
func (g *GeminiAnalyzer) RateHashtags(ctx context.Context, captions []string) (*LabelResult, error) {
	prompt := fmt.Sprintf(`Rate the hashtag usage in these captions as exactly one of: outperforming, effective, medium, need_improvement.
Respond as JSON {"rating": "<label>", "feedback": "<one sentence>"}.

Captions:
%s`, captionBlock(captions))
	var res LabelResult
	if err := g.generate(ctx, prompt, &res); err != nil {
		return nil, err
	}
	res.Rating = strings.ToLower(strings.TrimSpace(res.Rating))
	return &res, nil
}

// DetectCaptionLanguages estimates the share of captions per BCP-47 language
// tag; the shares are percentages summing to roughly 100.
func (g *GeminiAnalyzer) DetectCaptionLanguages(ctx context.Context, captions []string) (map[string]float64, error) {
	prompt := fmt.Sprintf(`Estimate the language mix of these captions as percentages per BCP-47 tag.
Respond as JSON mapping tag to percent, e.g. {"id": 70, "en": 30}.

Captions:
%s`, captionBlock(captions))
	var res map[string]float64
	if err := g.generate(ctx, prompt, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// DetectFaces estimates the percentage of sampled posts containing a
// detectable human face.
func (g *GeminiAnalyzer) DetectFaces(ctx context.Context, mediaURLs []string) (float64, error) {
	prompt := fmt.Sprintf(`Estimate what percentage of these media posts contain a detectable human face.
Respond as JSON {"value": <0-100>}.

Media:
%s`, urlBlock(mediaURLs))
	var res ScoreResult
	if err := g.generate(ctx, prompt, &res); err != nil {
		return 0, err
	}
	return res.Value, nil
}

// AssessVisualQuality scores lighting, editing and aesthetics, each 1..10.
func (g *GeminiAnalyzer) AssessVisualQuality(ctx context.Context, mediaURLs []string) (*VisualResult, error) {
	prompt := fmt.Sprintf(`Score the visual production quality of these media posts on a 1-10 scale per aspect.
Respond as JSON {"lighting": <n>, "editing": <n>, "aesthetics": <n>}.

Media:
%s`, urlBlock(mediaURLs))
	var res VisualResult
	if err := g.generate(ctx, prompt, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AssessColorMood scores colour and mood consistency across posts, 1..20.
func (g *GeminiAnalyzer) AssessColorMood(ctx context.Context, mediaURLs []string) (*ScoreResult, error) {
	prompt := fmt.Sprintf(`Score the colour and mood consistency of this media feed on a 1-20 scale.
Respond as JSON {"value": <number>, "feedback": "<one sentence>"}.

Media:
%s`, urlBlock(mediaURLs))
	var res ScoreResult
	if err := g.generate(ctx, prompt, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AnalyzeSentiment scores caption sentiment from -100 (negative) to +100
// (positive).
func (g *GeminiAnalyzer) AnalyzeSentiment(ctx context.Context, captions []string) (*ScoreResult, error) {
	prompt := fmt.Sprintf(`Score the overall sentiment of these captions from -100 (very negative) to 100 (very positive).
Respond as JSON {"value": <number>, "feedback": "<one sentence>"}.

Captions:
%s`, captionBlock(captions))
	var res ScoreResult
	if err := g.generate(ctx, prompt, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RateCTAUsage classifies call-to-action usage as good, medium or less.
func (g *GeminiAnalyzer) RateCTAUsage(ctx context.Context, captions []string) (*LabelResult, error) {
	prompt := fmt.Sprintf(`Rate the call-to-action usage in these captions as exactly one of: good, medium, less.
Respond as JSON {"rating": "<label>", "feedback": "<one sentence>"}.

Captions:
%s`, captionBlock(captions))
	var res LabelResult
	if err := g.generate(ctx, prompt, &res); err != nil {
		return nil, err
	}
	res.Rating = strings.ToLower(strings.TrimSpace(res.Rating))
	return &res, nil
}

func monetisationBlock(mc MonetisationContext) string {
	return fmt.Sprintf("Creator @%s, %d followers, niche %q, average engagement rate %.2f%%.\nRecent captions:\n%s",
		mc.Username, mc.FollowerCount, mc.Niche, mc.AvgEngagementRate, captionBlock(mc.Captions))
}

// PredictMonetisation rates monetisation potential on a 1..50 scale.
func (g *GeminiAnalyzer) PredictMonetisation(ctx context.Context, mc MonetisationContext) (*ScoreResult, error) {
	prompt := fmt.Sprintf(`Rate this creator's monetisation potential for brand campaigns on a 1-50 scale.
Respond as JSON {"value": <number>, "feedback": "<one sentence>"}.

%s`, monetisationBlock(mc))
	var res ScoreResult
	if err := g.generate(ctx, prompt, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// PredictPayoutPerView estimates the sponsored payout per view in IDR.
func (g *GeminiAnalyzer) PredictPayoutPerView(ctx context.Context, mc MonetisationContext) (*ScoreResult, error) {
	prompt := fmt.Sprintf(`Estimate a fair sponsored payout per view in IDR for this creator.
Respond as JSON {"value": <number>, "feedback": "<one sentence>"}.

%s`, monetisationBlock(mc))
	var res ScoreResult
	if err := g.generate(ctx, prompt, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AssessAudienceSentiment scores how positively the audience is addressed,
// 1..20.
func (g *GeminiAnalyzer) AssessAudienceSentiment(ctx context.Context, captions []string) (*ScoreResult, error) {
	prompt := fmt.Sprintf(`Score the audience sentiment conveyed by these captions on a 1-20 scale.
Respond as JSON {"value": <number>, "feedback": "<one sentence>"}.

Captions:
%s`, captionBlock(captions))
	var res ScoreResult
	if err := g.generate(ctx, prompt, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

var _ Analyzer = (*GeminiAnalyzer)(nil)
