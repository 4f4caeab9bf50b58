package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stayontrack/stay-on-track-backend/internal/planner"
)

const (
	generateURL    = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"
	requestTimeout = 30 * time.Second
)

// Client calls the Gemini generateContent API to propose study sessions.
// It implements planner.Suggester.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    generateURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// Available reports whether an API key is configured.
func (c *Client) Available() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// SuggestWeek asks the model for a time-slotted weekly schedule and returns
// the suggestions as "title|course|duration|day|HH:MM" tuples.
func (c *Client) SuggestWeek(ctx context.Context, req planner.SuggestRequest) ([]string, error) {
	if !c.Available() {
		return nil, nil
	}

	text, err := c.generate(ctx, buildPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}

	suggestions, err := parseSuggestions(text)
	if err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}

	c.logger.Debug("Gemini suggestions received", zap.Int("count", len(suggestions)))
	return suggestions, nil
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.5,
			MaxOutputTokens: 2048,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "?key=" + c.apiKey
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty gemini response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

type suggestion struct {
	Title     string `json:"title"`
	Course    string `json:"course"`
	Duration  string `json:"duration"`
	Day       int    `json:"day"`
	StartTime string `json:"startTime"`
}

// parseSuggestions extracts the JSON array from the model output (which may
// be wrapped in prose or a code fence) and converts each entry to the
// pipe-delimited tuple format, filling defaults for missing fields.
func parseSuggestions(text string) ([]string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	var items []suggestion
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("decode suggestion array: %w", err)
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.Course == "" {
			it.Course = "General"
		}
		if it.Duration == "" {
			it.Duration = "1 hour"
		}
		if it.Day == 0 {
			it.Day = 1
		}
		if it.StartTime == "" {
			it.StartTime = "09:00"
		}
		out = append(out, fmt.Sprintf("%s|%s|%s|%d|%s", it.Title, it.Course, it.Duration, it.Day, it.StartTime))
	}
	return out, nil
}
