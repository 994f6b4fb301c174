package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	insightFallback = "Could not retrieve cultural insights at this time."
	insightEmpty    = "No insight available."

	defaultInsightModel = "gemini-3-flash-preview"
)

// InsightClient fetches a short cultural summary for a product from a
// generative-text backend. It never returns an error: an unconfigured key,
// a transport failure, a bad status or an empty completion all resolve to
// a fixed user-presentable fallback, so a failed fetch cannot take a
// product page down with it.
type InsightClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewInsightClient(baseURL, apiKey, model string, timeout time.Duration) *InsightClient {
	if model == "" {
		model = defaultInsightModel
	}
	return &InsightClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *InsightClient) GetCulturalInsight(ctx context.Context, productName, productContext string) string {
	if c.apiKey == "" || c.baseURL == "" {
		return insightFallback
	}

	if productContext == "" {
		productContext = "African Artifact"
	}
	prompt := fmt.Sprintf(
		"You are an expert African Art Historian and Storyteller.\n"+
			"Provide a fascinating, short (max 100 words), and culturally accurate insight about: %s.\n"+
			"Context: %s.\n"+
			"Focus on its origin, usage, or symbolic meaning.",
		productName, productContext,
	)

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		log.Printf("insight: encode request: %v", err)
		return insightFallback
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Printf("insight: build request: %v", err)
		return insightFallback
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("insight: %v", err)
		return insightFallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("insight: backend returned status %d", resp.StatusCode)
		return insightFallback
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("insight: decode response: %v", err)
		return insightFallback
	}

	var text strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return insightEmpty
	}
	return text.String()
}
