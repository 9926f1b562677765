// Package gemini is the HTTP client for the external text-generation service.
// Calls are made once and never retried; failures map onto the generr
// taxonomy so callers can tell an operator problem from a transient one.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/admaagape/studyapi/internal/generr"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/utils"
)

type Client interface {
	// GenerateText returns plain generated text for the prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateJSON requests structured output matching schema and decodes it
	// into out.
	GenerateJSON(ctx context.Context, prompt string, schema map[string]any, out any) error
	// SetEmergencyKey installs a runtime override key, used when the
	// configured key runs out of quota. Empty clears the override.
	SetEmergencyKey(key string)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	model      string
	httpClient *http.Client

	mu           sync.RWMutex
	apiKey       string
	emergencyKey string
}

func NewClient(log *logger.Logger) Client {
	serviceLog := log.With("service", "GeminiClient")

	apiKey := utils.GetEnv("GEMINI_API_KEY", "", nil)
	baseURL := utils.GetEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com", log)
	model := utils.GetEnv("GEMINI_MODEL", "gemini-2.5-flash", log)
	timeoutSec := utils.GetEnvAsInt("GEMINI_TIMEOUT_SECONDS", 180, log)

	if apiKey == "" {
		serviceLog.Warn("GEMINI_API_KEY not set; generation will fail until an emergency key is provided")
	}

	return &client{
		log:        serviceLog,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

func (c *client) SetEmergencyKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emergencyKey = strings.TrimSpace(key)
	if c.emergencyKey == "" {
		c.log.Info("Emergency API key cleared")
	} else {
		c.log.Info("Emergency API key installed")
	}
}

// key prefers the runtime emergency key over the configured one, mirroring
// the admin panel flow: when the shared key hits quota, a new key can be
// installed without a deploy.
func (c *client) key() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.emergencyKey != "" {
		return c.emergencyKey
	}
	return c.apiKey
}

type generateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig map[string]any `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *client) generate(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	apiKey := c.key()
	if apiKey == "" {
		return "", generr.Configuration("generation API key not set; configure GEMINI_API_KEY or install an emergency key")
	}

	cfg := map[string]any{
		"temperature": 0.7,
		"topP":        0.95,
		"topK":        40,
	}
	if schema != nil {
		cfg["responseMimeType"] = "application/json"
		cfg["responseSchema"] = schema
	}

	req := generateRequest{GenerationConfig: cfg}
	req.Contents = []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	}{{Parts: []struct {
		Text string `json:"text"`
	}{{Text: prompt}}}}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", generr.Transient(err)
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", generr.Transient(readErr)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", generr.Quota("generation service returned 429")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := string(raw)
		if strings.Contains(body, "RESOURCE_EXHAUSTED") || strings.Contains(strings.ToLower(body), "quota") {
			return "", generr.Quota("generation service rejected the key: http %d", resp.StatusCode)
		}
		return "", generr.Transient(fmt.Errorf("generation http %d: %s", resp.StatusCode, body))
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", generr.Malformed(err)
	}
	if decoded.Error != nil {
		return "", generr.Transient(fmt.Errorf("generation error %d: %s", decoded.Error.Code, decoded.Error.Message))
	}

	var text strings.Builder
	for _, cand := range decoded.Candidates {
		for _, part := range cand.Content.Parts {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", generr.Malformed(fmt.Errorf("no text in generation response"))
	}
	return text.String(), nil
}

func (c *client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, nil)
}

func (c *client) GenerateJSON(ctx context.Context, prompt string, schema map[string]any, out any) error {
	if schema == nil {
		return fmt.Errorf("schema required")
	}
	text, err := c.generate(ctx, prompt, schema)
	if err != nil {
		return err
	}
	// The model sometimes wraps structured output in markdown fences despite
	// the MIME type.
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), out); err != nil {
		return generr.Malformed(err)
	}
	return nil
}

// Schema helpers for structured output requests.

func SchemaObject(properties map[string]any, required ...string) map[string]any {
	obj := map[string]any{
		"type":       "OBJECT",
		"properties": properties,
	}
	if len(required) > 0 {
		obj["required"] = required
	}
	return obj
}

func SchemaString(description string) map[string]any {
	s := map[string]any{"type": "STRING"}
	if description != "" {
		s["description"] = description
	}
	return s
}

func SchemaArray(items map[string]any) map[string]any {
	return map[string]any{"type": "ARRAY", "items": items}
}
