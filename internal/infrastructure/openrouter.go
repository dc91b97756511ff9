package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pagemind/internal/entities"
	"pagemind/internal/interfaces"
)

const (
	completionTimeout   = 30 * time.Second
	completionMaxTokens = 500

	clientReferer = "https://pagemind.app"
	clientTitle   = "PageMind"

	personaPrompt = "You are a helpful assistant answering on behalf of this page. " +
		"Be concise and friendly. When knowledge-base context is provided, prefer it over general knowledge; " +
		"if the answer is not in the context, say so honestly."

	emptyCompletionText = "Sorry, I could not generate a response."
)

// OpenRouterClient calls the OpenRouter chat-completions API. The page's
// key and model override the global ones when set.
type OpenRouterClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewOpenRouterClient(baseURL string, log *logrus.Logger) interfaces.Completer {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	return &OpenRouterClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: completionTimeout,
		},
		log: log,
	}
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends one completion request and returns the reply text.
// A missing API key fails before any network call.
func (c *OpenRouterClient) Generate(ctx context.Context, userMessage, knowledgeContext string, page entities.PageConfig, global entities.GlobalConfig) (string, error) {
	apiKey := page.APIKey(global)
	if apiKey == "" {
		return "", errors.New("API key not configured")
	}

	system := personaPrompt
	if knowledgeContext != "" {
		system += "\n\nKnowledge base context:\n\n" + knowledgeContext
	}

	body := map[string]interface{}{
		"model": page.Model(global),
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": userMessage},
		},
		"max_tokens": completionMaxTokens,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("HTTP-Referer", clientReferer)
	req.Header.Set("X-Title", clientTitle)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		c.log.Warn("Completion response contained no choices")
		return emptyCompletionText, nil
	}
	return parsed.Choices[0].Message.Content, nil
}
