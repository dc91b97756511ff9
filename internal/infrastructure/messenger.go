package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"pagemind/internal/entities"
	"pagemind/internal/interfaces"
)

// accessTokenPlaceholder is the value seeded into example configs; it
// must never reach the send API.
const accessTokenPlaceholder = "YOUR_PAGE_ACCESS_TOKEN"

// MessengerClient delivers replies through the Graph send API.
type MessengerClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewMessengerClient(baseURL string, log *logrus.Logger) interfaces.Messenger {
	if baseURL == "" {
		baseURL = "https://graph.facebook.com/v18.0"
	}
	return &MessengerClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
		log:        log,
	}
}

// SendText posts one text message to the recipient. An unset,
// placeholder, or masked credential fails before any network call.
func (m *MessengerClient) SendText(ctx context.Context, recipientID, text, accessToken string) error {
	if accessToken == "" || accessToken == accessTokenPlaceholder || entities.IsMasked(accessToken) {
		return errors.New("page access token not configured")
	}

	m.log.WithField("recipient", recipientID).Debug("Dispatching reply")

	payload := map[string]interface{}{
		"recipient": map[string]string{"id": recipientID},
		"message":   map[string]string{"text": text},
	}
	data, _ := json.Marshal(payload)

	endpoint := fmt.Sprintf("%s/me/messages?access_token=%s", m.baseURL, url.QueryEscape(accessToken))
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("send API error (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}
