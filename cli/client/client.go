package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/ponyo877/mural/server/domain"
)

// Client talks to the mural server: one-shot JSON calls plus the live
// WebSocket channel.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListMessages performs the baseline load: the full list, newest first.
func (c *Client) ListMessages(ctx context.Context) ([]domain.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/messages", nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list messages: %s", responseError(res))
	}
	var messages []domain.Message
	if err := json.NewDecoder(res.Body).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

// CreateMessage submits a new recadinho and returns the stored record with
// its server-assigned id and timestamp.
func (c *Client) CreateMessage(ctx context.Context, author, body string) (domain.Message, error) {
	payload, err := json.Marshal(map[string]string{"author": author, "body": body})
	if err != nil {
		return domain.Message{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/messages", bytes.NewReader(payload))
	if err != nil {
		return domain.Message{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return domain.Message{}, fmt.Errorf("failed to send message: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return domain.Message{}, fmt.Errorf("create message: %s", responseError(res))
	}
	var message domain.Message
	if err := json.NewDecoder(res.Body).Decode(&message); err != nil {
		return domain.Message{}, fmt.Errorf("failed to decode created message: %w", err)
	}
	return message, nil
}

// Listen opens the live subscription and invokes onEvent for every
// broadcast event until ctx is done or the connection drops. No
// reconnection is attempted here; that is the caller's call.
func (c *Client) Listen(ctx context.Context, onEvent func(domain.Event)) error {
	liveURL, err := c.liveURL()
	if err != nil {
		return err
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, liveURL, nil)
	if err != nil {
		return fmt.Errorf("failed to open live subscription: %w", err)
	}
	defer conn.Close()

	// Unblock ReadMessage when the context ends.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("live subscription closed: %w", err)
		}
		var event domain.Event
		if err := json.Unmarshal(payload, &event); err != nil {
			continue
		}
		if event.Name != domain.EventNewMessage {
			continue
		}
		onEvent(event)
	}
}

func (c *Client) liveURL() (string, error) {
	u, err := url.Parse(c.baseURL + "/api/messages/live")
	if err != nil {
		return "", fmt.Errorf("invalid server address: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	return u.String(), nil
}

func responseError(res *http.Response) string {
	body, err := io.ReadAll(res.Body)
	if err == nil {
		var errRes errorResponse
		if json.Unmarshal(body, &errRes) == nil && errRes.Error != "" {
			return errRes.Error
		}
	}
	return res.Status
}
