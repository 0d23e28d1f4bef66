// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package adk talks to an Agent Development Kit (ADK) API server. The bot
// opens one session per Discord user and relays their direct messages
// through the /run endpoint.
package adk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// Roles that the ADK server attaches to conversation events.
const (
	roleUser  = "user"
	roleModel = "model"
)

// requestTimeout bounds a single round trip to the agent. Replies to /run
// arrive only after the agent finishes its turn, which can take minutes,
// and Cloud Run itself gives up after ten.
const requestTimeout = 10 * time.Minute

// Session identifies one user's conversation with the agent.
type Session struct {
	// UserID is the agent-side user ID derived from the Discord user ID.
	UserID string
	// ID is unique per conversation. Restarting a session loses the
	// agent's memory of previous messages.
	ID string
}

// Client is an ADK API client.
type Client struct {
	baseURL string
	appName string
	http    *http.Client
	tokens  oauth2.TokenSource
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource attaches Google-signed ID tokens from ts to every request.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

// WithLogger sets the logger for degraded-auth warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New returns a Client for the agent application appName served at baseURL.
func New(baseURL, appName string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		appName: appName,
		http:    newHTTPClient(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTokenSource returns a source of Google-signed ID tokens for the service
// at audience. On Cloud Run the tokens come from the container's metadata
// server; locally they require application default credentials.
func NewTokenSource(ctx context.Context, audience string) (oauth2.TokenSource, error) {
	return idtoken.NewTokenSource(ctx, audience)
}

// UserID returns the agent-side user ID for a Discord user.
func UserID(discordUserID string) string {
	return fmt.Sprintf("discord_%s", discordUserID)
}

// StartSession registers a new conversation for the Discord user with the
// agent and returns its identifiers.
func (c *Client) StartSession(ctx context.Context, discordUserID string) (Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Session{}, fmt.Errorf("generate random id for session: %w", err)
	}
	sess := Session{
		UserID: UserID(discordUserID),
		ID:     id.String(),
	}
	payload, err := json.Marshal(createSessionRequest{
		State: sessionState{DiscordUserID: discordUserID},
	})
	if err != nil {
		return Session{}, fmt.Errorf("marshal session state: %w", err)
	}
	url := fmt.Sprintf("%s/apps/%s/users/%s/sessions/%s", c.baseURL, c.appName, sess.UserID, sess.ID)
	resp, err := c.post(ctx, url, payload)
	if err != nil {
		return Session{}, &ErrRequestFailed{parent: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return Session{}, &ErrRequestFailed{parent: fmt.Errorf("create session: response status %s", resp.Status)}
	}
	return sess, nil
}

// Send relays the user's message to the agent over sess and returns the text
// of the agent's reply.
func (c *Client) Send(ctx context.Context, sess Session, message string) (string, error) {
	payload, err := json.Marshal(runRequest{
		AppName:   c.appName,
		UserID:    sess.UserID,
		SessionID: sess.ID,
		NewMessage: newMessage{
			Role:  roleUser,
			Parts: []messagePart{{Text: message}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal message: %w", err)
	}
	resp, err := c.post(ctx, c.baseURL+"/run", payload)
	if err != nil {
		return "", &ErrRequestFailed{parent: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return "", &ErrRequestFailed{parent: fmt.Errorf("run: response status %s", resp.Status)}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ErrRequestFailed{parent: fmt.Errorf("read response: %w", err)}
	}
	var events []event
	if err := json.Unmarshal(body, &events); err != nil {
		return "", &ErrUnexpectedResponse{parent: err}
	}
	reply, ok := lastModelText(events)
	if !ok {
		return "", &ErrNoModelReply{}
	}
	return reply, nil
}

func (c *Client) post(ctx context.Context, url string, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.attachAuth(req)
	return c.http.Do(req)
}

// attachAuth adds an Authorization header when a token source is configured.
// A failed token fetch downgrades the request to unauthenticated instead of
// failing it, so that local runs against an unprotected server still work.
func (c *Client) attachAuth(req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Token()
	if err != nil {
		c.logger.Warn().Err(err).Msg("could not fetch Google ID token, sending request unauthenticated")
		return
	}
	token.SetAuthHeader(req)
}

// lastModelText walks the events from newest to oldest and returns the first
// text authored by the model. Events such as function calls carry no text
// and are skipped.
func lastModelText(events []event) (string, bool) {
	for i := len(events) - 1; i >= 0; i-- {
		content := events[i].Content
		if content == nil || content.Role != roleModel {
			continue
		}
		for _, part := range content.Parts {
			if part.Text != nil {
				return *part.Text, true
			}
		}
	}
	return "", false
}

func newHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         dialer.DialContext,
			ForceAttemptHTTP2:   true,
			TLSHandshakeTimeout: 5 * time.Second,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
		},
		Timeout: requestTimeout,
	}
}

type createSessionRequest struct {
	State sessionState `json:"state"`
}

type sessionState struct {
	DiscordUserID string `json:"discord_user_id"`
}

type runRequest struct {
	AppName    string     `json:"appName"`
	UserID     string     `json:"userId"`
	SessionID  string     `json:"sessionId"`
	NewMessage newMessage `json:"newMessage"`
}

type newMessage struct {
	Role  string        `json:"role"`
	Parts []messagePart `json:"parts"`
}

type messagePart struct {
	Text string `json:"text"`
}

// event is one entry in the /run response. Only the fields the bot reads are
// modeled here; the server emits more.
type event struct {
	Content *eventContent `json:"content"`
}

type eventContent struct {
	Role  string      `json:"role"`
	Parts []eventPart `json:"parts"`
}

// eventPart keeps Text a pointer to tell a part without text, such as a
// function call, apart from a part with empty text.
type eventPart struct {
	Text *string `json:"text"`
}
