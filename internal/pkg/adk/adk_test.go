// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package adk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestClient_StartSession(t *testing.T) {
	t.Run("posts the session state and returns the identifiers", func(t *testing.T) {
		// GIVEN
		var gotPath, gotContentType string
		var gotBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			fmt.Fprint(w, `{}`)
		}))
		defer server.Close()
		client := New(server.URL, "hackathon_support")

		// WHEN
		sess, err := client.StartSession(context.Background(), "42")

		// THEN
		require.NoError(t, err)
		require.Equal(t, "discord_42", sess.UserID)
		require.NotEmpty(t, sess.ID)
		require.Equal(t, fmt.Sprintf("/apps/hackathon_support/users/discord_42/sessions/%s", sess.ID), gotPath)
		require.Equal(t, "application/json", gotContentType)
		require.JSONEq(t, `{"state": {"discord_user_id": "42"}}`, string(gotBody))
	})

	t.Run("returns ErrRequestFailed when the server rejects the session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()
		client := New(server.URL, "hackathon_support")

		_, err := client.StartSession(context.Background(), "42")

		var wanted *ErrRequestFailed
		require.ErrorAs(t, err, &wanted)
	})

	t.Run("returns ErrRequestFailed when the server is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // close immediately to refuse connections

		client := New(server.URL, "hackathon_support")
		_, err := client.StartSession(context.Background(), "42")

		var wanted *ErrRequestFailed
		require.ErrorAs(t, err, &wanted)
	})
}

func TestClient_Send(t *testing.T) {
	sess := Session{UserID: "discord_42", ID: "11111111-2222-3333-4444-555555555555"}

	t.Run("posts the message and returns the model reply", func(t *testing.T) {
		// GIVEN
		var gotPath string
		var gotBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotBody, _ = io.ReadAll(r.Body)
			fmt.Fprint(w, `[{"content": {"role": "model", "parts": [{"text": "The wifi is venue-guest."}]}}]`)
		}))
		defer server.Close()
		client := New(server.URL, "hackathon_support")

		// WHEN
		reply, err := client.Send(context.Background(), sess, "What's the wifi password?")

		// THEN
		require.NoError(t, err)
		require.Equal(t, "The wifi is venue-guest.", reply)
		require.Equal(t, "/run", gotPath)
		require.JSONEq(t, `
{
  "appName": "hackathon_support",
  "userId": "discord_42",
  "sessionId": "11111111-2222-3333-4444-555555555555",
  "newMessage": {"role": "user", "parts": [{"text": "What's the wifi password?"}]}
}`, string(gotBody))
	})

	testCases := map[string]struct {
		respBody string

		wantedReply string
	}{
		"returns the newest model text when several events carry text": {
			respBody: `[
{"content": {"role": "user", "parts": [{"text": "hello"}]}},
{"content": {"role": "model", "parts": [{"text": "thinking..."}]}},
{"content": {"role": "model", "parts": [{"text": "final answer"}]}}]`,
			wantedReply: "final answer",
		},
		"skips model events that carry no text part": {
			respBody: `[
{"content": {"role": "model", "parts": [{"text": "from the turn before"}]}},
{"content": {"role": "model", "parts": [{"functionCall": {"name": "lookup_schedule"}}]}}]`,
			wantedReply: "from the turn before",
		},
		"keeps an empty model text apart from a missing one": {
			respBody:    `[{"content": {"role": "model", "parts": [{"text": ""}]}}]`,
			wantedReply: "",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tc.respBody)
			}))
			defer server.Close()
			client := New(server.URL, "hackathon_support")

			reply, err := client.Send(context.Background(), sess, "hi")

			require.NoError(t, err)
			require.Equal(t, tc.wantedReply, reply)
		})
	}

	t.Run("returns ErrNoModelReply when no event carries model text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"content": null}, {"content": {"role": "user", "parts": [{"text": "hello"}]}}]`)
		}))
		defer server.Close()
		client := New(server.URL, "hackathon_support")

		_, err := client.Send(context.Background(), sess, "hi")

		var wanted *ErrNoModelReply
		require.ErrorAs(t, err, &wanted)
	})

	t.Run("returns ErrUnexpectedResponse when the body is not an event list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"detail": "Session not found"}`)
		}))
		defer server.Close()
		client := New(server.URL, "hackathon_support")

		_, err := client.Send(context.Background(), sess, "hi")

		var wanted *ErrUnexpectedResponse
		require.ErrorAs(t, err, &wanted)
	})

	t.Run("returns ErrRequestFailed on a failing status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer server.Close()
		client := New(server.URL, "hackathon_support")

		_, err := client.Send(context.Background(), sess, "hi")

		var wanted *ErrRequestFailed
		require.ErrorAs(t, err, &wanted)
	})
}

type failingTokenSource struct{}

func (failingTokenSource) Token() (*oauth2.Token, error) {
	return nil, errors.New("metadata server unreachable")
}

func TestClient_Auth(t *testing.T) {
	t.Run("attaches the ID token to requests", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			fmt.Fprint(w, `{}`)
		}))
		defer server.Close()
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "id-token"})
		client := New(server.URL, "hackathon_support", WithTokenSource(ts))

		_, err := client.StartSession(context.Background(), "42")

		require.NoError(t, err)
		require.Equal(t, "Bearer id-token", gotAuth)
	})

	t.Run("sends the request unauthenticated when the token fetch fails", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			fmt.Fprint(w, `{}`)
		}))
		defer server.Close()
		client := New(server.URL, "hackathon_support", WithTokenSource(failingTokenSource{}))

		_, err := client.StartSession(context.Background(), "42")

		require.NoError(t, err)
		require.Empty(t, gotAuth)
	})
}
