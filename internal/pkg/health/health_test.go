// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubChecker bool

func (s stubChecker) Ready() bool {
	return bool(s)
}

func TestServer_Liveness(t *testing.T) {
	testCases := map[string]struct {
		ready bool
	}{
		"reports a connected bot":  {ready: true},
		"reports a connecting bot": {ready: false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			server := NewServer(stubChecker(tc.ready), zerolog.Nop())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			// WHEN
			server.Handler().ServeHTTP(rec, req)

			// THEN
			require.Equal(t, http.StatusOK, rec.Code)
			var body struct {
				Status   string `json:"status"`
				BotReady bool   `json:"bot_is_ready"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, "alive", body.Status)
			require.Equal(t, tc.ready, body.BotReady)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	server := NewServer(stubChecker(true), zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	server := NewServer(stubChecker(true), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, 0)
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
