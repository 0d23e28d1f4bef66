// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	messagesHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hackbot",
			Subsystem: "discord",
			Name:      "messages_total",
			Help:      "Direct messages handled, by outcome.",
		},
		[]string{"outcome"},
	)
	agentRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hackbot",
			Subsystem: "agent",
			Name:      "requests_total",
			Help:      "Requests sent to the agent service.",
		},
		[]string{"op", "success"},
	)
	agentDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hackbot",
			Subsystem: "agent",
			Name:      "request_duration_seconds",
			Help:      "Agent request duration in seconds.",
			// Agent turns routinely run far past the default buckets.
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"op", "success"},
	)
	sessionResets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hackbot",
			Subsystem: "sessions",
			Name:      "resets_total",
			Help:      "Times the session store was cleared after an agent failure.",
		},
	)
	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "hackbot",
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Users with a live agent session.",
		},
	)
)

// RegisterMetrics registers the bot's collectors with the default registry.
// Safe to call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(messagesHandled, agentRequests, agentDuration, sessionResets, activeSessions)
	})
}

// RecordMessage counts one handled direct message with its outcome.
func RecordMessage(outcome string) {
	RegisterMetrics()
	messagesHandled.WithLabelValues(outcome).Inc()
}

// RecordAgentRequest counts one request to the agent service and its duration.
func RecordAgentRequest(op string, duration time.Duration, success bool) {
	RegisterMetrics()
	successLabel := strconv.FormatBool(success)
	agentRequests.WithLabelValues(op, successLabel).Inc()
	agentDuration.WithLabelValues(op, successLabel).Observe(duration.Seconds())
}

// RecordSessionReset counts one wipe of the session store.
func RecordSessionReset() {
	RegisterMetrics()
	sessionResets.Inc()
}

// SetActiveSessions records how many users currently hold an agent session.
func SetActiveSessions(n int) {
	RegisterMetrics()
	activeSessions.Set(float64(n))
}
