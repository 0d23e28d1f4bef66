// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package sessions tracks which agent session belongs to each Discord user.
// The mapping lives in memory only; restarting the bot starts everyone on a
// fresh conversation.
package sessions

import "sync"

// Store is a concurrency-safe map from Discord user IDs to agent session IDs.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]string),
	}
}

// Get returns the session ID recorded for the user and whether one exists.
func (s *Store) Get(userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessionID, ok := s.sessions[userID]
	return sessionID, ok
}

// Put records the session ID for the user, replacing any previous one.
func (s *Store) Put(userID, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sessionID
}

// Clear drops every recorded session. The bot calls it when the agent
// backend errors so that the next message from any user starts over.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]string)
}

// Len returns the number of users with a recorded session.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
