// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package bot

import (
	"context"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hackathon-support/hackbot/internal/pkg/adk"
	"github.com/hackathon-support/hackbot/internal/pkg/sessions"
)

type sentQuery struct {
	sess    adk.Session
	message string
}

type fakeAgent struct {
	startSession func(discordUserID string) (adk.Session, error)
	send         func(sess adk.Session, message string) (string, error)

	mu      sync.Mutex
	started []string
	sent    []sentQuery
}

func (f *fakeAgent) StartSession(_ context.Context, discordUserID string) (adk.Session, error) {
	f.mu.Lock()
	f.started = append(f.started, discordUserID)
	f.mu.Unlock()
	if f.startSession == nil {
		return adk.Session{UserID: adk.UserID(discordUserID), ID: "generated-session"}, nil
	}
	return f.startSession(discordUserID)
}

func (f *fakeAgent) Send(_ context.Context, sess adk.Session, message string) (string, error) {
	f.mu.Lock()
	f.sent = append(f.sent, sentQuery{sess: sess, message: message})
	f.mu.Unlock()
	if f.send == nil {
		return "default reply", nil
	}
	return f.send(sess, message)
}

type fakeChat struct {
	mu      sync.Mutex
	replies []string
	typing  int
}

func (f *fakeChat) ChannelMessageSend(_ string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, content)
	return &discordgo.Message{}, nil
}

func (f *fakeChat) ChannelTyping(_ string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.typing++
	return nil
}

func (f *fakeChat) sentReplies() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.replies...)
}

func (f *fakeChat) typingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.typing
}

func newTestBot(t *testing.T, agent agentClient, store *sessions.Store) *Bot {
	t.Helper()
	b, err := New("test-token", agent, store, zerolog.Nop())
	require.NoError(t, err)
	return b
}

func dm(authorID, content string) *discordgo.Message {
	return &discordgo.Message{
		ChannelID: "dm-channel",
		Content:   content,
		Author:    &discordgo.User{ID: authorID},
	}
}

func TestBot_HandleMessage_Filters(t *testing.T) {
	t.Run("ignores guild messages", func(t *testing.T) {
		agent := &fakeAgent{}
		chat := &fakeChat{}
		b := newTestBot(t, agent, sessions.NewStore())

		msg := dm("42", "help me")
		msg.GuildID = "some-guild"
		b.handleMessage(context.Background(), chat, msg)

		require.Empty(t, chat.sentReplies())
		require.Empty(t, agent.started)
		require.Empty(t, agent.sent)
	})

	t.Run("ignores its own messages", func(t *testing.T) {
		agent := &fakeAgent{}
		chat := &fakeChat{}
		b := newTestBot(t, agent, sessions.NewStore())
		b.userID.Store("bot-user")

		b.handleMessage(context.Background(), chat, dm("bot-user", "echo"))

		require.Empty(t, chat.sentReplies())
		require.Empty(t, agent.sent)
	})

	t.Run("greets an empty direct message", func(t *testing.T) {
		agent := &fakeAgent{}
		chat := &fakeChat{}
		b := newTestBot(t, agent, sessions.NewStore())

		b.handleMessage(context.Background(), chat, dm("42", ""))

		require.Equal(t, []string{msgGreeting}, chat.sentReplies())
		require.Empty(t, agent.started)
	})
}

func TestBot_HandleMessage_Relay(t *testing.T) {
	t.Run("starts a session on first contact and relays the reply", func(t *testing.T) {
		// GIVEN
		agent := &fakeAgent{
			send: func(sess adk.Session, message string) (string, error) {
				return "Lunch is at noon in hall B.", nil
			},
		}
		chat := &fakeChat{}
		store := sessions.NewStore()
		b := newTestBot(t, agent, store)

		// WHEN
		b.handleMessage(context.Background(), chat, dm("42", "when is lunch?"))

		// THEN
		require.Equal(t, []string{"42"}, agent.started)
		require.Equal(t, []string{"Lunch is at noon in hall B."}, chat.sentReplies())
		require.GreaterOrEqual(t, chat.typingCount(), 1)
		sessionID, ok := store.Get("42")
		require.True(t, ok)
		require.Equal(t, "generated-session", sessionID)
	})

	t.Run("reuses the stored session on later messages", func(t *testing.T) {
		agent := &fakeAgent{}
		chat := &fakeChat{}
		store := sessions.NewStore()
		store.Put("42", "sess-1")
		b := newTestBot(t, agent, store)

		b.handleMessage(context.Background(), chat, dm("42", "second question"))

		require.Empty(t, agent.started, "expected no new session")
		require.Len(t, agent.sent, 1)
		require.Equal(t, adk.Session{UserID: "discord_42", ID: "sess-1"}, agent.sent[0].sess)
		require.Equal(t, "second question", agent.sent[0].message)
	})

	t.Run("apologizes when the session cannot be created", func(t *testing.T) {
		agent := &fakeAgent{
			startSession: func(discordUserID string) (adk.Session, error) {
				return adk.Session{}, &adk.ErrRequestFailed{}
			},
		}
		chat := &fakeChat{}
		store := sessions.NewStore()
		b := newTestBot(t, agent, store)

		b.handleMessage(context.Background(), chat, dm("42", "hello?"))

		require.Equal(t, []string{msgSessionFailed}, chat.sentReplies())
		require.Empty(t, agent.sent)
		require.Equal(t, 0, store.Len())
	})
}

func TestBot_HandleMessage_AgentFailures(t *testing.T) {
	testCases := map[string]struct {
		sendErr error

		wantedReply    string
		wantedSessions int
	}{
		"clears every session when the agent cannot be reached": {
			sendErr:        &adk.ErrRequestFailed{},
			wantedReply:    msgAgentError,
			wantedSessions: 0,
		},
		"keeps sessions when the agent response cannot be parsed": {
			sendErr:        &adk.ErrUnexpectedResponse{},
			wantedReply:    msgBadResponse,
			wantedSessions: 2,
		},
		"keeps sessions when the agent answers without text": {
			sendErr:        &adk.ErrNoModelReply{},
			wantedReply:    msgNoReply,
			wantedSessions: 2,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			agent := &fakeAgent{
				send: func(sess adk.Session, message string) (string, error) {
					return "", tc.sendErr
				},
			}
			chat := &fakeChat{}
			store := sessions.NewStore()
			store.Put("42", "sess-1")
			store.Put("77", "sess-2")
			b := newTestBot(t, agent, store)

			// WHEN
			b.handleMessage(context.Background(), chat, dm("42", "anyone there?"))

			// THEN
			require.Equal(t, []string{tc.wantedReply}, chat.sentReplies())
			require.Equal(t, tc.wantedSessions, store.Len())
		})
	}
}

func TestBot_ReadyTracksGatewayEvents(t *testing.T) {
	b := newTestBot(t, &fakeAgent{}, sessions.NewStore())
	require.False(t, b.Ready())

	b.onReady(nil, &discordgo.Ready{User: &discordgo.User{ID: "bot-user", Username: "hackbot"}})
	require.True(t, b.Ready())
	require.Equal(t, "bot-user", b.selfID())

	b.onDisconnect(nil, &discordgo.Disconnect{})
	require.False(t, b.Ready())

	b.onResumed(nil, &discordgo.Resumed{})
	require.True(t, b.Ready())
}
