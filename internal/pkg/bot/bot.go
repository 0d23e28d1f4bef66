// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package bot relays Discord direct messages to the hackathon support agent
// and sends the agent's answers back. Guild channels are ignored; the bot
// only talks to participants one on one.
package bot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/hackathon-support/hackbot/internal/pkg/adk"
	"github.com/hackathon-support/hackbot/internal/pkg/observability"
	"github.com/hackathon-support/hackbot/internal/pkg/sessions"
)

// Replies sent when a message cannot be relayed.
const (
	msgGreeting      = "Hello! How can I help you today?"
	msgSessionFailed = "Sorry, I couldn't create a new support session. Please try again later."
	msgAgentError    = "Oops. There was an error. Re-sending your question usually fixes it. (It's a session management bug)."
	msgBadResponse   = "Sorry, I received an unexpected response from the support agent."
	msgNoReply       = "Sorry, I couldn't understand the response from the agent."
)

// typingInterval is how often the typing indicator is refreshed while the
// agent works. Discord drops an indicator after roughly ten seconds.
const typingInterval = 8 * time.Second

// agentClient is the part of the ADK client the bot depends on.
type agentClient interface {
	StartSession(ctx context.Context, discordUserID string) (adk.Session, error)
	Send(ctx context.Context, sess adk.Session, message string) (string, error)
}

// chatSender is the part of the Discord session used to answer messages.
type chatSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
}

// Bot holds the Discord gateway connection and the agent client.
type Bot struct {
	session *discordgo.Session
	agent   agentClient
	store   *sessions.Store
	logger  zerolog.Logger

	ready  atomic.Bool
	userID atomic.Value // the bot's own Discord user ID, set on Ready
}

// New builds the bot around an unopened Discord session.
func New(token string, agent agentClient, store *sessions.Store, logger zerolog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	b := &Bot{
		session: session,
		agent:   agent,
		store:   store,
		logger:  logger,
	}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onResumed)
	session.AddHandler(b.onDisconnect)
	session.AddHandler(b.onMessageCreate)
	return b, nil
}

// Run opens the gateway connection and blocks until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open Discord gateway connection: %w", err)
	}
	b.logger.Info().Msg("connected to the Discord gateway, waiting for direct messages")

	<-ctx.Done()
	b.ready.Store(false)
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("close Discord gateway connection: %w", err)
	}
	return nil
}

// Ready reports whether the gateway connection is up. The health endpoint
// surfaces it to Cloud Run.
func (b *Bot) Ready() bool {
	return b.ready.Load()
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.userID.Store(r.User.ID)
	b.ready.Store(true)
	b.logger.Info().Str("user", r.User.String()).Msg("logged in, ready to receive direct messages")
}

func (b *Bot) onResumed(_ *discordgo.Session, _ *discordgo.Resumed) {
	b.ready.Store(true)
}

func (b *Bot) onDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	b.ready.Store(false)
	b.logger.Warn().Msg("lost the Discord gateway connection, reconnecting")
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.handleMessage(context.Background(), s, m.Message)
}

func (b *Bot) handleMessage(ctx context.Context, chat chatSender, m *discordgo.Message) {
	if m.Author == nil || m.Author.ID == b.selfID() {
		return
	}
	// Guild messages carry a guild ID; direct messages never do.
	if m.GuildID != "" {
		return
	}
	if m.Content == "" {
		observability.RecordMessage("greeted")
		b.reply(chat, m.ChannelID, msgGreeting)
		return
	}

	logger := b.logger.With().Str("discord_user_id", m.Author.ID).Logger()

	sess, err := b.sessionFor(ctx, logger, m.Author.ID)
	if err != nil {
		logger.Error().Err(err).Msg("could not start an agent session")
		observability.RecordMessage("session_failed")
		b.reply(chat, m.ChannelID, msgSessionFailed)
		return
	}

	stopTyping := b.keepTyping(chat, m.ChannelID)
	defer stopTyping()

	b.reply(chat, m.ChannelID, b.relay(ctx, logger, sess, m.Content))
}

// sessionFor returns the user's agent session, starting one on first contact.
func (b *Bot) sessionFor(ctx context.Context, logger zerolog.Logger, discordUserID string) (adk.Session, error) {
	if id, ok := b.store.Get(discordUserID); ok {
		return adk.Session{UserID: adk.UserID(discordUserID), ID: id}, nil
	}

	start := time.Now()
	sess, err := b.agent.StartSession(ctx, discordUserID)
	observability.RecordAgentRequest("create_session", time.Since(start), err == nil)
	if err != nil {
		return adk.Session{}, err
	}
	b.store.Put(discordUserID, sess.ID)
	observability.SetActiveSessions(b.store.Len())
	logger.Info().Str("session_id", sess.ID).Msg("started a new agent session")
	return sess, nil
}

// relay sends the message over sess and translates agent failures into the
// reply shown to the user.
func (b *Bot) relay(ctx context.Context, logger zerolog.Logger, sess adk.Session, content string) string {
	start := time.Now()
	reply, err := b.agent.Send(ctx, sess, content)
	observability.RecordAgentRequest("run", time.Since(start), err == nil)
	if err == nil {
		observability.RecordMessage("relayed")
		return reply
	}

	var noReply *adk.ErrNoModelReply
	var badResponse *adk.ErrUnexpectedResponse
	switch {
	case errors.As(err, &noReply):
		logger.Warn().Err(err).Str("session_id", sess.ID).Msg("agent answered without text")
		observability.RecordMessage("no_reply")
		return msgNoReply
	case errors.As(err, &badResponse):
		logger.Error().Err(err).Str("session_id", sess.ID).Msg("could not parse the agent response")
		observability.RecordMessage("bad_response")
		return msgBadResponse
	default:
		// The agent service restarting or timing out voids the sessions it
		// holds, so forget ours too and let the next message start fresh.
		logger.Error().Err(err).Str("session_id", sess.ID).Msg("agent request failed, resetting all sessions")
		b.store.Clear()
		observability.RecordSessionReset()
		observability.SetActiveSessions(0)
		observability.RecordMessage("agent_failed")
		return msgAgentError
	}
}

func (b *Bot) reply(chat chatSender, channelID, content string) {
	if _, err := chat.ChannelMessageSend(channelID, content); err != nil {
		b.logger.Error().Err(err).Str("channel_id", channelID).Msg("could not send the reply")
	}
}

// keepTyping shows the typing indicator in the channel and refreshes it
// until the returned stop function is called.
func (b *Bot) keepTyping(chat chatSender, channelID string) func() {
	b.sendTyping(chat, channelID)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(typingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				b.sendTyping(chat, channelID)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
		})
	}
}

func (b *Bot) sendTyping(chat chatSender, channelID string) {
	if err := chat.ChannelTyping(channelID); err != nil {
		b.logger.Debug().Err(err).Msg("could not send the typing indicator")
	}
}

func (b *Bot) selfID() string {
	if v := b.userID.Load(); v != nil {
		return v.(string)
	}
	return ""
}
