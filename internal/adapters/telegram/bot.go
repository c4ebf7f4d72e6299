// Package telegram implements the platform adapter for Telegram using
// gopkg.in/telebot.v4. It extracts plain text from incoming messages, feeds
// them to the correction handler, and posts permitted replies as threaded
// responses.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"

	"github.com/wjt/fewerror/internal/ports"
)

// Bot wires Telegram updates to a message handler.
type Bot struct {
	bot     *tele.Bot
	handler ports.Handler
	log     *zap.Logger
	errCh   chan error
}

// New creates the Telegram bot with a long poller.
func New(token string, handler ports.Handler, log *zap.Logger) (*Bot, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("create telebot: %w", err)
	}

	bot := &Bot{bot: b, handler: handler, log: log, errCh: make(chan error, 1)}
	b.Handle(tele.OnText, bot.onText)
	return bot, nil
}

// Name returns the bot's Telegram username.
func (b *Bot) Name() string {
	return b.bot.Me.Username
}

// Run starts the polling loop and blocks until ctx is cancelled or the
// handler reports an unrecoverable error.
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		b.bot.Stop()
	}()
	b.log.Info("telegram bot running", zap.String("username", b.Name()))
	b.bot.Start()
	select {
	case err := <-b.errCh:
		return err
	default:
		return nil
	}
}

func (b *Bot) onText(c tele.Context) error {
	m := c.Message()
	if m == nil || m.Text == "" {
		return nil
	}

	raw, err := json.Marshal(m)
	if err != nil {
		raw = nil
	}

	msg := ports.InboundMessage{
		ID:     messageKey(m.Chat.ID, m.ID),
		Author: m.Sender.Username,
		Text:   m.Text,
	}

	if err := b.handler.HandleMessage(&replySender{bot: b.bot, to: m}, msg, raw); err != nil {
		// Only unrecoverable errors reach this point (reply state cannot be
		// persisted). Stop the loop and surface it from Run.
		b.log.Error("handle message", zap.Int64("message_id", msg.ID), zap.Error(err))
		select {
		case b.errCh <- err:
		default:
		}
		b.bot.Stop()
	}
	return nil
}

// replySender posts one threaded reply to the message it was built for.
type replySender struct {
	bot *tele.Bot
	to  *tele.Message
}

func (s *replySender) SendReply(_ ports.InboundMessage, text string) (int64, error) {
	sent, err := s.bot.Send(s.to.Chat, text, &tele.SendOptions{ReplyTo: s.to})
	if err != nil {
		return 0, fmt.Errorf("send reply: %w", err)
	}
	return messageKey(sent.Chat.ID, sent.ID), nil
}

// messageKey folds the chat id into the message id. Telegram message ids are
// only unique per chat; the reply state needs one id space per bot identity.
func messageKey(chatID int64, messageID int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d", chatID, messageID)
	return int64(h.Sum64())
}
