package app

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/wjt/fewerror/internal/domain/grammar"
	"github.com/wjt/fewerror/internal/domain/reply"
	"github.com/wjt/fewerror/internal/ports"
	"github.com/wjt/fewerror/internal/state"
)

// Responder implements ports.Handler: the per-message pipeline of
// find corrections → throttle check → format → send → record.
//
// Engine failures fail open (logged, message skipped) and send failures are
// logged and skipped. A failure to persist reply state is returned: running
// on without durable state risks duplicate replies.
type Responder struct {
	engine  *grammar.Engine
	state   *state.State
	archive ports.Archive // nil = gathering disabled
	log     *zap.Logger

	postReplies bool
	maxReplyLen int

	now func() time.Time
	rng *rand.Rand
}

// ResponderOptions configures a Responder.
type ResponderOptions struct {
	Archive     ports.Archive
	PostReplies bool
	MaxReplyLen int
	Clock       func() time.Time
	Rand        *rand.Rand
}

// NewResponder wires the correction engine and reply state into a handler.
func NewResponder(engine *grammar.Engine, st *state.State, log *zap.Logger, opts ResponderOptions) *Responder {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{
		engine:      engine,
		state:       st,
		archive:     opts.Archive,
		log:         log,
		postReplies: opts.PostReplies,
		maxReplyLen: opts.MaxReplyLen,
		now:         opts.Clock,
		rng:         opts.Rand,
	}
}

// HandleMessage runs one message through the correction pipeline.
func (r *Responder) HandleMessage(sender ports.Sender, msg ports.InboundMessage, raw []byte) error {
	corrections, err := r.engine.FindCorrections(msg.Text)
	if err != nil {
		// fail open: a matching bug must never crash the loop
		r.log.Warn("find corrections", zap.String("text", msg.Text), zap.Error(err))
		return nil
	}
	if len(corrections) == 0 {
		return nil
	}

	r.log.Info("matched",
		zap.Int64("message_id", msg.ID),
		zap.String("author", msg.Author),
		zap.Strings("corrections", corrections))

	if r.archive != nil && raw != nil {
		if err := r.archive.SaveMessage(msg.ID, raw); err != nil {
			r.log.Warn("archive message", zap.Int64("message_id", msg.ID), zap.Error(err))
		}
	}

	if !r.state.CanReply(msg.ID, corrections) {
		return nil
	}

	text := reply.Format(corrections) + "."
	if greeting := festiveGreeting(r.now(), r.rng); greeting != "" {
		text += " " + greeting
	}
	if r.maxReplyLen > 0 && len([]rune(text)) > r.maxReplyLen {
		r.log.Info("reply too long, skipping", zap.Int("len", len([]rune(text))))
		return nil
	}

	if !r.postReplies {
		r.log.Info("dry run", zap.String("reply", text))
		return nil
	}

	replyID, err := sender.SendReply(msg, text)
	if err != nil {
		r.log.Warn("send reply", zap.Int64("message_id", msg.ID), zap.Error(err))
		return nil
	}
	r.log.Info("replied", zap.Int64("message_id", msg.ID), zap.Int64("reply_id", replyID))

	if err := r.state.RecordReply(msg.ID, corrections, replyID); err != nil {
		return fmt.Errorf("record reply: %w", err)
	}
	return nil
}
