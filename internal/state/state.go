// Package state tracks reply history for one bot identity: which messages
// have been answered, when each correction word was last used, and when the
// last reply of any kind went out.
//
// The tracker is a single-writer resource. CanReply followed by RecordReply
// is a read-then-write sequence with no built-in atomicity; callers must
// serialize access (the message loop is single-threaded).
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Defaults match the original deployment: at most one reply every two
// minutes overall, and the same correction word at most once an hour.
const (
	DefaultTimeout        = 2 * time.Minute
	DefaultPerWordTimeout = time.Hour
)

// Clock supplies the current time. Injectable so cooldown tests need no
// real sleeps.
type Clock func() time.Time

// Options configures a State. Zero values fall back to defaults.
type Options struct {
	Timeout        time.Duration // minimum gap between any two replies
	PerWordTimeout time.Duration // cooldown per correction word
	Clock          Clock
	Logger         *zap.Logger
}

// State is the persisted reply history for one bot identity.
type State struct {
	filename string

	repliedTo       map[int64]int64      // message id -> posted reply id
	lastTimeForWord map[string]time.Time // lowercased word -> last use
	last            time.Time            // last reply of any kind

	timeout        time.Duration
	perWordTimeout time.Duration
	now            Clock
	log            *zap.Logger
}

// document is the on-disk JSON shape. Timestamps serialize as RFC 3339.
type document struct {
	RepliedTo       map[int64]int64      `json:"replied_to"`
	LastTimeForWord map[string]time.Time `json:"last_time_for_word"`
}

// Filename returns the state file path for an identity within dir.
func Filename(identity, dir string) string {
	return filepath.Join(dir, fmt.Sprintf("state.%s.json", identity))
}

// Load reads the persisted state for identity from dir. A missing file is
// not an error and yields empty state; any other read or parse failure is
// fatal and returned, since state guards against duplicate replies.
func Load(identity, dir string, opts Options) (*State, error) {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.PerWordTimeout == 0 {
		opts.PerWordTimeout = DefaultPerWordTimeout
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	filename := Filename(identity, dir)
	var doc document
	data, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fresh identity
	case err != nil:
		return nil, fmt.Errorf("read state %s: %w", filename, err)
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse state %s: %w", filename, err)
		}
	}

	s := &State{
		filename:        filename,
		repliedTo:       doc.RepliedTo,
		lastTimeForWord: doc.LastTimeForWord,
		timeout:         opts.Timeout,
		perWordTimeout:  opts.PerWordTimeout,
		now:             opts.Clock,
		log:             opts.Logger,
	}
	if s.repliedTo == nil {
		s.repliedTo = make(map[int64]int64)
	}
	if s.lastTimeForWord == nil {
		s.lastTimeForWord = make(map[string]time.Time)
	}
	// Permit an immediate first reply after startup.
	s.last = s.now().Add(-s.timeout)

	s.log.Info("loaded state",
		zap.String("file", filename),
		zap.Int("replied_to", len(s.repliedTo)),
		zap.Int("last_time_for_word", len(s.lastTimeForWord)))
	return s, nil
}

// CanReply reports whether a reply to messageID referencing every word in
// corrections is permitted right now. All words must independently pass
// their cooldown; one refusal refuses the whole batch.
func (s *State) CanReply(messageID int64, corrections []string) bool {
	for _, correction := range corrections {
		word := strings.ToLower(correction)
		now := s.now()

		if replyID, ok := s.repliedTo[messageID]; ok {
			s.log.Info("already replied",
				zap.Int64("message_id", messageID),
				zap.Int64("reply_id", replyID))
			return false
		}

		if lastForWord, ok := s.lastTimeForWord[word]; ok && now.Sub(lastForWord) < s.perWordTimeout {
			s.log.Info("word in cooldown",
				zap.String("word", word),
				zap.Time("last_used", lastForWord),
				zap.Time("until", lastForWord.Add(s.perWordTimeout)))
			return false
		}

		if now.Sub(s.last) < s.timeout {
			s.log.Info("rate limited", zap.Time("until", s.last.Add(s.timeout)))
			return false
		}
	}
	return true
}

// RecordReply marks messageID as answered by replyID, stamps every
// correction word and the global timestamp, and persists synchronously.
func (s *State) RecordReply(messageID int64, corrections []string, replyID int64) error {
	now := s.now()

	s.last = now
	s.repliedTo[messageID] = replyID
	for _, correction := range corrections {
		s.lastTimeForWord[strings.ToLower(correction)] = now
	}

	return s.Save()
}

// Save writes the state file atomically: marshal to a temp file in the same
// directory, then rename over the destination. No reader ever observes a
// partially written file.
func (s *State) Save() error {
	doc := document{
		RepliedTo:       s.repliedTo,
		LastTimeForWord: s.lastTimeForWord,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	dir := filepath.Dir(s.filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.filename)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close state: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.filename); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename state: %w", err)
	}
	return nil
}

// RepliedCount returns the number of messages answered so far.
func (s *State) RepliedCount() int { return len(s.repliedTo) }

// WordCount returns the number of correction words with a recorded use.
func (s *State) WordCount() int { return len(s.lastTimeForWord) }

// String summarises the state for logs and the state subcommand.
func (s *State) String() string {
	return fmt.Sprintf("<State: %d replied_to, %d last_time_for_word>",
		len(s.repliedTo), len(s.lastTimeForWord))
}
