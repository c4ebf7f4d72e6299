// Package app wires together the correction engine, reply state, and
// platform adapters, and owns the bot lifecycle: create, run, shut down.
package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/wjt/fewerror/internal/adapters/bbolt"
	fsw "github.com/wjt/fewerror/internal/adapters/fsnotify"
	"github.com/wjt/fewerror/internal/adapters/prose"
	"github.com/wjt/fewerror/internal/adapters/telegram"
	"github.com/wjt/fewerror/internal/domain/grammar"
	"github.com/wjt/fewerror/internal/domain/lexicon"
	"github.com/wjt/fewerror/internal/ports"
	"github.com/wjt/fewerror/internal/state"
)

// App is the top-level container for a running bot.
type App struct {
	cfg Config
	log *zap.Logger

	lex       *lexicon.Lexicon
	engine    *grammar.Engine
	state     *state.State
	archive   *bbolt.Archive
	watcher   ports.Watcher
	responder *Responder
	bot       *telegram.Bot
}

// New builds a fully wired bot from configuration.
func New(cfg Config, log *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.TelegramToken == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN is required")
	}

	lex, err := lexicon.LoadFiles(cfg.MassNounList, cfg.BannedWordList)
	if err != nil {
		return nil, err
	}
	log.Info("lexicons loaded",
		zap.Int("mass_nouns", lex.MassNounCount()),
		zap.Int("banned_words", lex.BannedCount()))

	engine := grammar.NewEngine(prose.NewTagger(), lex)

	st, err := state.Load(cfg.Identity, cfg.StateDir, state.Options{
		Timeout:        cfg.Timeout(),
		PerWordTimeout: cfg.PerWordTimeout(),
		Logger:         log,
	})
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, log: log, lex: lex, engine: engine, state: st}

	if cfg.GatherDB != "" {
		archive, err := bbolt.NewArchive(cfg.GatherDB)
		if err != nil {
			return nil, err
		}
		a.archive = archive
	}

	opts := ResponderOptions{
		PostReplies: cfg.PostReplies,
		MaxReplyLen: cfg.MaxReplyLen,
	}
	if a.archive != nil {
		opts.Archive = a.archive
	}
	a.responder = NewResponder(engine, st, log, opts)

	bot, err := telegram.New(cfg.TelegramToken, a.responder, log)
	if err != nil {
		return nil, err
	}
	a.bot = bot

	return a, nil
}

// Run starts the lexicon watcher (when configured) and the platform loop,
// blocking until ctx is cancelled or an unrecoverable error occurs.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.WatchLexicons {
		if err := a.startLexiconWatcher(); err != nil {
			return err
		}
	}
	defer a.close()

	return a.bot.Run(ctx)
}

// startLexiconWatcher hot-reloads the word lists when the configured files
// change. Only file-backed lists can be watched.
func (a *App) startLexiconWatcher() error {
	var paths []string
	if a.cfg.MassNounList != "" {
		paths = append(paths, a.cfg.MassNounList)
	}
	if a.cfg.BannedWordList != "" {
		paths = append(paths, a.cfg.BannedWordList)
	}
	if len(paths) == 0 {
		a.log.Warn("watch_lexicons set but no lexicon files configured")
		return nil
	}

	w, err := fsw.NewWatcher()
	if err != nil {
		return err
	}
	a.watcher = w

	return w.Watch(paths, func(path string) {
		if err := a.lex.ReloadFiles(a.cfg.MassNounList, a.cfg.BannedWordList); err != nil {
			a.log.Warn("lexicon reload failed, keeping previous lists",
				zap.String("changed", path), zap.Error(err))
			return
		}
		a.log.Info("lexicons reloaded",
			zap.String("changed", path),
			zap.Int("mass_nouns", a.lex.MassNounCount()),
			zap.Int("banned_words", a.lex.BannedCount()))
	})
}

func (a *App) close() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.archive != nil {
		if err := a.archive.Close(); err != nil {
			a.log.Warn("close archive", zap.Error(err))
		}
	}
}
