package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wjt/fewerror/internal/state"
)

// Config groups startup parameters for the bot runtime. Everything but the
// Telegram token comes from the YAML config file; the token is environment
// only so it never lands in a config file by accident.
type Config struct {
	Identity string `yaml:"identity"`  // bot identity, keys the state file
	StateDir string `yaml:"state_dir"` // directory for state.<identity>.json

	PostReplies bool `yaml:"post_replies"` // false = dry run, log only
	MaxReplyLen int  `yaml:"max_reply_len"`

	TimeoutSeconds        int `yaml:"timeout_seconds"`          // global rate limit
	PerWordTimeoutSeconds int `yaml:"per_word_timeout_seconds"` // per-word cooldown

	MassNounList   string `yaml:"mass_noun_list"`   // optional, embedded default otherwise
	BannedWordList string `yaml:"banned_word_list"` // optional, embedded default otherwise
	WatchLexicons  bool   `yaml:"watch_lexicons"`   // hot-reload the lists above on change

	GatherDB string `yaml:"gather_db"` // optional bbolt archive of matched messages

	TelegramToken string `yaml:"-"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Identity:              "fewerror",
		StateDir:              ".",
		MaxReplyLen:           4096,
		TimeoutSeconds:        int(state.DefaultTimeout / time.Second),
		PerWordTimeoutSeconds: int(state.DefaultPerWordTimeout / time.Second),
	}
}

// LoadConfig reads the YAML config at path and overlays environment
// variables. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if dir := os.Getenv("FEWERROR_STATE_DIR"); dir != "" {
		cfg.StateDir = dir
	}
	if id := os.Getenv("FEWERROR_IDENTITY"); id != "" {
		cfg.Identity = id
	}

	return cfg, cfg.Validate()
}

// Validate ensures the configuration is internally consistent. The Telegram
// token is checked separately by the run path; offline commands don't need it.
func (c Config) Validate() error {
	if c.Identity == "" {
		return errors.New("identity is required")
	}
	if c.MaxReplyLen < 0 {
		return errors.New("max_reply_len must not be negative")
	}
	if c.TimeoutSeconds < 0 || c.PerWordTimeoutSeconds < 0 {
		return errors.New("timeouts must not be negative")
	}
	return nil
}

// Timeout returns the global rate-limit window.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PerWordTimeout returns the per-word cooldown window.
func (c Config) PerWordTimeout() time.Duration {
	return time.Duration(c.PerWordTimeoutSeconds) * time.Second
}
