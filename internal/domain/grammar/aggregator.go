package grammar

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wjt/fewerror/internal/domain/lexicon"
	"github.com/wjt/fewerror/internal/ports"
)

// manualRT matches whole-word RT/MT markers for manually quoted tweets.
var manualRT = regexp.MustCompile(`\b[RM]T\b`)

// quoteStart matches ASCII and typographic opening quotes.
var quoteStart = regexp.MustCompile(`^['"‘“]`)

// Engine scans whole messages for correctable "less" usage. It is stateless:
// the same text always yields the same correction list, and concurrent calls
// need no coordination.
type Engine struct {
	tagger ports.Tagger
	lex    *lexicon.Lexicon
}

// NewEngine builds an engine around a tagger and a lexicon.
func NewEngine(tagger ports.Tagger, lex *lexicon.Lexicon) *Engine {
	return &Engine{tagger: tagger, lex: lex}
}

// looksLikeRetweet reports whether text appears to quote someone else's
// words. We can't attribute the opinion to the sender, so such messages are
// skipped entirely.
func looksLikeRetweet(text string) bool {
	return manualRT.MatchString(text) || quoteStart.MatchString(text)
}

// FindCorrections returns every correction warranted by text, deduplicated
// by exact string and ordered by first occurrence. The result is empty for
// quoted text and whenever any correction trips the banned word veto: one
// bad word zeroes out the whole message.
//
// A tagger failure is returned as an error; callers treat it as "no
// correction found" and keep processing.
func (e *Engine) FindCorrections(text string) ([]string, error) {
	if looksLikeRetweet(text) {
		return nil, nil
	}

	sentences, err := e.tagger.Tag(text)
	if err != nil {
		return nil, fmt.Errorf("tag text: %w", err)
	}

	var corrections []string
	seen := make(map[string]bool)
	for _, sent := range sentences {
		for i, tok := range sent {
			if strings.ToLower(tok.Text) != "less" {
				continue
			}
			c, ok := Match(sent, i, e.lex)
			if !ok || seen[c] {
				continue
			}
			seen[c] = true
			corrections = append(corrections, c)
		}
	}

	for _, c := range corrections {
		if e.lex.ContainsBanned(c) {
			return nil, nil
		}
	}
	return corrections, nil
}
