// Package lexicon holds the two word lists the correction engine consumes:
// mass nouns (words the matcher accepts as head words regardless of tag) and
// banned words (a veto list the aggregator applies over finished corrections).
//
// Defaults are embedded at build time. Both lists can be swapped at runtime
// for locale or policy changes without code changes; ReloadFiles is safe to
// call while the engine is matching.
package lexicon

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

//go:embed wordlists/*.txt
var defaultsFS embed.FS

// Lexicon is a pair of word sets. Reads are lock-free apart from an RWMutex
// acquire; the whole content is swapped atomically on reload.
type Lexicon struct {
	mu        sync.RWMutex
	massNouns map[string]struct{}
	banned    []string
	automaton aho.AhoCorasick
}

// New builds a lexicon from in-memory word lists. Words are lowercased.
func New(massNouns, banned []string) *Lexicon {
	l := &Lexicon{}
	l.swap(massNouns, banned)
	return l
}

// Default returns a lexicon built from the embedded word lists.
func Default() *Lexicon {
	mass := mustEmbedded("wordlists/massnoun.txt")
	banned := mustEmbedded("wordlists/badwords.txt")
	return New(mass, banned)
}

// LoadFiles builds a lexicon from the given word list files. Either path may
// be empty, in which case the embedded default for that list is used.
func LoadFiles(massPath, bannedPath string) (*Lexicon, error) {
	l := &Lexicon{}
	if err := l.ReloadFiles(massPath, bannedPath); err != nil {
		return nil, err
	}
	return l, nil
}

// ReloadFiles re-reads the word list files and swaps the lexicon content.
// On error the previous content is left untouched.
func (l *Lexicon) ReloadFiles(massPath, bannedPath string) error {
	mass := mustEmbedded("wordlists/massnoun.txt")
	banned := mustEmbedded("wordlists/badwords.txt")

	var err error
	if massPath != "" {
		if mass, err = readList(massPath); err != nil {
			return fmt.Errorf("load mass nouns: %w", err)
		}
	}
	if bannedPath != "" {
		if banned, err = readList(bannedPath); err != nil {
			return fmt.Errorf("load banned words: %w", err)
		}
	}

	l.swap(mass, banned)
	return nil
}

// IsMassNoun reports whether word (case-insensitive) is in the mass noun list.
func (l *Lexicon) IsMassNoun(word string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.massNouns[strings.ToLower(word)]
	return ok
}

// ContainsBanned reports whether s contains any banned word as a
// case-insensitive substring. Scanning is a single Aho-Corasick pass.
func (l *Lexicon) ContainsBanned(s string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.banned) == 0 {
		return false
	}
	return len(l.automaton.FindAll(s)) > 0
}

// MassNounCount returns the number of mass nouns loaded.
func (l *Lexicon) MassNounCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.massNouns)
}

// BannedCount returns the number of banned words loaded.
func (l *Lexicon) BannedCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.banned)
}

func (l *Lexicon) swap(massNouns, banned []string) {
	mass := make(map[string]struct{}, len(massNouns))
	for _, w := range massNouns {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			mass[w] = struct{}{}
		}
	}

	patterns := make([]string, 0, len(banned))
	for _, w := range banned {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			patterns = append(patterns, w)
		}
	}

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		AsciiCaseInsensitive: true,
		DFA:                  true,
	})
	automaton := builder.Build(patterns)

	l.mu.Lock()
	l.massNouns = mass
	l.banned = patterns
	l.automaton = automaton
	l.mu.Unlock()
}

// readList parses a flat word list file: one word per line, blank lines and
// #-comments skipped.
func readList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseList(f)
}

func parseList(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func mustEmbedded(name string) []string {
	f, err := defaultsFS.Open(name)
	if err != nil {
		panic(fmt.Sprintf("embedded word list %s: %v", name, err))
	}
	defer f.Close()
	words, err := parseList(f)
	if err != nil {
		panic(fmt.Sprintf("embedded word list %s: %v", name, err))
	}
	return words
}
