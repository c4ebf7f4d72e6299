package grammar

import (
	"strings"
	"unicode"

	"github.com/wjt/fewerror/internal/ports"
)

// MassNouns answers membership queries against the mass noun lexicon.
// Implemented by *lexicon.Lexicon.
type MassNouns interface {
	IsMassNoun(word string) bool
}

// quantityTags are the head word tags eligible for correction.
var quantityTags = map[Tag]bool{
	JJ:  true,
	VBN: true,
	VBP: true,
	NN:  true,
	NNP: true,
	RB:  true,
	RBR: true,
	RBS: true,
}

// Match decides whether the "less" token at sent[i] warrants a correction and
// returns the replacement phrase. The second return is false when no
// correction applies; out-of-range lookarounds are treated as no-match, never
// a panic, so malformed tagger output degrades to silence.
func Match(sent ports.Sentence, i int, mass MassNouns) (string, bool) {
	if i < 0 || i >= len(sent) {
		return "", false
	}

	if i >= 2 &&
		lower(sent[i-2]) == "could" && lower(sent[i-1]) == "care" && lower(sent[i]) == "less" {
		return "could care fewer", true
	}

	if i+2 < len(sent) &&
		lower(sent[i+1]) == "than" && lower(sent[i+2]) == "jake" {
		// ska is the one context where "less than" is beyond reproach
		return "Fewer Than Jake", true
	}

	var modifiers []string
	if i > 0 {
		prev := sent[i-1]
		switch {
		case TagFromString(prev.Tag) == CD && !strings.HasSuffix(prev.Text, "%"):
			// "one less worry" is idiomatic, not an error
			return "", false
		case isPercentage(prev.Text):
			modifiers = []string{prev.Text}
		case i >= 2 && lower(sent[i-2]) == "more" && lower(sent[i-1]) == "or":
			modifiers = []string{sent[i-2].Text, sent[i-1].Text}
		case TagFromString(prev.Tag) == RB || TagFromString(prev.Tag) == DT:
			modifiers = []string{prev.Text}
		}
	}

	fewer := "fewer"
	switch {
	case isAllUpper(sent[i].Text):
		fewer = "FEWER"
	case isTitleCase(sent[i].Text) && i > 0:
		fewer = "Fewer"
	}

	if i+1 >= len(sent) {
		return "", false
	}
	head := sent[i+1]
	if !quantityTags[TagFromString(head.Tag)] && !mass.IsMassNoun(head.Text) {
		return "", false
	}
	if !isAlphabetic(strings.ReplaceAll(head.Text, "/", "")) {
		return "", false
	}

	// Avoid replying "fewer lonely" to "less lonely girl": if "less" scopes
	// over a following noun we must not silently drop it. Adjective and
	// gerund chains are scanned through; anything else ends the scan.
	for _, v := range sent[i+2:] {
		tag := TagFromString(v.Tag)
		if nounish(v.Text, tag) {
			return "", false
		}
		if tag == CD {
			return "", false
		}
		if tag != JJ && tag != VBG {
			break
		}
	}

	return strings.Join(append(modifiers, fewer, head.Text), " "), true
}

// nounish reports whether the token is a noun of any flavour. The alphabetic
// requirement exists because taggers default emoticon tokens to NN.
func nounish(word string, tag Tag) bool {
	switch tag {
	case NN, NNS, NNP, NNPS:
	default:
		return false
	}
	for _, r := range word {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func lower(t ports.TaggedToken) string {
	return strings.ToLower(t.Text)
}

// isPercentage reports whether s is one or more digits immediately followed
// by a percent sign.
func isPercentage(s string) bool {
	if len(s) < 2 || !strings.HasSuffix(s, "%") {
		return false
	}
	for _, r := range s[:len(s)-1] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isAlphabetic reports whether s is non-empty and entirely letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isTitleCase(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
		} else if !unicode.IsLower(r) {
			return false
		}
	}
	return s != ""
}
