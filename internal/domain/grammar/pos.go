// Package grammar implements the correction engine: the quantity matcher,
// which decides for one "less" token whether "fewer" is preferable and what
// phrase to surface, and the aggregator, which merges per-sentence matches
// into a deduplicated correction list for a whole message.
package grammar

// Tag is a Penn Treebank part-of-speech tag. The full 36-tag vocabulary is
// representable; the matcher consumes only a subset. Tagger output outside
// the set maps to Unknown, which matches nothing.
type Tag int

const (
	Unknown Tag = iota

	CC   // coordinating conjunction
	CD   // cardinal number
	DT   // determiner
	EX   // existential there
	FW   // foreign word
	IN   // preposition or subordinating conjunction
	JJ   // adjective or ordinal numeral
	JJR  // adjective, comparative
	JJS  // adjective, superlative
	LS   // list item marker
	MD   // modal
	NN   // noun, singular or mass
	NNS  // noun, plural
	NNP  // proper noun, singular
	NNPS // proper noun, plural
	PDT  // predeterminer
	POS  // possessive ending
	PRP  // personal pronoun
	PRPS // possessive pronoun (PRP$)
	RB   // adverb
	RBR  // adverb, comparative
	RBS  // adverb, superlative
	RP   // particle
	SYM  // symbol
	TO   // to
	UH   // interjection
	VB   // verb, base form
	VBD  // verb, past tense
	VBG  // verb, gerund or present participle
	VBN  // verb, past participle
	VBP  // verb, non-3rd person singular present
	VBZ  // verb, 3rd person singular present
	WDT  // wh-determiner
	WP   // wh-pronoun
	WPS  // possessive wh-pronoun (WP$)
	WRB  // wh-adverb
)

var tagNames = map[Tag]string{
	CC: "CC", CD: "CD", DT: "DT", EX: "EX", FW: "FW", IN: "IN",
	JJ: "JJ", JJR: "JJR", JJS: "JJS", LS: "LS", MD: "MD",
	NN: "NN", NNS: "NNS", NNP: "NNP", NNPS: "NNPS",
	PDT: "PDT", POS: "POS", PRP: "PRP", PRPS: "PRP$",
	RB: "RB", RBR: "RBR", RBS: "RBS", RP: "RP", SYM: "SYM",
	TO: "TO", UH: "UH",
	VB: "VB", VBD: "VBD", VBG: "VBG", VBN: "VBN", VBP: "VBP", VBZ: "VBZ",
	WDT: "WDT", WP: "WP", WPS: "WP$", WRB: "WRB",
}

var tagValues = func() map[string]Tag {
	m := make(map[string]Tag, len(tagNames))
	for t, name := range tagNames {
		m[name] = t
	}
	return m
}()

// String returns the Penn Treebank tag label, or "?" for Unknown.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "?"
}

// TagFromString maps a tag label from the tagger onto the closed enumeration.
// Unrecognised labels (including punctuation pseudo-tags) map to Unknown.
func TagFromString(s string) Tag {
	return tagValues[s]
}
