// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// TaggedToken is one surface token with its Penn Treebank part-of-speech tag,
// as produced by an external tagger. The tag is carried as a raw string at
// this boundary; the grammar engine maps it onto its closed tag enumeration
// and treats anything outside the 36-tag set as unknown.
type TaggedToken struct {
	Text string
	Tag  string
}

// Sentence is an ordered sequence of tagged tokens. Token order is surface
// order; corrections never cross sentence boundaries.
type Sentence []TaggedToken

// Tagger splits raw text into sentences and tags every token.
// Implementations must be safe for concurrent use.
//
// Garbage in, garbage out: tags outside the Penn Treebank set degrade match
// quality but must never cause a crash downstream.
type Tagger interface {
	Tag(text string) ([]Sentence, error)
}
