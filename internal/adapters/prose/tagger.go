// Package prose implements the ports.Tagger interface using
// github.com/jdkato/prose/v2: sentence segmentation plus Penn Treebank
// part-of-speech tagging.
package prose

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"

	"github.com/wjt/fewerror/internal/ports"
)

// Tagger tags text with prose's averaged-perceptron model.
type Tagger struct{}

// NewTagger returns a ready tagger. The model is package-global inside
// prose, so the zero struct suffices.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Tag splits text into sentences and tags each token. Two passes: one
// document for segmentation over the whole text, then one tagging document
// per sentence, so token indices stay sentence-relative for the matcher.
func (t *Tagger) Tag(text string) ([]ports.Sentence, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}

	var sentences []ports.Sentence
	for _, sent := range doc.Sentences() {
		sd, err := prose.NewDocument(sent.Text,
			prose.WithSegmentation(false),
			prose.WithExtraction(false))
		if err != nil {
			return nil, fmt.Errorf("tag sentence: %w", err)
		}

		toks := sd.Tokens()
		tagged := make(ports.Sentence, 0, len(toks))
		for _, tok := range toks {
			tagged = append(tagged, ports.TaggedToken{Text: tok.Text, Tag: tok.Tag})
		}
		if len(tagged) > 0 {
			sentences = append(sentences, tagged)
		}
	}
	return sentences, nil
}
