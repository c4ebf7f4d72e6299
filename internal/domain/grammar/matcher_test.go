package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wjt/fewerror/internal/domain/lexicon"
	"github.com/wjt/fewerror/internal/ports"
)

// tagged parses "word/TAG word/TAG ..." into a sentence. The split is on the
// last slash so tokens like "he/she/PRP" survive.
func tagged(t *testing.T, s string) ports.Sentence {
	t.Helper()
	var sent ports.Sentence
	for _, field := range strings.Fields(s) {
		idx := strings.LastIndex(field, "/")
		require.Greater(t, idx, 0, "malformed token %q", field)
		sent = append(sent, ports.TaggedToken{Text: field[:idx], Tag: field[idx+1:]})
	}
	return sent
}

// lessIndex finds the first token whose lowercased text is "less".
func lessIndex(t *testing.T, sent ports.Sentence) int {
	t.Helper()
	for i, tok := range sent {
		if strings.ToLower(tok.Text) == "less" {
			return i
		}
	}
	t.Fatalf("no 'less' token in %v", sent)
	return -1
}

func testLexicon() *lexicon.Lexicon {
	return lexicon.New([]string{"mathematics", "exercise", "blood"}, nil)
}

func TestMatch(t *testing.T) {
	lex := testLexicon()

	tests := []struct {
		name     string
		sentence string
		want     string // empty = no match
	}{
		{
			name:     "simple adjective",
			sentence: "he/PRP is/VBZ less/JJR capable/JJ",
			want:     "fewer capable",
		},
		{
			name:     "could care less",
			sentence: "I/PRP could/MD care/VBP less/RBR",
			want:     "could care fewer",
		},
		{
			name:     "less than jake",
			sentence: "less/JJR than/IN jake/NN",
			want:     "Fewer Than Jake",
		},
		{
			name:     "cardinal before less is idiomatic",
			sentence: "one/CD less/JJR worry/NN",
			want:     "",
		},
		{
			name:     "percentage modifier retained",
			sentence: "100%/CD less/JJR exercise/NN",
			want:     "100% fewer exercise",
		},
		{
			name:     "more or less retained",
			sentence: "more/JJR or/CC less/JJR lucky/JJ",
			want:     "more or fewer lucky",
		},
		{
			name:     "adverb modifier retained",
			sentence: "just/RB less/JJR lucky/JJ",
			want:     "just fewer lucky",
		},
		{
			name:     "determiner modifier retained",
			sentence: "the/DT less/JJR fortunate/JJ",
			want:     "the fewer fortunate",
		},
		{
			name:     "uppercase less",
			sentence: "WAY/RB LESS/JJR SAFE/JJ",
			want:     "WAY FEWER SAFE",
		},
		{
			name:     "title case mid-sentence",
			sentence: "is/VBZ Less/JJR Catholic/NNP",
			want:     "Fewer Catholic",
		},
		{
			name:     "title case at sentence start stays lowercase",
			sentence: "Less/JJR capable/JJ",
			want:     "fewer capable",
		},
		{
			name:     "head tag not eligible",
			sentence: "less/JJR the/DT merrier/JJR",
			want:     "",
		},
		{
			name:     "mass noun head accepted despite tag",
			sentence: "want/VBP less/JJR mathematics/NNS",
			want:     "fewer mathematics",
		},
		{
			name:     "head must be alphabetic",
			sentence: "less/JJR win-win/JJ talk/NN",
			want:     "",
		},
		{
			name:     "internal slashes ignored in head",
			sentence: "less/JJR he/she/JJ drama/VBG",
			want:     "fewer he/she",
		},
		{
			name:     "trailing noun rejects",
			sentence: "less/JJR lonely/JJ girl/NN",
			want:     "",
		},
		{
			name:     "trailing noun past adjective chain rejects",
			sentence: "less/JJR happy/JJ fluffy/JJ sheep/NN",
			want:     "",
		},
		{
			name:     "trailing cardinal rejects",
			sentence: "less/JJR spicy/JJ 10/CD wings/NNS",
			want:     "",
		},
		{
			name:     "emoticon tagged NN is not nounish",
			sentence: "less/JJR happy/JJ :)/NN",
			want:     "fewer happy",
		},
		{
			name:     "scan stops at non-adjective",
			sentence: "less/JJR popular/JJ but/CC whatsapp/NNP is/VBZ open/JJ",
			want:     "fewer popular",
		},
		{
			name:     "less as final token",
			sentence: "I/PRP want/VBP less/JJR",
			want:     "",
		},
		{
			name:     "unknown tag head rejected",
			sentence: "less/JJR ???/XYZ",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sent := tagged(t, tt.sentence)
			got, ok := Match(sent, lessIndex(t, sent), lex)
			if tt.want == "" {
				assert.False(t, ok, "expected no match, got %q", got)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch_OutOfRangeIndex(t *testing.T) {
	lex := testLexicon()
	sent := tagged(t, "less/JJR capable/JJ")

	_, ok := Match(sent, -1, lex)
	assert.False(t, ok)
	_, ok = Match(sent, len(sent), lex)
	assert.False(t, ok)
}

func TestMatch_CouldCareNeedsFullPhrase(t *testing.T) {
	lex := testLexicon()

	// "care less" without "could" falls through to the general path
	sent := tagged(t, "care/VBP less/JJR")
	_, ok := Match(sent, 1, lex)
	assert.False(t, ok, "bare 'care less' should not trigger the idiom")
}
