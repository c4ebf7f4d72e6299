package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagRoundTrip(t *testing.T) {
	for tag, name := range tagNames {
		assert.Equal(t, name, tag.String())
		assert.Equal(t, tag, TagFromString(name))
	}
}

func TestTagFromString_Unrecognised(t *testing.T) {
	assert.Equal(t, Unknown, TagFromString(""))
	assert.Equal(t, Unknown, TagFromString(","))
	assert.Equal(t, Unknown, TagFromString("NOTATAG"))
	assert.Equal(t, "?", Unknown.String())
}

func TestTagDollarVariants(t *testing.T) {
	assert.Equal(t, PRPS, TagFromString("PRP$"))
	assert.Equal(t, WPS, TagFromString("WP$"))
	assert.Equal(t, "PRP$", PRPS.String())
}
