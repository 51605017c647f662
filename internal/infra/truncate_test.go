package infra

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateNameShortUnchanged(t *testing.T) {
	assert.Equal(t, "Basmati Rice 5kg", truncateName("Basmati Rice 5kg", 48))
}

func TestTruncateNameLongASCII(t *testing.T) {
	long := "Extra Long Premium Organic Basmati Rice Family Pack 25kg"
	got := truncateName(long, 48)
	assert.Len(t, []rune(got), 48)
	assert.Equal(t, long[:45]+"...", got)
}

func TestTruncateNameMultibyte(t *testing.T) {
	// Devanagari product names are three bytes per rune; truncation must cut
	// on rune boundaries and still yield valid UTF-8.
	long := "बासमती चावल प्रीमियम क्वालिटी पारिवारिक पैक पच्चीस किलो"
	assert.Greater(t, len([]rune(long)), 48, "fixture must exceed the cap")

	got := truncateName(long, 48)
	assert.True(t, utf8.ValidString(got))
	assert.Len(t, []rune(got), 48)
	assert.Equal(t, "...", got[len(got)-3:])
}

func TestTruncateNameExactBoundary(t *testing.T) {
	exact := make([]rune, 48)
	for i := range exact {
		exact[i] = 'x'
	}
	assert.Equal(t, string(exact), truncateName(string(exact), 48))
}
