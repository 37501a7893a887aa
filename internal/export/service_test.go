package export

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "abcd…", truncate("abcdef", 5))
	assert.Equal(t, "a", truncate("abc", 1))
	assert.Equal(t, "untouched", truncate("untouched", 0))
}

func TestTruncate_MultibyteStaysValidUTF8(t *testing.T) {
	// ä is two bytes; a byte-indexed cut would split it
	got := truncate("ääääää", 4)
	assert.Equal(t, "äää…", got)
	assert.True(t, utf8.ValidString(got))

	got = truncate("契約の自動更新条項", 5)
	assert.Equal(t, "契約の自…", got)
	assert.True(t, utf8.ValidString(got))
}
