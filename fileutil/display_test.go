package fileutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilenameEncoding(t *testing.T) {
	for _, val := range []string{"", "@locale", "UTF-8", "utf8,ISO-8859-1", "no-such-charset"} {
		assert.Nil(t, parseFilenameEncoding(val), "value %q", val)
	}
	assert.NotNil(t, parseFilenameEncoding("ISO-8859-1,UTF-8"))
	assert.NotNil(t, parseFilenameEncoding(" windows-1252 "))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "/tmp/résumé.txt", displayName("/tmp/résumé.txt", nil))
	assert.Equal(t, "a�b", displayName("a\xffb", nil))

	latin1 := parseFilenameEncoding("ISO-8859-1")
	require.NotNil(t, latin1)
	assert.Equal(t, "café", displayName("caf\xe9", latin1))
}
