package fileutil

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// FilenameEncodingEnv names the character sets file names are stored in,
// comma separated. Only the first entry is used; "@locale" and UTF-8 mean
// names are taken as UTF-8.
const FilenameEncodingEnv = "G_FILENAME_ENCODING"

var filenameEncoding = sync.OnceValue(func() encoding.Encoding {
	return parseFilenameEncoding(os.Getenv(FilenameEncodingEnv))
})

// parseFilenameEncoding returns nil for UTF-8 and for unknown charsets.
func parseFilenameEncoding(val string) encoding.Encoding {
	name, _, _ := strings.Cut(val, ",")
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "", "@locale", "utf-8", "utf8":
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil
	}
	return enc
}

// DisplayName converts a file name into valid UTF-8 for messages and logs.
// Bytes that cannot be decoded become U+FFFD.
func DisplayName(name string) string {
	return displayName(name, filenameEncoding())
}

func displayName(name string, enc encoding.Encoding) string {
	if enc != nil {
		if s, _, err := transform.String(enc.NewDecoder(), name); err == nil {
			return s
		}
	}
	s, _, err := transform.String(runes.ReplaceIllFormed(), name)
	if err != nil {
		return name
	}
	return s
}
