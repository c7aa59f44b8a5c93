// Package debugenv reads the G_DEBUG environment variable.
//
// G_DEBUG holds a list of debug keys separated by any of ":;, \t". Keys are
// matched case-insensitively and "_" is treated like "-". The special key
// "all" enables every known key.
package debugenv

import (
	"os"
	"strings"
	"sync"
)

// EnvVar is the environment variable consulted by Load.
const EnvVar = "G_DEBUG"

// Flags is the set of debug keys understood by this module.
type Flags uint

const (
	// GCFriendly scrubs unused and vacated buffer memory with zeroes.
	GCFriendly Flags = 1 << iota
)

var keys = map[string]Flags{
	"gc-friendly": GCFriendly,
}

const allFlags = GCFriendly

// Parse converts a G_DEBUG style string into Flags. Unknown keys are ignored.
func Parse(s string) Flags {
	var f Flags
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(":;, \t", r)
	})
	for _, field := range fields {
		key := strings.ReplaceAll(strings.ToLower(field), "_", "-")
		if key == "all" {
			f |= allFlags
			continue
		}
		f |= keys[key]
	}
	return f
}

var (
	loadOnce sync.Once
	loaded   Flags
)

// Load parses EnvVar once per process and returns the cached result.
func Load() Flags {
	loadOnce.Do(func() {
		loaded = Parse(os.Getenv(EnvVar))
	})
	return loaded
}

// Has reports whether every flag in want is set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}
