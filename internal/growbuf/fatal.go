package growbuf

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/sailfishos-mirror/glib/internal/debugenv"
	"github.com/sailfishos-mirror/glib/internal/logger"
)

// fatalExitCode is the status used when growth would overflow.
const fatalExitCode = 2

var (
	exit           = os.Exit
	diag io.Writer = os.Stderr
)

// fatalf reports an unrecoverable condition and terminates the process.
func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.L.Error("growbuf: fatal error", "reason", msg)
	fmt.Fprintf(diag, "growbuf: fatal error: %s\n", msg)
	exit(fatalExitCode)
	panic("growbuf: " + msg)
}

var gcFriendly atomic.Bool

func init() {
	gcFriendly.Store(debugenv.Load().Has(debugenv.GCFriendly))
}

// GCFriendly reports whether vacated slots are scrubbed with zero values.
func GCFriendly() bool {
	return gcFriendly.Load()
}

// SetGCFriendly overrides the G_DEBUG=gc-friendly setting and returns the previous value.
func SetGCFriendly(on bool) bool {
	return gcFriendly.Swap(on)
}
