// Package debug provides conditional debug logging for marylandplot.
//
// Debug logging is enabled by setting the MARYLANDPLOT_DEBUG environment
// variable, or by passing --log-file:
//
//	MARYLANDPLOT_DEBUG=1 marylandplot plot BRCA1
//
// Messages go to stderr unless SetOutput redirects them. Interactive
// sessions redirect them to the --log-file, or to marylandplot-debug.log in
// the temp directory, so the screen is not disturbed.
package debug

import (
	"io"
	"log"
	"os"
	"time"
)

const envVar = "MARYLANDPLOT_DEBUG"

var (
	enabled bool
	logger  = newLogger(os.Stderr)
)

func init() {
	if os.Getenv(envVar) != "" {
		enabled = true
	}
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "[MARYLANDPLOT_DEBUG] ", log.Ltime|log.Lmicroseconds)
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled
}

// SetEnabled allows programmatic control of debug logging.
func SetEnabled(e bool) {
	enabled = e
}

// SetOutput sends debug messages to w.
func SetOutput(w io.Writer) {
	logger = newLogger(w)
}

// Log writes a debug message if debug logging is enabled.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Printf("%s took %v", name, d)
}
