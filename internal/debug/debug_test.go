package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLogRespectsEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetEnabled(false)
	})

	SetEnabled(false)
	Log("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Log() wrote %q while disabled", buf.String())
	}

	SetEnabled(true)
	if !Enabled() {
		t.Fatal("Enabled() = false after SetEnabled(true)")
	}
	Log("shown %d", 2)
	LogTiming("load", 3*time.Millisecond)

	out := buf.String()
	for _, want := range []string{"[MARYLANDPLOT_DEBUG]", "shown 2", "load took 3ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
