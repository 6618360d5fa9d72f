package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"
)

// writeStructured prints v as indented JSON or as YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case OutputJSON:
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonBytes))
		return err
	case OutputYAML:
		yamlBytes, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling to YAML: %w", err)
		}
		_, err = w.Write(yamlBytes)
		return err
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func chartWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		termWidth = DefaultTerminalWidth
	}
	return termWidth - ChartWidthPadding
}
