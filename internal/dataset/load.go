package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DefaultSource is where the viewer looks for its dataset when none is given.
const DefaultSource = "data.json"

// maxDocumentSize bounds how much of a remote document is read.
const maxDocumentSize = 512 << 20

// Load fetches and parses the dataset document once. source is either a
// local path or an http(s) URL. There is no retry; any failure leaves the
// caller without a dataset.
func Load(ctx context.Context, source string) (*Dataset, error) {
	var (
		data []byte
		err  error
	)
	if isURL(source) {
		data, err = fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("loading dataset from %s: %w", source, err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading dataset from %s: %w", source, err)
	}
	return d, nil
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
}
