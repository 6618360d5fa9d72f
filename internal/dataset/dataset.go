// Package dataset holds the expression matrix the viewer works on: an ordered
// list of sample identifiers and, for every gene, one value per sample.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var (
	// ErrLengthMismatch is returned when a gene's series is not index-aligned
	// with the sample identifiers.
	ErrLengthMismatch = errors.New("series length does not match individuals")

	// ErrMalformed is returned when the document does not have the expected shape.
	ErrMalformed = errors.New("malformed dataset document")
)

// SampleID identifies one sample column. The document may carry identifiers
// either as JSON numbers or as JSON strings; both are kept verbatim.
type SampleID struct {
	text   string
	quoted bool
}

// NumericID returns a SampleID for a numeric identifier.
func NumericID(v float64) SampleID {
	return SampleID{text: strconv.FormatFloat(v, 'f', -1, 64)}
}

// StringID returns a SampleID for a textual identifier.
func StringID(s string) SampleID {
	return SampleID{text: s, quoted: true}
}

func (s SampleID) String() string {
	return s.text
}

// Float coerces the identifier to a number. Identifiers that do not parse
// as a number, including the empty string, yield NaN.
func (s SampleID) Float() float64 {
	t := strings.TrimSpace(s.text)
	if t == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (s *SampleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = StringID(text)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("sample identifier %s: %w", data, ErrMalformed)
	}
	*s = SampleID{text: num.String()}
	return nil
}

func (s SampleID) MarshalJSON() ([]byte, error) {
	if s.quoted {
		return json.Marshal(s.text)
	}
	return []byte(s.text), nil
}

func (s SampleID) MarshalYAML() (interface{}, error) {
	if s.quoted {
		return s.text, nil
	}
	return s.Float(), nil
}

// Dataset is immutable once constructed.
type Dataset struct {
	individuals []SampleID
	names       []string
	genes       map[string][]float64
}

// New validates and builds a Dataset. names fixes the gene order; every name
// must have a series in genes whose length equals len(individuals).
func New(individuals []SampleID, names []string, genes map[string][]float64) (*Dataset, error) {
	d := &Dataset{
		individuals: append([]SampleID(nil), individuals...),
		names:       make([]string, 0, len(names)),
		genes:       make(map[string][]float64, len(names)),
	}
	for _, name := range names {
		series, ok := genes[name]
		if !ok {
			return nil, fmt.Errorf("gene %q has no series: %w", name, ErrMalformed)
		}
		if len(series) != len(individuals) {
			return nil, fmt.Errorf("gene %q has %d values for %d individuals: %w",
				name, len(series), len(individuals), ErrLengthMismatch)
		}
		if _, dup := d.genes[name]; dup {
			continue
		}
		d.names = append(d.names, name)
		d.genes[name] = append([]float64(nil), series...)
	}
	return d, nil
}

// Individuals returns a copy of the sample identifiers in column order.
func (d *Dataset) Individuals() []SampleID {
	return append([]SampleID(nil), d.individuals...)
}

// Xs returns the sample identifiers coerced to numbers.
func (d *Dataset) Xs() []float64 {
	xs := make([]float64, len(d.individuals))
	for i, id := range d.individuals {
		xs[i] = id.Float()
	}
	return xs
}

// Names returns the gene names in document order.
func (d *Dataset) Names() []string {
	return append([]string(nil), d.names...)
}

// Series returns a copy of the values for a gene.
func (d *Dataset) Series(name string) ([]float64, bool) {
	series, ok := d.genes[name]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), series...), true
}

func (d *Dataset) Has(name string) bool {
	_, ok := d.genes[name]
	return ok
}

// Len is the number of genes.
func (d *Dataset) Len() int {
	return len(d.names)
}

// Samples is the number of sample columns.
func (d *Dataset) Samples() int {
	return len(d.individuals)
}

type document struct {
	Individuals []SampleID      `json:"individuals"`
	Genes       json.RawMessage `json:"genes"`
}

// Parse decodes a dataset document. Gene order follows the order of keys in
// the document.
func Parse(data []byte) (*Dataset, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	names, genes, err := decodeGenes(doc.Genes)
	if err != nil {
		return nil, err
	}
	return New(doc.Individuals, names, genes)
}

func decodeGenes(raw json.RawMessage) ([]string, map[string][]float64, error) {
	genes := make(map[string][]float64)
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, genes, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("decoding genes: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("genes must be an object: %w", ErrMalformed)
	}

	var names []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("decoding genes: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("gene name %v: %w", tok, ErrMalformed)
		}
		var series []float64
		if err := dec.Decode(&series); err != nil {
			return nil, nil, fmt.Errorf("decoding series for %q: %w", name, err)
		}
		if _, seen := genes[name]; !seen {
			names = append(names, name)
		}
		genes[name] = series
	}
	return names, genes, nil
}
