package words

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	ErrMissingInput       = errors.New("no text or file given")
	ErrInvalidInputFormat = errors.New("invalid input format")
)

// Source is either bulk text or pre-counted words.
type Source struct {
	Text   string
	Counts map[string]float64
}

// Load reads the word source. Raw text takes precedence over path.
// Files ending in .csv or .tsv are read as delimited tables with a
// header row: one column is bulk text, two columns are word and count.
// Anything else is read as plain text.
func Load(text, path string) (Source, error) {
	if text != "" {
		return Source{Text: text}, nil
	}
	if path == "" {
		return Source{}, ErrMissingInput
	}
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("opening word source: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadDelimited(f, ',')
	case ".tsv":
		return ReadDelimited(f, '\t')
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return Source{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Source{Text: string(data)}, nil
}

// ReadDelimited parses a delimited table. The header decides the layout;
// more than two columns is ErrInvalidInputFormat.
func ReadDelimited(r io.Reader, comma rune) (Source, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return Source{}, fmt.Errorf("%w: empty table", ErrInvalidInputFormat)
	}
	if err != nil {
		return Source{}, fmt.Errorf("%w: %w", ErrInvalidInputFormat, err)
	}
	cols := len(header)
	if cols > 2 {
		return Source{}, fmt.Errorf("%w: %d columns, at most 2 allowed", ErrInvalidInputFormat, cols)
	}

	var text strings.Builder
	counts := map[string]float64{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Source{}, fmt.Errorf("%w: %w", ErrInvalidInputFormat, err)
		}
		if len(row) != cols {
			return Source{}, fmt.Errorf("%w: line %d has %d columns, header has %d",
				ErrInvalidInputFormat, line, len(row), cols)
		}
		if cols == 1 {
			text.WriteString(row[0])
			text.WriteByte('\n')
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return Source{}, fmt.Errorf("%w: line %d: count %q is not a number",
				ErrInvalidInputFormat, line, row[1])
		}
		counts[strings.TrimSpace(row[0])] += n
	}
	if cols == 1 {
		return Source{Text: text.String()}, nil
	}
	tracer().Debugf("read %d weighted words", len(counts))
	return Source{Counts: counts}, nil
}
