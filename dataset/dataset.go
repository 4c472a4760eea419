package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format names an on-disk transaction layout.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatTidy Format = "tidy"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat reports a format name outside csv, tidy and json.
	ErrUnknownFormat = errors.New("dataset: unknown format")

	// ErrMalformed reports input that does not fit the requested layout.
	ErrMalformed = errors.New("dataset: malformed input")
)

// ParseFormat validates s as a Format. The empty string means FormatCSV.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatTidy, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options tunes the delimited readers. JSON ignores it.
type Options struct {
	// Delimiter separates cells. Zero picks '\t' for .tsv paths and ',' otherwise.
	Delimiter rune
	// Header skips the first row.
	Header bool
	// Comment starts lines to ignore; zero disables comments.
	Comment rune
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns comma-separated, headerless, comment-free input.
func DefaultOptions() Options {
	return Options{Delimiter: ',', Header: false, Comment: 0}
}

// WithDelimiter sets the cell separator. Panics on '\n', '\r' or the Unicode
// replacement character, which encoding/csv cannot use.
func WithDelimiter(r rune) Option {
	if r == '\n' || r == '\r' || r == 0xFFFD {
		panic(fmt.Sprintf("dataset: WithDelimiter(%q)", r))
	}
	return func(o *Options) { o.Delimiter = r }
}

// WithHeader skips the first row when h is true.
func WithHeader(h bool) Option {
	return func(o *Options) { o.Header = h }
}

// WithComment ignores lines starting with r.
func WithComment(r rune) Option {
	return func(o *Options) { o.Comment = r }
}

// Read decodes transactions from r in the given format.
func Read(r io.Reader, format Format, opts ...Option) ([][]string, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch format {
	case FormatCSV:
		return readBaskets(r, o)
	case FormatTidy:
		return readTidy(r, o)
	case FormatJSON:
		return readJSON(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ReadFile opens path and decodes it with Read. A .tsv extension selects a tab
// delimiter unless WithDelimiter overrides it.
func ReadFile(path string, format Format, opts ...Option) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		opts = append([]Option{WithDelimiter('\t')}, opts...)
	}

	txs, err := Read(f, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	return txs, nil
}

// FormatFromPath guesses the format from the file extension: .json is
// FormatJSON, everything else FormatCSV. Tidy files must be named explicitly.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatCSV
}
