package tables

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/pantrygraph/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when no decoder is registered for a file
// extension.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// Decoder reads a table from r. name becomes the table name.
type Decoder func(r io.Reader, name string) (*Table, error)

// FileLoader loads tables from files, choosing a decoder by extension.
// Relative ids are resolved against the base directory.
type FileLoader struct {
	base     string
	decoders map[string]Decoder
}

// Option configures a FileLoader.
type Option func(*FileLoader)

// WithDecoder registers d for files ending in ext (including the dot).
func WithDecoder(ext string, d Decoder) Option {
	return func(l *FileLoader) { l.decoders[strings.ToLower(ext)] = d }
}

// NewFileLoader creates a loader with CSV and YAML decoders registered.
func NewFileLoader(base string, opts ...Option) *FileLoader {
	l := &FileLoader{
		base: base,
		decoders: map[string]Decoder{
			".csv":  DecodeCSV,
			".yaml": DecodeYAML,
			".yml":  DecodeYAML,
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load implements Loader.
func (l *FileLoader) Load(ctx context.Context, id string) (*Table, error) {
	logger := ctxlog.FromContext(ctx)

	path := id
	if !filepath.IsAbs(path) && l.base != "" {
		path = filepath.Join(l.base, path)
	}
	decode, ok := l.decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table %s: %w", path, err)
	}
	defer f.Close()

	t, err := decode(f, id)
	if err != nil {
		return nil, fmt.Errorf("failed to decode table %s: %w", path, err)
	}
	logger.Debug("Loaded table.", "path", path, "rows", t.Len())
	return t, nil
}

// DecodeCSV reads comma-separated rows: the first field is the category and
// the remaining fields its members. Rows may have any number of fields; lines
// starting with '#' are comments.
func DecodeCSV(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	t := New(name)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 {
			continue
		}
		t.Add(record[0], record[1:]...)
	}
}

// DecodeYAML reads a mapping from category to a member list. A scalar value
// is a single member and a null value an empty row. Document order is kept.
func DecodeYAML(r io.Reader, name string) (*Table, error) {
	t := New(name)
	if err := yaml.NewDecoder(r).Decode(t); err != nil {
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		return nil, err
	}
	return t, nil
}

// UnmarshalYAML implements yaml.Unmarshaler so that row order follows the
// document.
func (t *Table) UnmarshalYAML(value *yaml.Node) error {
	if t.byCat == nil {
		t.byCat = make(map[string]int)
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: table must be a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		var category string
		if err := key.Decode(&category); err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
		var members []string
		switch val.Kind {
		case yaml.SequenceNode:
			if err := val.Decode(&members); err != nil {
				return fmt.Errorf("line %d: %w", val.Line, err)
			}
		case yaml.ScalarNode:
			if val.Tag != "!!null" {
				members = []string{val.Value}
			}
		default:
			return fmt.Errorf("line %d: members of %q must be a list", val.Line, category)
		}
		t.Add(category, members...)
	}
	return nil
}
