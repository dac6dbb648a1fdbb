package document

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Record is one instance of data for a pattern: field name to raw value.
// Raw values are whatever the decoder produced (int, float64, string, bool or nil).
type Record map[string]any

// Value returns the raw value stored under name and whether the field is present.
func (r Record) Value(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// Document is a parsed input document. It is read-only once parsed.
type Document struct {
	path string
	root map[string]any
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}

		return nil, err
	}

	doc.path = path

	return doc, nil
}

// Parse parses YAML data into a Document. JSON input is accepted as well,
// since every JSON document is valid YAML.
func Parse(data []byte) (*Document, error) {
	var root map[string]any

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Err: err}
	}

	if root == nil {
		return nil, &ParseError{Err: errEmptyDocument}
	}

	return &Document{root: root}, nil
}

// Path returns the file the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// Root returns the whole top level of the document as a single record.
func (d *Document) Root() Record {
	return Record(d.root)
}

// Section returns the raw value stored under key.
func (d *Document) Section(key string) (any, error) {
	v, ok := d.root[key]
	if !ok {
		return nil, &MissingSectionError{Section: key}
	}

	return v, nil
}

// Records converts a section value into an ordered list of records.
// A nil section (an explicitly empty key) yields no records.
func Records(pattern string, data any) ([]Record, error) {
	if data == nil {
		return nil, nil
	}

	items, ok := data.([]any)
	if !ok {
		return nil, &ShapeError{Pattern: pattern, Want: "sequence", Got: data}
	}

	out := make([]Record, 0, len(items))

	for i, item := range items {
		rec, err := AsRecord(pattern, item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		out = append(out, rec)
	}

	return out, nil
}

// AsRecord converts a raw mapping value into a Record.
func AsRecord(pattern string, data any) (Record, error) {
	switch m := data.(type) {
	case Record:
		return m, nil
	case map[string]any:
		return Record(m), nil
	default:
		return nil, &ShapeError{Pattern: pattern, Want: "mapping", Got: data}
	}
}
