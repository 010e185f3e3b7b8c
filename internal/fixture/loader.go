package fixture

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/memogen/internal/entry"
	"github.com/dshills/memogen/internal/schema"
)

// File holds a loaded YAML fixture file.
type File struct {
	Path   string
	Hash   string // "sha256:<hex>" of the raw file
	Inputs []entry.Input
}

type fileBody struct {
	Entries []entry.Input `yaml:"entries"`
}

// Load reads a YAML fixture file, hashes it, and decodes its entry inputs.
// Unknown keys are rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture file: %w", err)
	}

	sum := sha256.Sum256(data)
	f := &File{
		Path: path,
		Hash: fmt.Sprintf("sha256:%x", sum),
	}

	var body fileBody
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing fixture file %s: %w", path, err)
	}
	f.Inputs = body.Entries
	return f, nil
}

// Build converts every input, in file order, into a TraceDocument.
func (f *File) Build(strict bool) (schema.TraceDocument, error) {
	doc := schema.TraceDocument{Entries: make([]schema.TraceEntry, 0, len(f.Inputs))}
	for i, in := range f.Inputs {
		e, err := entry.FromInput(in, strict)
		if err != nil {
			return schema.TraceDocument{}, fmt.Errorf("entries[%d]: %w", i, err)
		}
		doc.Entries = append(doc.Entries, e)
	}
	return doc, nil
}
