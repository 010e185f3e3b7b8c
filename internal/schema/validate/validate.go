package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dshills/memogen/internal/schema"
)

// document mirrors schema.TraceDocument with a pointer so a missing
// "entries" key can be told apart from an empty list.
type document struct {
	Entries *[]schema.TraceEntry `json:"entries"`
}

// Parse decodes a written trace document and validates its structure.
// Unknown keys, a missing "entries" key, integers that do not fit their
// width and register indices outside 0..31 are rejected.
func Parse(raw []byte) (*schema.TraceDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var d document
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("JSON parse failed: %w", err)
	}
	if dec.More() {
		return nil, errors.New("JSON parse failed: trailing data after document")
	}
	if d.Entries == nil {
		return nil, errors.New(`missing "entries" key`)
	}

	doc := &schema.TraceDocument{Entries: *d.Entries}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func validateDocument(doc *schema.TraceDocument) error {
	for i, e := range doc.Entries {
		if err := validateEntry(e, i); err != nil {
			return err
		}
	}
	return nil
}

func validateEntry(e schema.TraceEntry, idx int) error {
	prefix := fmt.Sprintf("entries[%d]", idx)

	if e.Writes == nil {
		return fmt.Errorf("%s: writes is required", prefix)
	}
	for j, w := range e.Writes {
		if w.Reg > schema.MaxReg {
			return fmt.Errorf("%s.writes[%d]: reg %d out of range 0..%d", prefix, j, w.Reg, schema.MaxReg)
		}
	}
	return nil
}
