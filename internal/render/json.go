package render

import (
	"encoding/json"

	"github.com/dshills/memogen/internal/schema"
)

type jsonRenderer struct{}

// Render emits the document with 2-space indentation and no trailing newline.
// Empty slices are written as [] rather than null.
func (r *jsonRenderer) Render(doc *schema.TraceDocument) ([]byte, error) {
	return json.MarshalIndent(doc.Normalized(), "", "  ")
}
