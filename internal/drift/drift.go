// Package drift compares a document on disk with the one memogen would
// generate now.
package drift

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/memogen/internal/render"
	"github.com/dshills/memogen/internal/schema/validate"
)

// Diff returns patch text turning expected into actual, computed line by
// line. It returns "" when the two are identical.
func Diff(expected, actual string) string {
	if expected == actual {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	diffs = dmp.DiffCleanupSemantic(diffs)

	return dmp.PatchToText(dmp.PatchMake(expected, diffs))
}

// RoundTrip parses raw as a trace document and renders it again as JSON.
// For a document memogen wrote, the result is byte-identical to raw.
func RoundTrip(raw []byte) ([]byte, error) {
	doc, err := validate.Parse(raw)
	if err != nil {
		return nil, err
	}
	r, err := render.NewRenderer("json")
	if err != nil {
		return nil, err
	}
	out, err := r.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("re-rendering document: %w", err)
	}
	return out, nil
}
