package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/dshills/memogen/internal/drift"
	"github.com/dshills/memogen/internal/render"
	"github.com/dshills/memogen/internal/writer"
)

// runVerify checks that path holds a valid document that survives a round
// trip unchanged and matches what generate would write for src.
func runVerify(log *zap.Logger, fs afero.Fs, path string, src sourceFlags) error {
	raw, err := writer.ReadDocument(fs, path)
	if err != nil {
		return codeError(4, "%s", err)
	}

	rt, err := drift.RoundTrip(raw)
	if err != nil {
		return codeError(3, "invalid document %s: %s", path, err)
	}
	if d := drift.Diff(string(raw), string(rt)); d != "" {
		fmt.Fprintf(os.Stderr, "# round trip of %s\n%s\n", path, d)
		return codeError(2, "%s is not in canonical form", path)
	}

	doc, err := buildDocument(log, src)
	if err != nil {
		return err
	}
	r, err := render.NewRenderer("json")
	if err != nil {
		return codeError(1, "%s", err)
	}
	want, err := r.Render(&doc)
	if err != nil {
		return codeError(1, "rendering document: %s", err)
	}
	if d := drift.Diff(string(want), string(raw)); d != "" {
		fmt.Fprintf(os.Stderr, "# drift in %s\n%s\n", path, d)
		return codeError(2, "%s differs from the generated document", path)
	}

	log.Info("Fixture document verified", zap.String("path", path), zap.Int("bytes", len(raw)))
	return nil
}
