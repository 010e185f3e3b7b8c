package main

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/dshills/memogen/internal/entry"
	"github.com/dshills/memogen/internal/fixture"
	"github.com/dshills/memogen/internal/render"
	"github.com/dshills/memogen/internal/schema"
	"github.com/dshills/memogen/internal/writer"
)

func runGenerate(log *zap.Logger, fs afero.Fs, flags generateFlags) error {
	renderer, err := render.NewRenderer(flags.format)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	doc, err := buildDocument(log, flags.sourceFlags)
	if err != nil {
		return err
	}

	out, err := renderer.Render(&doc)
	if err != nil {
		return codeError(1, "rendering document: %s", err)
	}

	if err := writer.Emit(fs, flags.out, out); err != nil {
		return codeError(4, "%s", err)
	}

	entries, writes := doc.Counts()
	log.Info("Wrote fixture document",
		zap.String("path", flags.out),
		zap.String("format", flags.format),
		zap.Int("entries", entries),
		zap.Int("writes", writes),
		zap.Int("bytes", len(out)),
		zap.String("sha256", fmt.Sprintf("%x", sha256.Sum256(out))))
	return nil
}

// buildDocument returns the document selected by src: the YAML fixture file
// when one is named, the built-in set otherwise.
func buildDocument(log *zap.Logger, src sourceFlags) (schema.TraceDocument, error) {
	if src.fixtures == "" {
		log.Debug("Using built-in fixture set", zap.String("set", src.set))
		doc, err := fixture.Get(src.set)
		if err != nil {
			return schema.TraceDocument{}, codeError(3, "%s", err)
		}
		return doc, nil
	}

	f, err := fixture.Load(src.fixtures)
	if err != nil {
		return schema.TraceDocument{}, codeError(3, "loading fixtures: %s", err)
	}
	log.Debug("Loaded fixture file",
		zap.String("path", f.Path),
		zap.String("hash", f.Hash),
		zap.Int("entries", len(f.Inputs)),
		zap.Bool("strict", src.strict))

	doc, err := f.Build(src.strict)
	if err != nil {
		var re *entry.RangeError
		if errors.As(err, &re) {
			log.Debug("Fixture value out of range", zap.String("field", re.Field), zap.Int64("value", re.Value))
		}
		return schema.TraceDocument{}, codeError(3, "building fixtures: %s", err)
	}
	return doc, nil
}
