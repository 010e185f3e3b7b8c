package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/dshills/memogen/internal/schema"
)

type markdownRenderer struct{}

type mdView struct {
	Doc     *schema.TraceDocument
	Entries int
	Writes  int
}

var mdTemplate = template.Must(template.New("doc").Funcs(template.FuncMap{
	"hex": func(v uint32) string { return fmt.Sprintf("0x%08X", v) },
}).Parse(`# Memo Entries

**Entries:** {{ .Entries }} | **Register writes:** {{ .Writes }}
{{ if .Doc.Entries }}
| # | start_pc | ctx_hash | next_pc | writes |
|---|----------|----------|---------|--------|
{{ range $i, $e := .Doc.Entries }}| {{ $i }} | {{ hex $e.StartPC }} | {{ hex $e.CtxHash }} | {{ hex $e.NextPC }} |{{ range $e.Writes }} x{{ .Reg }}={{ .Val }}{{ end }} |
{{ end }}{{ else }}
*No entries.*
{{ end }}`))

func (r *markdownRenderer) Render(doc *schema.TraceDocument) ([]byte, error) {
	entries, writes := doc.Counts()
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, mdView{Doc: doc, Entries: entries, Writes: writes}); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
