package fixture

import (
	"github.com/dshills/memogen/internal/entry"
	"github.com/dshills/memogen/internal/schema"
)

// Sample returns the two reference memo entries. Each call allocates a fresh
// document, so callers may modify the result freely.
func Sample() schema.TraceDocument {
	return schema.TraceDocument{
		Entries: []schema.TraceEntry{
			entry.Build(0x00001000, 0x00002000, 5, 0,
				[]schema.RegWrite{{Reg: 10, Val: 12}},
				0x00002000),
			entry.Build(0x00003000, 0x00004000, 3, 9,
				[]schema.RegWrite{{Reg: 10, Val: 42}, {Reg: 11, Val: 77}},
				0x00004000),
		},
	}
}
