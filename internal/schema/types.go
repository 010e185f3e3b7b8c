package schema

// MaxReg is the highest register index a write may target.
const MaxReg = 31

// Mask32 masks a value to the 32-bit width of every address and register field.
const Mask32 = 0xFFFFFFFF

// TraceDocument is the top-level structure written to the fixture file.
type TraceDocument struct {
	Entries []TraceEntry `json:"entries"`
}

// TraceEntry is one synthetic execution-context snapshot.
// Field order fixes the JSON key order: start_pc, ctx_hash, writes, next_pc.
type TraceEntry struct {
	StartPC uint32     `json:"start_pc"`
	CtxHash uint32     `json:"ctx_hash"`
	Writes  []RegWrite `json:"writes"` // order as issued
	NextPC  uint32     `json:"next_pc"`
}

// RegWrite is a single register update. Reg is in 0..MaxReg.
type RegWrite struct {
	Reg uint8  `json:"reg"`
	Val uint32 `json:"val"`
}

// Counts returns the number of entries and the total number of register writes.
func (d *TraceDocument) Counts() (entries, writes int) {
	for _, e := range d.Entries {
		writes += len(e.Writes)
	}
	return len(d.Entries), writes
}

// Normalized returns a copy of d whose nil slices are replaced with empty
// ones, so the document renders "[]" instead of "null".
func (d TraceDocument) Normalized() TraceDocument {
	out := TraceDocument{Entries: make([]TraceEntry, len(d.Entries))}
	for i, e := range d.Entries {
		if e.Writes == nil {
			e.Writes = []RegWrite{}
		}
		out.Entries[i] = e
	}
	return out
}
