// Package entry builds memo trace entries from raw register inputs.
package entry

import (
	"fmt"

	"github.com/dshills/memogen/internal/schema"
)

// ComputeContextHash fingerprints a calling context as ra ^ a0 ^ a1, masked
// to 32 bits. The result does not depend on argument order.
func ComputeContextHash(ra, a0, a1 uint64) uint32 {
	return uint32((ra ^ a0 ^ a1) & schema.Mask32)
}

// Build constructs a TraceEntry. writes is stored as given: same backing
// array, same order. No validation is performed.
func Build(startPC uint32, ra, a0, a1 uint64, writes []schema.RegWrite, nextPC uint32) schema.TraceEntry {
	return schema.TraceEntry{
		StartPC: startPC,
		CtxHash: ComputeContextHash(ra, a0, a1),
		Writes:  writes,
		NextPC:  nextPC,
	}
}

// Input is the raw, wide-integer form of one entry as read from a fixture file.
type Input struct {
	StartPC int64        `yaml:"start_pc"`
	RA      int64        `yaml:"ra"`
	A0      int64        `yaml:"a0"`
	A1      int64        `yaml:"a1"`
	Writes  []WriteInput `yaml:"writes"`
	NextPC  int64        `yaml:"next_pc"`
}

// WriteInput is the raw form of a register write.
type WriteInput struct {
	Reg int64 `yaml:"reg"`
	Val int64 `yaml:"val"`
}

// RangeError reports a field that does not fit its declared width.
type RangeError struct {
	Field string
	Value int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: value %d out of range 0..%d", e.Field, e.Value, e.Max)
}

// FromInput converts in to a TraceEntry. In lenient mode every 32-bit field
// is masked and reg is masked to 5 bits. In strict mode any value that would
// need masking is reported as a *RangeError instead.
func FromInput(in Input, strict bool) (schema.TraceEntry, error) {
	var (
		startPC, nextPC uint32
		err             error
	)
	if startPC, err = word("start_pc", in.StartPC, strict); err != nil {
		return schema.TraceEntry{}, err
	}
	for _, f := range []struct {
		name string
		v    int64
	}{{"ra", in.RA}, {"a0", in.A0}, {"a1", in.A1}} {
		if _, err := word(f.name, f.v, strict); err != nil {
			return schema.TraceEntry{}, err
		}
	}
	if nextPC, err = word("next_pc", in.NextPC, strict); err != nil {
		return schema.TraceEntry{}, err
	}

	writes := make([]schema.RegWrite, 0, len(in.Writes))
	for i, w := range in.Writes {
		field := fmt.Sprintf("writes[%d]", i)
		reg, err := register(field+".reg", w.Reg, strict)
		if err != nil {
			return schema.TraceEntry{}, err
		}
		val, err := word(field+".val", w.Val, strict)
		if err != nil {
			return schema.TraceEntry{}, err
		}
		writes = append(writes, schema.RegWrite{Reg: reg, Val: val})
	}

	return Build(startPC, uint64(in.RA), uint64(in.A0), uint64(in.A1), writes, nextPC), nil
}

func word(field string, v int64, strict bool) (uint32, error) {
	if strict && (v < 0 || v > schema.Mask32) {
		return 0, &RangeError{Field: field, Value: v, Max: schema.Mask32}
	}
	return uint32(uint64(v) & schema.Mask32), nil
}

func register(field string, v int64, strict bool) (uint8, error) {
	if strict && (v < 0 || v > schema.MaxReg) {
		return 0, &RangeError{Field: field, Value: v, Max: schema.MaxReg}
	}
	return uint8(uint64(v) & schema.MaxReg), nil
}
