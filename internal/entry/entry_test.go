package entry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/memogen/internal/schema"
)

func TestComputeContextHash_Scenarios(t *testing.T) {
	assert.Equal(t, uint32(0x00002005), ComputeContextHash(0x00002000, 5, 0))
	assert.Equal(t, uint32(0x0000400A), ComputeContextHash(0x00004000, 3, 9))
}

func TestComputeContextHash_OrderIndependent(t *testing.T) {
	inputs := [][3]uint64{
		{0x00002000, 5, 0},
		{0xDEADBEEF, 0x12345678, 0x0F0F0F0F},
		{0xFFFFFFFF, 0, 0xFFFFFFFF},
		{1 << 40, 7, 1<<33 | 3},
	}
	for _, in := range inputs {
		a, b, c := in[0], in[1], in[2]
		want := ComputeContextHash(a, b, c)
		perms := [][3]uint64{{a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a}}
		for _, p := range perms {
			if got := ComputeContextHash(p[0], p[1], p[2]); got != want {
				t.Errorf("ComputeContextHash(%#x, %#x, %#x) = %#x, want %#x", p[0], p[1], p[2], got, want)
			}
		}
	}
}

func TestComputeContextHash_MasksOverWidthInputs(t *testing.T) {
	// Bits above 31 never reach the result.
	assert.Equal(t, uint32(0x00000005), ComputeContextHash(1<<32, 5, 0))
	assert.Equal(t, uint32(0xFFFFFFFF), ComputeContextHash(^uint64(0), 0, 0))
	assert.Equal(t, ComputeContextHash(0x1234, 0, 0), ComputeContextHash(0xAB_0000_1234, 0, 0))
}

func TestBuild_Scenario1(t *testing.T) {
	writes := []schema.RegWrite{{Reg: 10, Val: 12}}
	e := Build(0x00001000, 0x00002000, 5, 0, writes, 0x00002000)

	assert.Equal(t, schema.TraceEntry{
		StartPC: 4096,
		CtxHash: 8197,
		Writes:  []schema.RegWrite{{Reg: 10, Val: 12}},
		NextPC:  8192,
	}, e)
}

func TestBuild_Scenario2(t *testing.T) {
	writes := []schema.RegWrite{{Reg: 10, Val: 42}, {Reg: 11, Val: 77}}
	e := Build(0x00003000, 0x00004000, 3, 9, writes, 0x00004000)

	assert.Equal(t, uint32(12288), e.StartPC)
	assert.Equal(t, uint32(16394), e.CtxHash)
	assert.Equal(t, uint32(16384), e.NextPC)
	assert.Equal(t, writes, e.Writes)
}

func TestBuild_WritesPassedThrough(t *testing.T) {
	writes := []schema.RegWrite{{Reg: 3, Val: 1}, {Reg: 1, Val: 2}, {Reg: 2, Val: 3}}
	e := Build(0, 0, 0, 0, writes, 0)

	require.Len(t, e.Writes, len(writes))
	assert.Same(t, &writes[0], &e.Writes[0], "writes must share the caller's backing array")
	assert.Equal(t, writes, e.Writes)
}

func TestBuild_NoValidation(t *testing.T) {
	e := Build(0, 0, 0, 0, []schema.RegWrite{{Reg: 200, Val: 1}}, 0)
	assert.Equal(t, uint8(200), e.Writes[0].Reg)
}

func TestFromInput_InRangeMatchesBuild(t *testing.T) {
	in := Input{
		StartPC: 0x3000, RA: 0x4000, A0: 3, A1: 9,
		Writes: []WriteInput{{Reg: 10, Val: 42}, {Reg: 11, Val: 77}},
		NextPC: 0x4000,
	}
	want := Build(0x3000, 0x4000, 3, 9, []schema.RegWrite{{Reg: 10, Val: 42}, {Reg: 11, Val: 77}}, 0x4000)

	for _, strict := range []bool{false, true} {
		got, err := FromInput(in, strict)
		require.NoError(t, err, "strict=%v", strict)
		assert.Equal(t, want, got, "strict=%v", strict)
	}
}

func TestFromInput_LenientMasks(t *testing.T) {
	in := Input{
		StartPC: 1<<32 | 0x10,
		RA:      -1,
		Writes:  []WriteInput{{Reg: 33, Val: -2}},
		NextPC:  0x1_0000_0020,
	}
	e, err := FromInput(in, false)
	require.NoError(t, err)

	assert.Equal(t, uint32(0x10), e.StartPC)
	assert.Equal(t, uint32(0xFFFFFFFF), e.CtxHash)
	assert.Equal(t, uint8(1), e.Writes[0].Reg)
	assert.Equal(t, uint32(0xFFFFFFFE), e.Writes[0].Val)
	assert.Equal(t, uint32(0x20), e.NextPC)
}

func TestFromInput_StrictRangeErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{"reg too high", Input{Writes: []WriteInput{{Reg: 0}, {Reg: 32}}}, "writes[1].reg"},
		{"negative reg", Input{Writes: []WriteInput{{Reg: -1}}}, "writes[0].reg"},
		{"negative start_pc", Input{StartPC: -4}, "start_pc"},
		{"wide next_pc", Input{NextPC: 1 << 32}, "next_pc"},
		{"wide ra", Input{RA: 1 << 33}, "ra"},
		{"negative a1", Input{A1: -9}, "a1"},
		{"wide val", Input{Writes: []WriteInput{{Reg: 5, Val: 1 << 32}}}, "writes[0].val"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromInput(tt.in, true)
			require.Error(t, err)
			var re *RangeError
			require.True(t, errors.As(err, &re), "want *RangeError, got %T", err)
			assert.Equal(t, tt.field, re.Field)
		})
	}
}

func TestFromInput_BoundaryValuesAccepted(t *testing.T) {
	in := Input{
		StartPC: 0xFFFFFFFF,
		Writes:  []WriteInput{{Reg: 0, Val: 0}, {Reg: 31, Val: 0xFFFFFFFF}},
	}
	e, err := FromInput(in, true)
	require.NoError(t, err)
	assert.Equal(t, uint8(31), e.Writes[1].Reg)
	assert.Equal(t, uint32(0xFFFFFFFF), e.StartPC)
}
