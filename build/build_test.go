package build

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yyjson-go/yyjson/ir"
	"github.com/yyjson-go/yyjson/opts"
	"github.com/yyjson-go/yyjson/value"
)

func TestBuildLeaves(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want any
	}{
		{name: "null", node: ir.Null(), want: nil},
		{name: "true", node: ir.FromBool(true), want: true},
		{name: "int", node: ir.FromInt(-7), want: int64(-7)},
		{name: "uint", node: ir.FromUint(18446744073709551615), want: uint64(18446744073709551615)},
		{name: "float", node: ir.FromFloat(0.5), want: 0.5},
		{name: "string", node: ir.FromString("hi"), want: "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.node, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildDocument(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromInt(1)},
		ir.KeyVal{Key: "b", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1), ir.FromInt(2), ir.FromInt(3),
		})},
	)
	got, err := Build(node, nil)
	require.NoError(t, err)
	m, ok := got.(*value.Map)
	require.True(t, ok, "got %T", got)
	require.Equal(t, 2, m.Len())

	a, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), a)

	b, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, b)
	assert.False(t, m.Frozen())
}

func TestBuildDuplicateKeys(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "dup", Val: ir.FromInt(1)},
		ir.KeyVal{Key: "dup", Val: ir.FromInt(2)},
	)
	got, err := Build(node, nil)
	require.NoError(t, err)
	m := got.(*value.Map)
	assert.Equal(t, 2, m.Len())
	v, _ := m.Get("dup")
	assert.Equal(t, int64(1), v, "Get returns the first entry")
}

func TestBuildSymbolizeNames(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "name", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "name", Val: ir.FromInt(1)},
		)},
	)
	got, err := Build(node, opts.ResolveParse(opts.SymbolizeNames(true)))
	require.NoError(t, err)
	m := got.(*value.Map)
	outerKey := m.Pairs()[0].Key
	require.IsType(t, value.Atom(""), outerKey)
	assert.Equal(t, value.Atom("name"), outerKey)

	inner := m.Pairs()[0].Val.(*value.Map)
	innerKey := inner.Pairs()[0].Key
	// the same key at any depth is the same atom
	assert.Equal(t, outerKey, innerKey)
}

func TestBuildFreeze(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "s", Val: ir.FromString("shared")},
		ir.KeyVal{Key: "inner", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "s", Val: ir.FromString("shared")},
		)},
	)
	got, err := Build(node, opts.ResolveParse(opts.Freeze(true)))
	require.NoError(t, err)
	m := got.(*value.Map)
	require.True(t, m.Frozen())

	inner, _ := m.Get("inner")
	require.True(t, inner.(*value.Map).Frozen(), "freeze applies at every depth")

	s1, _ := m.Get("s")
	s2, _ := inner.(*value.Map).Get("s")
	assert.Same(t, unsafe.StringData(s1.(string)), unsafe.StringData(s2.(string)),
		"equal frozen strings share one backing instance")
}

func TestBuildMaxNesting(t *testing.T) {
	nested := func(depth int) *ir.Node {
		node := ir.FromInt(1)
		for range depth {
			node = ir.FromSlice([]*ir.Node{node})
		}
		return node
	}
	_, err := Build(nested(100), opts.ResolveParse())
	require.NoError(t, err)

	_, err = Build(nested(101), opts.ResolveParse())
	require.ErrorIs(t, err, ir.ErrNestingTooDeep)

	_, err = Build(nested(300), opts.ResolveParse(opts.MaxNesting(0)))
	require.NoError(t, err)
}

func TestBuildNil(t *testing.T) {
	got, err := Build(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
