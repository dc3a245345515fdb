package ir

import (
	"maps"
	"slices"
)

// Node is a single JSON value. It works as a recursive tagged union
// structure, where values are placed in fields depending on the node type.
//
// For ObjectType nodes, Keys[i] is the key for the value at Values[i], so
// there are always as many keys as values. Key order is the order keys
// appeared in the source (parse side) or were added (build side); duplicate
// keys are representable.
type Node struct {
	Type   Type
	Keys   []string
	Values []*Node

	String string
	Bool   bool
	Int    int64
	Uint   uint64
	Float  float64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int = y.Int
	dst.Uint = y.Uint
	dst.Float = y.Float
	if y.Keys != nil {
		dst.Keys = slices.Clone(y.Keys)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int: v}
}

func FromUint(v uint64) *Node {
	return &Node{Type: UintType, Uint: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float: v}
}

func FromSlice(ys []*Node) *Node {
	return &Node{Type: ArrayType, Values: ys}
}

// NewArray returns an empty array node with capacity for n elements.
func NewArray(n int) *Node {
	return &Node{Type: ArrayType, Values: make([]*Node, 0, n)}
}

// NewObject returns an empty object node with capacity for n pairs.
func NewObject(n int) *Node {
	return &Node{
		Type:   ObjectType,
		Keys:   make([]string, 0, n),
		Values: make([]*Node, 0, n),
	}
}

func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

func (y *Node) Add(key string, v *Node) {
	y.Keys = append(y.Keys, key)
	y.Values = append(y.Values, v)
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs ...KeyVal) *Node {
	res := NewObject(len(kvs))
	for i := range kvs {
		res.Add(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// FromMap builds an object node with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := NewObject(len(yMap))
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Add(key, yMap[key])
	}
	return res
}

// Get returns the value for the first occurrence of field, or nil.
func Get(y *Node, field string) *Node {
	n := len(y.Keys)
	for i := range n {
		if y.Keys[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
