// Package build converts IR nodes into host values: the import half of
// the codec.
//
// Object keys are routed through a call-scoped interning cache so repeated
// keys within one document share a single atom. Conversion either succeeds
// fully or returns an error; no partial value is ever handed back.
package build

import (
	"fmt"
	"unique"

	"github.com/yyjson-go/yyjson/intern"
	"github.com/yyjson-go/yyjson/ir"
	"github.com/yyjson-go/yyjson/opts"
	"github.com/yyjson-go/yyjson/value"
)

type buildCtx struct {
	o        *opts.ParseOptions
	strCache *intern.Cache[string]
	symCache *intern.Cache[value.Atom]
}

// Build converts node into a host value per o. A nil o means the Compat
// defaults. The nesting ceiling is o.MaxNesting on this path too, so a
// tree accepted by parse.Parse with the same options always converts.
func Build(node *ir.Node, o *opts.ParseOptions) (any, error) {
	if o == nil {
		o = opts.DefaultParseOptions()
	}
	if node == nil {
		return nil, nil
	}
	// primitives need no caches
	if node.Type.IsLeaf() {
		return buildLeaf(node, o.Freeze), nil
	}
	ctx := &buildCtx{
		o:        o,
		strCache: intern.NewCache(mkString(o.Freeze)),
		symCache: intern.NewCache(mkAtom),
	}
	return ctx.build(node, 0)
}

func (c *buildCtx) build(node *ir.Node, depth int) (any, error) {
	switch node.Type {
	case ir.ArrayType:
		return c.buildArr(node, depth+1)
	case ir.ObjectType:
		return c.buildObj(node, depth+1)
	default:
		return buildLeaf(node, c.o.Freeze), nil
	}
}

func (c *buildCtx) buildArr(node *ir.Node, depth int) (any, error) {
	if err := c.checkDepth(depth); err != nil {
		return nil, err
	}
	// exact capacity up front, no incremental growth
	res := make([]any, len(node.Values))
	for i, el := range node.Values {
		v, err := c.build(el, depth)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func (c *buildCtx) buildObj(node *ir.Node, depth int) (any, error) {
	if err := c.checkDepth(depth); err != nil {
		return nil, err
	}
	n := len(node.Keys)
	pairs := make([]value.Pair, n)
	for i := range n {
		if c.o.SymbolizeNames {
			pairs[i].Key = c.symCache.Intern(node.Keys[i])
		} else {
			pairs[i].Key = c.strCache.Intern(node.Keys[i])
		}
		v, err := c.build(node.Values[i], depth)
		if err != nil {
			return nil, err
		}
		pairs[i].Val = v
	}
	m := value.NewMap(n)
	// bulk insertion, one call for all pairs
	if err := m.SetPairs(pairs); err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrDocBuild, err)
	}
	if c.o.Freeze {
		m.Freeze()
	}
	return m, nil
}

func (c *buildCtx) checkDepth(depth int) error {
	if c.o.MaxNesting > 0 && depth > c.o.MaxNesting {
		return fmt.Errorf("%w: nesting of %d is too deep", ir.ErrNestingTooDeep, depth)
	}
	return nil
}

func buildLeaf(node *ir.Node, freeze bool) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.IntType:
		return node.Int
	case ir.UintType:
		return node.Uint
	case ir.FloatType:
		return node.Float
	case ir.StringType:
		if freeze {
			return unique.Make(node.String).Value()
		}
		return node.String
	default:
		return nil
	}
}

// mkString produces the string-cache constructor. With freeze, strings are
// canonicalized through the process-wide unique pool so equal strings at
// any depth share one instance.
func mkString(freeze bool) func(string) string {
	if !freeze {
		return func(s string) string { return s }
	}
	return func(s string) string { return unique.Make(s).Value() }
}

// mkAtom interns atoms unconditionally; atoms are identity-shared tokens.
func mkAtom(s string) value.Atom {
	return value.Atom(unique.Make(s).Value())
}
