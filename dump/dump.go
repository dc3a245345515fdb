// Package dump converts host values into IR nodes: the export half of the
// codec.
//
// A call-scoped session tracks nesting depth and the identity of every
// container on the active path, so ancestor cycles fail with a
// circular-reference error while sibling references to the same value are
// legal. Values outside the basic kinds are probed for the capability
// interfaces in package value.
package dump

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/yyjson-go/yyjson/ir"
	"github.com/yyjson-go/yyjson/opts"
	"github.com/yyjson-go/yyjson/value"
)

var errNonFinite = errors.New("NaN and Infinity not allowed in JSON")

// session is the per-call export state: a depth counter and the identity
// set of containers currently on the active path. Never reuse one across
// calls.
type session struct {
	o      *opts.DumpOptions
	depth  int
	active map[uintptr]struct{}
}

// Dump converts v into an ir.Node per o. A nil o means the Compat
// defaults.
func Dump(v any, o *opts.DumpOptions) (*ir.Node, error) {
	if o == nil {
		o = opts.DefaultDumpOptions()
	}
	s := &session{o: o, active: map[uintptr]struct{}{}}
	return s.dump(v)
}

func (s *session) dump(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint:
		return s.dumpUint(uint64(x))
	case uint64:
		return s.dumpUint(x)
	case float32:
		return s.dumpFloat(float64(x))
	case float64:
		return s.dumpFloat(x)
	case string:
		return ir.FromString(x), nil
	case value.Atom:
		return ir.FromString(string(x)), nil
	case []any:
		return s.dumpArr(x)
	case *value.Map:
		return s.dumpMap(x)
	case map[string]any:
		return s.dumpStringMap(x)
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	default:
		return s.dumpOpaque(v)
	}
}

func (s *session) dumpUint(u uint64) (*ir.Node, error) {
	if u > math.MaxInt64 {
		return ir.FromUint(u), nil
	}
	return ir.FromInt(int64(u)), nil
}

func (s *session) dumpFloat(f float64) (*ir.Node, error) {
	if (math.IsNaN(f) || math.IsInf(f, 0)) && !s.o.AllowNaN {
		return nil, ir.NewGenerateErr(errNonFinite)
	}
	return ir.FromFloat(f), nil
}

func (s *session) dumpArr(arr []any) (*ir.Node, error) {
	id := reflect.ValueOf(arr).Pointer()
	if err := s.enter(id); err != nil {
		return nil, err
	}
	res := ir.NewArray(len(arr))
	for _, el := range arr {
		y, err := s.dump(el)
		if err != nil {
			return nil, err
		}
		res.Append(y)
	}
	s.leave(id)
	return res, nil
}

func (s *session) dumpMap(m *value.Map) (*ir.Node, error) {
	id := reflect.ValueOf(m).Pointer()
	if err := s.enter(id); err != nil {
		return nil, err
	}
	res := ir.NewObject(m.Len())
	for k, v := range m.All() {
		y, err := s.dump(v)
		if err != nil {
			return nil, err
		}
		res.Add(s.keyString(k), y)
	}
	s.leave(id)
	return res, nil
}

// dumpStringMap handles plain Go maps; keys are emitted in sorted order
// since map iteration order is unspecified.
func (s *session) dumpStringMap(m map[string]any) (*ir.Node, error) {
	id := reflect.ValueOf(m).Pointer()
	if err := s.enter(id); err != nil {
		return nil, err
	}
	keys := slices.Sorted(maps.Keys(m))
	res := ir.NewObject(len(m))
	for _, k := range keys {
		y, err := s.dump(m[k])
		if err != nil {
			return nil, err
		}
		res.Add(k, y)
	}
	s.leave(id)
	return res, nil
}

// dumpOpaque handles values outside the basic kinds: date-like formatting
// capabilities first (preferring ISO-8601), then custom serialization,
// then generic string conversion.
//
// Basic kinds never reach this probe; that realizes the Compat/Rails
// fast path for values whose custom serialization would return the value
// itself.
func (s *session) dumpOpaque(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case value.ISO8601Formatter:
		return ir.FromString(x.ISO8601()), nil
	case value.XMLSchemaFormatter:
		return ir.FromString(x.XMLSchema()), nil
	case value.JSONValuer:
		return s.dump(x.AsJSON())
	case fmt.Stringer:
		return ir.FromString(x.String()), nil
	default:
		return ir.FromString(fmt.Sprint(v)), nil
	}
}

func (s *session) keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case value.Atom:
		return string(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(k)
	}
}

// enter checks the depth limit and the active path before descending into
// a container.
func (s *session) enter(id uintptr) error {
	s.depth++
	if s.o.MaxNesting > 0 && s.depth > s.o.MaxNesting {
		return ir.NewGenerateErr(fmt.Errorf("%w: nesting of %d is too deep", ir.ErrNestingTooDeep, s.depth))
	}
	if _, ok := s.active[id]; ok {
		return ir.NewGenerateErr(ir.ErrCircularReference)
	}
	s.active[id] = struct{}{}
	return nil
}

func (s *session) leave(id uintptr) {
	delete(s.active, id)
	s.depth--
}
