package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/yyjson-go/yyjson/ir"
	"github.com/yyjson-go/yyjson/token"
)

type EncState struct {
	buf    []byte
	depth  int
	indent int

	pretty         bool
	escapeSlash    bool
	allowInfAndNaN bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as JSON text to w. Compact by default; see Pretty,
// Indent, EscapeSlashes and AllowInfAndNaN.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := EncodeBytes(node, opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return ir.NewGenerateErr(fmt.Errorf("%w: %v", ir.ErrWrite, err))
	}
	return nil
}

// EncodeBytes is Encode into a fresh byte slice.
func EncodeBytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, es); err != nil {
		return nil, err
	}
	return es.buf, nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	d, err := EncodeBytes(node, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(string(d))
}

func encode(node *ir.Node, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, es)
	case ir.ArrayType:
		return encodeArray(node, es)
	case ir.StringType:
		encodeString(node.String, ir.StringType, ValueColor, es)
		return nil
	case ir.IntType:
		writeValue(strconv.FormatInt(node.Int, 10), ir.IntType, es)
		return nil
	case ir.UintType:
		writeValue(strconv.FormatUint(node.Uint, 10), ir.UintType, es)
		return nil
	case ir.FloatType:
		return encodeFloat(node.Float, es)
	case ir.BoolType:
		writeValue(strconv.FormatBool(node.Bool), ir.BoolType, es)
		return nil
	case ir.NullType:
		writeValue("null", ir.NullType, es)
		return nil
	default:
		panic("type")
	}
}

func encodeFloat(f float64, es *EncState) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if !es.allowInfAndNaN {
			return ir.NewGenerateErr(ErrNonFinite)
		}
		switch {
		case math.IsNaN(f):
			writeValue("NaN", ir.FloatType, es)
		case f > 0:
			writeValue("Infinity", ir.FloatType, es)
		default:
			writeValue("-Infinity", ir.FloatType, es)
		}
		return nil
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// keep floats distinguishable from integers on the wire
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	writeValue(s, ir.FloatType, es)
	return nil
}

func encodeString(s string, t ir.Type, attr ColorAttr, es *EncState) {
	if es.Color == nil {
		es.buf = token.AppendQuoted(es.buf, s, es.escapeSlash)
		return
	}
	quoted := token.AppendQuoted(nil, s, es.escapeSlash)
	es.buf = append(es.buf, es.Color(t, attr, string(quoted))...)
}

func encodeObject(node *ir.Node, es *EncState) error {
	n := len(node.Keys)
	if n == 0 {
		writeSep("{}", node.Type, es)
		return nil
	}
	writeSep("{", node.Type, es)
	es.depth++
	for i := range n {
		if i > 0 {
			writeSep(",", node.Type, es)
		}
		writeNL(es)
		encodeString(node.Keys[i], ir.ObjectType, FieldColor, es)
		writeSep(":", node.Type, es)
		if es.pretty {
			es.buf = append(es.buf, ' ')
		}
		if err := encode(node.Values[i], es); err != nil {
			return err
		}
	}
	es.depth--
	writeNL(es)
	writeSep("}", node.Type, es)
	return nil
}

func encodeArray(node *ir.Node, es *EncState) error {
	n := len(node.Values)
	if n == 0 {
		writeSep("[]", node.Type, es)
		return nil
	}
	writeSep("[", node.Type, es)
	es.depth++
	for i := range n {
		if i > 0 {
			writeSep(",", node.Type, es)
		}
		writeNL(es)
		if err := encode(node.Values[i], es); err != nil {
			return err
		}
	}
	es.depth--
	writeNL(es)
	writeSep("]", node.Type, es)
	return nil
}

// Helper functions for writing

func writeNL(es *EncState) {
	if !es.pretty {
		return
	}
	es.buf = append(es.buf, '\n')
	for range es.depth * es.indent {
		es.buf = append(es.buf, ' ')
	}
}

func writeValue(s string, t ir.Type, es *EncState) {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	es.buf = append(es.buf, s...)
}

func writeSep(s string, t ir.Type, es *EncState) {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	es.buf = append(es.buf, s...)
}
