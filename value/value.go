// Package value defines the host value model the codec converts to and
// from: the Go-side rendering of parsed JSON documents.
//
// Parsed documents are built from untyped nil, bool, int64, uint64,
// float64, string, Atom, []any and *Map. Any other Go value is accepted on
// the dump side and probed for the capabilities below.
package value

import "errors"

// Atom is a symbol-like string token. Object keys become Atoms instead of
// strings when parsing with SymbolizeNames.
type Atom string

func (a Atom) String() string { return string(a) }

// ISO8601Formatter is implemented by date-like values that can render
// themselves as an ISO-8601 timestamp. It is preferred over
// XMLSchemaFormatter when both are present.
type ISO8601Formatter interface {
	ISO8601() string
}

// XMLSchemaFormatter is implemented by date-like values that can render
// themselves as an XML-schema timestamp.
type XMLSchemaFormatter interface {
	XMLSchema() string
}

// JSONValuer is implemented by values that customize their JSON form. The
// returned value is converted in place of the receiver and may itself be
// any dumpable value.
type JSONValuer interface {
	AsJSON() any
}

// ErrFrozen is returned when mutating a frozen Map.
var ErrFrozen = errors.New("map is frozen")

// IsBasic reports whether v is one of the directly-representable kinds:
// null, bool, integer, float, string, atom, array or map.
func IsBasic(v any) bool {
	switch v.(type) {
	case nil, bool, string, Atom,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		[]any, *Map, map[string]any:
		return true
	default:
		return false
	}
}
