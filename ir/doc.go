// Package ir provides the intermediate representation (IR) for JSON
// documents.
//
// All documents, whether parsed from text or built from host values, are
// represented as ir.Node trees. A Node is a recursive tagged union: the
// Type field selects which value field is meaningful.
//
//   - NullType: null
//   - BoolType: boolean (Bool)
//   - IntType: signed 64-bit integer (Int)
//   - UintType: unsigned 64-bit integer above the signed range (Uint)
//   - FloatType: 64-bit IEEE float (Float)
//   - StringType: string (String)
//   - ArrayType: ordered list (Values)
//   - ObjectType: ordered key-value pairs (Keys, Values)
//
// Objects preserve source order and may contain duplicate keys; consumers
// that need map semantics decide how to collapse them.
//
// Node trees are not safe for concurrent mutation; clone per goroutine if
// needed.
//
// # Related Packages
//
//   - github.com/yyjson-go/yyjson/parse - Parses text into IR nodes
//   - github.com/yyjson-go/yyjson/encode - Encodes IR nodes to text
//   - github.com/yyjson-go/yyjson/build - Converts IR nodes to host values
//   - github.com/yyjson-go/yyjson/dump - Converts host values to IR nodes
package ir
