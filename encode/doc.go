// Package encode encodes IR nodes to JSON text.
//
// # Usage
//
//	node := ir.FromKeyVals(
//	    ir.KeyVal{Key: "name", Val: ir.FromString("alice")},
//	    ir.KeyVal{Key: "age", Val: ir.FromInt(30)},
//	)
//	err := encode.Encode(node, w)
//
//	// Encode with options
//	err := encode.Encode(node, w, encode.Pretty(true), encode.Indent(2))
//
// # Related Packages
//
//   - github.com/yyjson-go/yyjson/ir - IR representation
//   - github.com/yyjson-go/yyjson/parse - Parse text to IR
package encode
