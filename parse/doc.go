// Package parse parses JSON text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.AllowComments(true))
//
// Errors report the byte offset of the malformed input and match
// ir.ErrParse.
//
// # Related Packages
//
//   - github.com/yyjson-go/yyjson/ir - IR representation
//   - github.com/yyjson-go/yyjson/encode - Encode IR to text
//   - github.com/yyjson-go/yyjson/token - Tokenization
package parse
