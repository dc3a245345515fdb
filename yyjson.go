// Package yyjson is a fast bidirectional codec between host values and
// JSON text, with named compatibility modes (strict, compat, rails,
// object, custom) whose defaults can be overridden per call.
//
// # Usage
//
//	v, err := yyjson.Load([]byte(`{"a":1,"b":[1,2,3]}`))
//
//	d, err := yyjson.Dump(v, opts.WithMode(opts.Rails))
//
//	v, err := yyjson.LoadFile("config.json", opts.SymbolizeNames(true))
//
// Load and Dump are aliased by Parse and Generate for JSON-gem style
// callers.
package yyjson

import (
	"github.com/yyjson-go/yyjson/build"
	"github.com/yyjson-go/yyjson/debug"
	"github.com/yyjson-go/yyjson/dump"
	"github.com/yyjson-go/yyjson/encode"
	"github.com/yyjson-go/yyjson/ir"
	"github.com/yyjson-go/yyjson/opts"
	"github.com/yyjson-go/yyjson/parse"
)

// Load parses JSON text into a host value.
func Load(d []byte, options ...opts.Option) (any, error) {
	o := opts.ResolveParse(options...)
	node, err := parse.Parse(d,
		parse.AllowComments(o.AllowComments),
		parse.AllowInfAndNaN(o.AllowNaN),
		parse.MaxDepth(o.MaxNesting),
	)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %v\n", node)
	}
	return build.Build(node, o)
}

// Parse is Load, for JSON-gem compatibility.
func Parse(d []byte, options ...opts.Option) (any, error) {
	return Load(d, options...)
}

// LoadString is Load over a string.
func LoadString(s string, options ...opts.Option) (any, error) {
	return Load([]byte(s), options...)
}

// Dump generates JSON text from a host value.
func Dump(v any, options ...opts.Option) ([]byte, error) {
	o := opts.ResolveDump(options...)
	node, err := dump.Dump(v, o)
	if err != nil {
		return nil, err
	}
	if debug.Dump() {
		debug.Logf("dump: %v\n", node)
	}
	d, err := encode.EncodeBytes(node, encodeOpts(o)...)
	if err != nil {
		return nil, err
	}
	if o.EscapeHTML {
		d = encode.EscapeHTML(d)
	}
	return d, nil
}

// Generate is Dump, for JSON-gem compatibility.
func Generate(v any, options ...opts.Option) ([]byte, error) {
	return Dump(v, options...)
}

// DumpString is Dump returning a string.
func DumpString(v any, options ...opts.Option) (string, error) {
	d, err := Dump(v, options...)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// Import converts an already-parsed node tree into a host value.
func Import(node *ir.Node, options ...opts.Option) (any, error) {
	return build.Build(node, opts.ResolveParse(options...))
}

// Export converts a host value into a buildable node tree without
// serializing it.
func Export(v any, options ...opts.Option) (*ir.Node, error) {
	return dump.Dump(v, opts.ResolveDump(options...))
}

func encodeOpts(o *opts.DumpOptions) []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.Pretty(o.Pretty),
		encode.Indent(o.Indent),
		encode.EscapeSlashes(o.EscapeSlash),
		encode.AllowInfAndNaN(o.AllowNaN),
	}
}
