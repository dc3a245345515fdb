// Package debug provides stderr logging helpers for codec internals,
// gated by YYJSON_DEBUG_* environment variables. Node arguments are
// rendered as JSON text, colorized when stderr is a terminal.
package debug

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/yyjson-go/yyjson/encode"
	"github.com/yyjson-go/yyjson/ir"
)

type Node struct{ *ir.Node }

func (y Node) String() string {
	d, err := encode.EncodeBytes(y.Node, encodeOpts()...)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", y.Node)
	}
	return string(d)
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = Node{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func encodeOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Pretty(true),
		encode.AllowInfAndNaN(true),
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}
