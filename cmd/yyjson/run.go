package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/yyjson-go/yyjson/encode"
	"github.com/yyjson-go/yyjson/ir"
	"github.com/yyjson-go/yyjson/parse"
)

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func parseArg(cfg *MainConfig, arg string) (*ir.Node, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

func writeNode(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	d, err := encode.EncodeBytes(node, cfg.encOpts(w)...)
	if err != nil {
		return err
	}
	if cfg.escapeHTML() {
		d = encode.EscapeHTML(d)
	}
	if _, err := w.Write(append(d, '\n')); err != nil {
		return err
	}
	return nil
}

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputs(args) {
		node, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := writeNode(cfg.MainConfig, cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}

func checkRun(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	bad := 0
	for _, arg := range inputs(args) {
		if _, err := parseArg(cfg.MainConfig, arg); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			bad++
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getRun(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	path := strings.Split(args[0], ".")
	for _, arg := range inputs(args[1:]) {
		node, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		for _, key := range path {
			if node.Type != ir.ObjectType {
				return fmt.Errorf("%s: %q is not an object field", arg, key)
			}
			if node = ir.Get(node, key); node == nil {
				return fmt.Errorf("%s: no field %q", arg, key)
			}
		}
		if err := writeNode(cfg.MainConfig, cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}
