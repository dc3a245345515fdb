package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/yyjson-go/yyjson/encode"
	"github.com/yyjson-go/yyjson/opts"
	"github.com/yyjson-go/yyjson/parse"
)

type MainConfig struct {
	Pretty bool `cli:"name=pretty aliases=p desc='indented output'"`
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='spec JSON only'"`
	Rails  bool `cli:"name=rails desc='symbolized keys, HTML-safe output'"`

	Mode *opts.Mode

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) modeOpt(_ *cli.Context, a string) (any, error) {
	m, err := opts.ParseMode(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Mode = &m
	return m, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) options() []opts.Option {
	var res []opts.Option
	switch {
	case cfg.Strict:
		res = append(res, opts.WithMode(opts.Strict))
	case cfg.Rails:
		res = append(res, opts.WithMode(opts.Rails))
	}
	if cfg.Mode != nil {
		res = append(res, opts.WithMode(*cfg.Mode))
	}
	if cfg.Pretty {
		res = append(res, opts.Pretty(true))
	}
	return res
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	po := opts.ResolveParse(cfg.options()...)
	return []parse.ParseOption{
		parse.AllowComments(po.AllowComments),
		parse.AllowInfAndNaN(po.AllowNaN),
		parse.MaxDepth(po.MaxNesting),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	do := opts.ResolveDump(cfg.options()...)
	res := []encode.EncodeOption{
		encode.Pretty(do.Pretty),
		encode.Indent(do.Indent),
		encode.EscapeSlashes(do.EscapeSlash),
		encode.AllowInfAndNaN(do.AllowNaN),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) escapeHTML() bool {
	return opts.ResolveDump(cfg.options()...).EscapeHTML
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}
