package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "mode",
			Aliases:     []string{"m"},
			Description: "compatibility mode: strict, compat, rails, object, custom",
			Type:        cli.NamedFuncOpt(cfg.modeOpt, "(mode)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "yyjson").
		WithSynopsis("yyjson [opts] command [opts]").
		WithDescription("yyjson is a tool for working with JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yyMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			CheckCommand(cfg),
			GetCommand(cfg))
}

func yyMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.Strict, cfg.Rails) > 1 {
		return fmt.Errorf("%w: must specify at most one of -strict -rails", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("reformat JSON documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("validate JSON documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return checkRun(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <key[.key...]> [files]").
		WithDescription("get object fields from documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return getRun(cfg, cc, args)
		})
}
