package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/temoto/inputlinux/cmd/evtool/caps"
	"github.com/temoto/inputlinux/cmd/evtool/compose"
	"github.com/temoto/inputlinux/cmd/evtool/decode"
	"github.com/temoto/inputlinux/cmd/evtool/replay"
	"github.com/temoto/inputlinux/cmd/evtool/subcmd"
	"github.com/temoto/inputlinux/config"
	"github.com/temoto/inputlinux/log2"
)

var modules = []subcmd.Mod{
	decode.Mod,
	compose.Mod,
	caps.Mod,
	replay.Mod,
}

func main() {
	log := log2.NewStderr(log2.LInfo)
	log.SetFlags(log2.LInteractiveFlags)

	cmdline := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cmdline.Usage = func() {
		fmt.Fprintf(cmdline.Output(), "usage: %s [flags] command [args]\ncommands:\n%s\nflags:\n", os.Args[0], subcmd.Usage(modules))
		cmdline.PrintDefaults()
	}
	flagConfig := cmdline.String("config", "", "HCL config file, empty for defaults")
	flagDebug := cmdline.Bool("debug", false, "debug logging, overrides log_debug")
	flagStrict := cmdline.Bool("strict", false, "reject out of range codes, overrides strict")
	flagInput := cmdline.String("input", "", "overrides input.path, - is stdin")
	flagOutput := cmdline.String("output", "", "overrides output.path, - is stdout")
	flagFormat := cmdline.String("format", "", "overrides output.format: raw|hex|text")
	_ = cmdline.Parse(os.Args[1:])

	mod, err := subcmd.Parse(cmdline.Arg(0), modules)
	if err != nil {
		cmdline.Usage()
		log.Fatal(err)
	}

	if subcmd.SdNotify(log, "start") {
		// we're under systemd, assume systemd journal logging, remove timestamp
		log.SetFlags(log2.LServiceFlags)
	}

	var names []string
	if *flagConfig != "" {
		names = append(names, *flagConfig)
	}
	fs, err := config.OsFiles(".")
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	c := config.MustReadConfig(log, fs, names...)
	flagSet := make(map[string]bool)
	cmdline.Visit(func(f *flag.Flag) { flagSet[f.Name] = true })
	if flagSet["debug"] {
		c.LogDebug = *flagDebug
	}
	if flagSet["strict"] {
		c.Strict = *flagStrict
	}
	if flagSet["input"] {
		c.Input.Path = *flagInput
	}
	if flagSet["output"] {
		c.Output.Path = *flagOutput
	}
	if flagSet["format"] {
		c.Output.Format = *flagFormat
	}
	if c.LogDebug {
		log.SetLevel(log2.LDebug)
	}
	log.Debugf("config=%+v", c)

	ctx := context.WithValue(context.Background(), log2.ContextKey, log)
	if err := mod.Main(ctx, c, cmdline.Args()[1:]); err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
}
