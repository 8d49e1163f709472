// Drain spool into output and mqtt.
package replay

import (
	"context"

	"github.com/juju/errors"
	"github.com/temoto/inputlinux/cmd/evtool/subcmd"
	"github.com/temoto/inputlinux/config"
	"github.com/temoto/inputlinux/input"
)

var Mod = subcmd.Mod{Name: "replay", Usage: "drain spool.path to output/mqtt, stop after spool.idle_sec", Main: Main}

func Main(ctx context.Context, c *config.Config, args []string) error {
	log := subcmd.Log(ctx)
	if c.Spool.Path == "" {
		return errors.NotValidf("replay requires spool.path")
	}
	src, err := input.OpenSpoolSource(c.Spool.Path, c.SpoolIdle(), c.Strict)
	if err != nil {
		return err
	}
	defer src.Close()

	filter, err := c.FilterKinds()
	if err != nil {
		return err
	}
	sinks, err := subcmd.OpenSinks(log, c, false)
	if err != nil {
		return err
	}

	d := input.NewDispatch(log, nil)
	d.SetFilter(filter)
	d.SubscribeSink("output", sinks)
	err = d.Run([]input.Source{src})
	if cerr := sinks.Close(); err == nil {
		err = cerr
	}
	return errors.Annotate(err, "replay")
}
