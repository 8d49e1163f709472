// Read input event records, pass them through kind filter to output,
// spool and mqtt.
package decode

import (
	"context"

	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"
	"github.com/temoto/inputlinux/cmd/evtool/subcmd"
	"github.com/temoto/inputlinux/config"
	"github.com/temoto/inputlinux/input"
)

var Mod = subcmd.Mod{Name: "decode", Usage: "read records from input.path, write to output/spool/mqtt", Main: Main}

func Main(ctx context.Context, c *config.Config, args []string) error {
	log := subcmd.Log(ctx)
	// arguments override input.path, "-" is stdin
	paths := args
	if len(paths) == 0 {
		paths = []string{c.Input.Path}
	}
	sources := make([]input.Source, 0, len(paths))
	for _, path := range paths {
		src, err := input.OpenFileSource(path, c.Strict)
		if err != nil {
			return err
		}
		defer src.Close()
		sources = append(sources, src)
	}

	filter, err := c.FilterKinds()
	if err != nil {
		return err
	}
	sinks, err := subcmd.OpenSinks(log, c, true)
	if err != nil {
		return err
	}

	d := input.NewDispatch(log, nil)
	d.SetFilter(filter)
	d.SubscribeSink("output", sinks)
	subcmd.SdNotify(log, daemon.SdNotifyReady)
	log.Debugf("decode sources=%d filter=%v", len(sources), c.Filter.Kinds)
	err = d.Run(sources)
	if cerr := sinks.Close(); err == nil {
		err = cerr
	}
	return errors.Annotate(err, "decode")
}
