// Type events, get records.
package compose

import (
	"context"
	"flag"
	"strings"
	"time"

	prompt "github.com/c-bata/go-prompt"
	"github.com/juju/errors"
	"github.com/temoto/inputlinux/cmd/evtool/subcmd"
	"github.com/temoto/inputlinux/config"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/event"
	"github.com/temoto/inputlinux/helpers/cli"
	"github.com/temoto/inputlinux/input"
	"github.com/temoto/inputlinux/log2"
)

const usage = `syntax: one event per line, same as decode text output
  [sec.usec] Kind Code [Value]
examples:
  Key A pressed
  Relative X -5
  Synchronize
  0.250000 Led CapsLock 1
  Absolute 0x35 120
`

const name = "compose"

var Mod = subcmd.Mod{Name: name, Usage: "read text events from stdin, write records to output/spool/mqtt", Main: Main}

func Main(ctx context.Context, c *config.Config, args []string) error {
	log := subcmd.Log(ctx)
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	zeroTime := flags.Bool("zero-time", false, "events without time get 0.000000 instead of now")
	if err := flags.Parse(args); err != nil {
		return err
	}
	now := func() event.EventTime { return event.EventTimeOf(time.Now()) }
	if *zeroTime {
		now = func() event.EventTime { return event.EventTime{} }
	}

	sinks, err := subcmd.OpenSinks(log, c, true)
	if err != nil {
		return err
	}
	d := input.NewDispatch(log, nil)
	d.SubscribeSink("output", sinks)
	runErr := make(chan error, 1)
	go func() { runErr <- d.Run(nil) }()

	err = cli.MainLoop("evtool", newExecutor(log, d, now, c.Strict), newCompleter(), d.Stop)
	if rerr := <-runErr; err == nil {
		err = rerr
	}
	if cerr := sinks.Close(); err == nil {
		err = cerr
	}
	return errors.Annotate(err, "compose")
}

func newExecutor(log *log2.Log, d *input.Dispatch, now func() event.EventTime, strict bool) func(string) {
	return func(line string) {
		if strings.TrimSpace(line) == "help" {
			log.Infof(usage)
			return
		}
		e, err := ParseLine(line, now, strict)
		if err != nil {
			log.Error(errors.ErrorStack(err))
			return
		}
		if !d.Emit(e) {
			log.Errorf("compose stopped, dropped event=%s", e)
		}
	}
}

func newCompleter() func(d prompt.Document) []prompt.Suggest {
	kinds := []prompt.Suggest{{Text: "help", Description: "show syntax"}}
	for k := range evcode.All[evcode.EventKind]() {
		if _, ok := codeParsers[k]; ok {
			kinds = append(kinds, prompt.Suggest{Text: k.String()})
		}
	}
	kinds = append(kinds, prompt.Suggest{Text: evcode.EventUInput.String()})

	return func(d prompt.Document) []prompt.Suggest {
		words := strings.Fields(d.TextBeforeCursor())
		if len(words) == 0 || (len(words) == 1 && !strings.HasSuffix(d.TextBeforeCursor(), " ")) {
			return prompt.FilterHasPrefix(kinds, d.GetWordBeforeCursor(), true)
		}
		if _, ok := parseTime(words[0]); ok {
			words = words[1:]
		}
		if len(words) == 0 {
			return prompt.FilterHasPrefix(kinds, d.GetWordBeforeCursor(), true)
		}
		kind, err := parseKind(words[0])
		if err != nil {
			return nil
		}
		return prompt.FilterFuzzy(codeSuggests(kind), d.GetWordBeforeCursor(), true)
	}
}

func codeSuggests(kind evcode.EventKind) []prompt.Suggest {
	switch kind {
	case evcode.EventSynchronize:
		return suggests[evcode.SynchronizeKind]()
	case evcode.EventKey:
		return suggests[evcode.Key]()
	case evcode.EventRelative:
		return suggests[evcode.RelativeAxis]()
	case evcode.EventAbsolute:
		return suggests[evcode.AbsoluteAxis]()
	case evcode.EventSwitch:
		return suggests[evcode.SwitchKind]()
	case evcode.EventLed:
		return suggests[evcode.LedKind]()
	case evcode.EventSound:
		return suggests[evcode.SoundKind]()
	case evcode.EventAutorepeat:
		return suggests[evcode.AutorepeatKind]()
	}
	return nil
}

// named codes only
func suggests[T evcode.Code]() []prompt.Suggest {
	var out []prompt.Suggest
	for v := range evcode.All[T]() {
		if s := v.String(); !strings.HasPrefix(s, "Unknown") {
			out = append(out, prompt.Suggest{Text: s})
		}
	}
	return out
}
