// Learn, show and check device capability profiles.
package caps

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/temoto/inputlinux/caps"
	"github.com/temoto/inputlinux/cmd/evtool/subcmd"
	"github.com/temoto/inputlinux/config"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/event"
	"github.com/temoto/inputlinux/input"
	"github.com/temoto/inputlinux/log2"
)

const usage = `caps learn NAME [path...]  record kinds and codes seen in input into profile NAME
caps show NAME              print profile
caps check NAME [path...]   report input events not in profile`

var Mod = subcmd.Mod{Name: "caps", Usage: "learn|show|check capability profiles in profile.dir", Main: Main}

func Main(ctx context.Context, c *config.Config, args []string) error {
	log := subcmd.Log(ctx)
	if len(args) < 2 {
		return errors.NotValidf("arguments, usage:\n%s\n", usage)
	}
	store, err := caps.NewStore(c.Profile.Dir, log)
	if err != nil {
		return errors.Annotate(err, "config profile.dir")
	}
	verb, name, paths := args[0], args[1], args[2:]
	if len(paths) == 0 {
		paths = []string{c.Input.Path}
	}

	switch verb {
	case "learn":
		p, err := store.Load(name)
		if errors.IsNotFound(err) {
			p, err = caps.NewProfile(name), nil
		}
		if err != nil {
			return err
		}
		if err = readAll(c, paths, func(e event.Event) { Learn(log, p, e) }); err != nil {
			return err
		}
		if err = store.Save(p); err != nil {
			return err
		}
		return Show(os.Stdout, p)

	case "show":
		p, err := store.Load(name)
		if err != nil {
			return err
		}
		return Show(os.Stdout, p)

	case "check":
		p, err := store.Load(name)
		if err != nil {
			return err
		}
		total, bad := 0, 0
		err = readAll(c, paths, func(e event.Event) {
			total++
			if !p.Supports(e.InputEvent()) {
				bad++
				fmt.Fprintf(os.Stdout, "unsupported %s\n", e)
			}
		})
		if err != nil {
			return err
		}
		log.Infof("caps check profile=%s events=%d unsupported=%d", name, total, bad)
		if bad != 0 {
			return errors.Errorf("caps check profile=%s unsupported=%d", name, bad)
		}
		return nil
	}
	return errors.NotValidf("caps verb=%s usage:\n%s\n", verb, usage)
}

// Learn adds kind and code of e to p. Records outside bit buffers are logged and skipped.
func Learn(log *log2.Log, p *caps.Profile, e event.Event) {
	ie := e.InputEvent()
	if err := p.Insert(ie.Kind, ie.Code); err != nil {
		log.Errorf("caps learn skip event=%s err=%v", e, err)
	}
}

func readAll(c *config.Config, paths []string, fun input.EventFunc) error {
	for _, path := range paths {
		src, err := input.OpenFileSource(path, c.Strict)
		if err != nil {
			return err
		}
		for {
			e, err := src.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				src.Close()
				return errors.Annotatef(err, "input=%s", path)
			}
			fun(e)
		}
		src.Close()
	}
	return nil
}

func Show(w io.Writer, p *caps.Profile) error {
	var b strings.Builder
	fmt.Fprintf(&b, "profile %s\n", p.Name)
	if !p.Props.IsEmpty() {
		fmt.Fprintf(&b, "  properties %s\n", p.Props.String())
	}
	for kind := range p.Kinds().All() {
		if kind == evcode.EventSynchronize {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", kind, strings.Join(codeNames(p, kind), " "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func codeNames(p *caps.Profile, kind evcode.EventKind) []string {
	switch kind {
	case evcode.EventKey:
		return names[evcode.Key](p, kind)
	case evcode.EventRelative:
		return names[evcode.RelativeAxis](p, kind)
	case evcode.EventAbsolute:
		return names[evcode.AbsoluteAxis](p, kind)
	case evcode.EventMisc:
		return names[evcode.MiscKind](p, kind)
	case evcode.EventSwitch:
		return names[evcode.SwitchKind](p, kind)
	case evcode.EventLed:
		return names[evcode.LedKind](p, kind)
	case evcode.EventSound:
		return names[evcode.SoundKind](p, kind)
	case evcode.EventAutorepeat:
		return names[evcode.AutorepeatKind](p, kind)
	case evcode.EventForceFeedback:
		return names[evcode.ForceFeedbackKind](p, kind)
	case evcode.EventForceFeedbackStatus:
		return names[evcode.ForceFeedbackStatusKind](p, kind)
	}
	return []string{p.Bits(kind).String()}
}

func names[T evcode.Code](p *caps.Profile, kind evcode.EventKind) []string {
	var out []string
	for v := range caps.Codes[T](p, kind) {
		out = append(out, v.String())
	}
	return out
}
