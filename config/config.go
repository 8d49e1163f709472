// Package config reads evtool settings from HCL files with includes.
package config

import (
	"path"
	"time"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"
	"github.com/temoto/inputlinux/bitmask"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/helpers"
	"github.com/temoto/inputlinux/log2"
)

const (
	DefaultOutputFormat = "text"
	DefaultMqttTopic    = "input/events"
	DefaultMqttClientID = "evtool"
	DefaultSpoolIdle    = time.Second
)

type Config struct {
	// includeSeen contains absolute paths to prevent include loops
	includeSeen map[string]struct{}
	// only used for Unmarshal, do not access
	XXX_Include []ConfigSource `hcl:"include"`

	LogDebug bool `hcl:"log_debug"`
	// Strict rejects records with out of range codes instead of passing
	// them on as unknown.
	Strict bool `hcl:"strict"`

	Input struct {
		Path string `hcl:"path"`
	} `hcl:"input"`
	Output struct {
		Path   string `hcl:"path"`
		Format string `hcl:"format"` // raw, hex or text
	} `hcl:"output"`
	Filter struct {
		Kinds []string `hcl:"kinds"`
	} `hcl:"filter"`
	Spool struct {
		Path    string `hcl:"path"`
		IdleSec int    `hcl:"idle_sec"`
	} `hcl:"spool"`
	Mqtt struct {
		Broker   string `hcl:"broker"`
		Topic    string `hcl:"topic"`
		ClientID string `hcl:"client_id"`
		Qos      int    `hcl:"qos"`
		Retain   bool   `hcl:"retain"`
		LogDebug bool   `hcl:"log_debug"`
	} `hcl:"mqtt"`
	Profile struct {
		Dir string `hcl:"dir"`
	} `hcl:"profile"`
}

type ConfigSource struct {
	Name     string `hcl:"name,key"`
	Optional bool   `hcl:"optional"`
}

// FilterKinds parses filter.kinds by name, see evcode.EventKind.String.
// Empty list gives nil, which means pass everything.
func (c *Config) FilterKinds() (*bitmask.Bitmask[evcode.EventKind], error) {
	if len(c.Filter.Kinds) == 0 {
		return nil, nil
	}
	m := bitmask.New[evcode.EventKind]()
	for _, name := range c.Filter.Kinds {
		kind, err := evcode.Parse[evcode.EventKind](name)
		if err != nil {
			return nil, errors.Annotate(err, "config filter.kinds")
		}
		m.Insert(kind)
	}
	return m, nil
}

// SpoolIdle is how long replay waits on an empty spool.
// Zero means default, negative waits forever.
func (c *Config) SpoolIdle() time.Duration {
	switch {
	case c.Spool.IdleSec == 0:
		return DefaultSpoolIdle
	case c.Spool.IdleSec < 0:
		return 0
	}
	return time.Duration(c.Spool.IdleSec) * time.Second
}

func (c *Config) read(log *log2.Log, fs *Files, source ConfigSource, errs *[]error) {
	norm := fs.Normalize(source.Name)
	if _, ok := c.includeSeen[norm]; ok {
		*errs = append(*errs, errors.Errorf("config duplicate source=%s", source.Name))
		return
	}
	log.Debugf("config reading source='%s' path=%s", source.Name, norm)
	c.includeSeen[source.Name] = struct{}{}
	c.includeSeen[norm] = struct{}{}

	bs, err := fs.ReadAll(norm)
	if bs == nil && err == nil {
		if !source.Optional {
			err = errors.NotFoundf("config required name=%s path=%s", source.Name, norm)
			*errs = append(*errs, err)
		}
		return
	}
	if err != nil {
		*errs = append(*errs, errors.Annotatef(err, "config source=%s", source.Name))
		return
	}

	err = hcl.Unmarshal(bs, c)
	if err != nil {
		err = errors.Annotatef(err, "config unmarshal source=%s content='%s'", source.Name, string(bs))
		*errs = append(*errs, err)
		return
	}

	var includes []ConfigSource
	includes, c.XXX_Include = c.XXX_Include, nil
	for _, include := range includes {
		includeNorm := fs.Normalize(include.Name)
		if _, ok := c.includeSeen[includeNorm]; ok {
			err = errors.Errorf("config include loop: from=%s include=%s", source.Name, include.Name)
			*errs = append(*errs, err)
			continue
		}
		c.read(log, fs, include, errs)
	}
}

func (c *Config) setDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if c.Mqtt.Topic == "" {
		c.Mqtt.Topic = DefaultMqttTopic
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = DefaultMqttClientID
	}
}

// ReadConfig merges names in order, later sources overwrite earlier.
// Zero names gives defaults.
// Relative includes resolve against the directory of the first name.
func ReadConfig(log *log2.Log, fs *Files, names ...string) (*Config, error) {
	if len(names) != 0 {
		fs = fs.at(names[0])
		names[0] = path.Base(names[0])
	}
	c := &Config{
		includeSeen: make(map[string]struct{}),
	}
	errs := make([]error, 0, 8)
	for _, name := range names {
		c.read(log, fs, ConfigSource{Name: name}, &errs)
	}
	c.setDefaults()
	return c, helpers.FoldErrors(errs)
}

func MustReadConfig(log *log2.Log, fs *Files, names ...string) *Config {
	c, err := ReadConfig(log, fs, names...)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	return c
}
