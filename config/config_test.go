package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/helpers"
	"github.com/temoto/inputlinux/log2"
)

func TestReadConfig(t *testing.T) {
	t.Parallel()

	type Case struct {
		name      string
		input     string
		check     func(testing.TB, *Config)
		expectErr string
	}
	cases := []Case{
		{"empty", "", func(t testing.TB, c *Config) {
			assert.False(t, c.Strict)
			assert.Equal(t, DefaultMqttTopic, c.Mqtt.Topic)
			assert.Equal(t, DefaultMqttClientID, c.Mqtt.ClientID)
			assert.Equal(t, time.Second, c.SpoolIdle())
			kinds, err := c.FilterKinds()
			require.NoError(t, err)
			assert.Nil(t, kinds)
		}, ""},

		{"values", `
log_debug = true
strict = true
input { path = "/tmp/capture.bin" }
output { path = "-" format = "hex" }
spool { path = "/var/spool/evtool" idle_sec = 3 }
mqtt {
	broker = "tcp://127.0.0.1:1883"
	topic = "kiosk/1/input"
	qos = 1
}
profile { dir = "/var/lib/evtool" }`,
			func(t testing.TB, c *Config) {
				assert.True(t, c.LogDebug)
				assert.True(t, c.Strict)
				assert.Equal(t, "/tmp/capture.bin", c.Input.Path)
				assert.Equal(t, "-", c.Output.Path)
				assert.Equal(t, "hex", c.Output.Format)
				assert.Equal(t, "/var/spool/evtool", c.Spool.Path)
				assert.Equal(t, 3*time.Second, c.SpoolIdle())
				assert.Equal(t, "tcp://127.0.0.1:1883", c.Mqtt.Broker)
				assert.Equal(t, "kiosk/1/input", c.Mqtt.Topic)
				assert.Equal(t, 1, c.Mqtt.Qos)
				assert.Equal(t, DefaultMqttClientID, c.Mqtt.ClientID)
				assert.Equal(t, "/var/lib/evtool", c.Profile.Dir)
			}, ""},

		{"filter", `filter { kinds = ["Key", "Synchronize"] }`,
			func(t testing.TB, c *Config) {
				kinds, err := c.FilterKinds()
				require.NoError(t, err)
				assert.Equal(t, []evcode.EventKind{evcode.EventSynchronize, evcode.EventKey}, kinds.Slice())
			}, ""},

		{"filter-invalid", `filter { kinds = ["Keyboard"] }`,
			func(t testing.TB, c *Config) {
				_, err := c.FilterKinds()
				assert.True(t, errors.IsNotValid(errors.Cause(err)), "err=%v", err)
			}, ""},

		{"include-optional", `
include "mqtt-qos-2" {}
include "non-exist" { optional = true }`,
			func(t testing.TB, c *Config) {
				assert.Equal(t, 2, c.Mqtt.Qos)
			}, ""},

		{"include-overwrites", `
mqtt { qos = 1 }
include "mqtt-qos-2" {}`,
			func(t testing.TB, c *Config) {
				assert.Equal(t, 2, c.Mqtt.Qos)
			}, ""},

		{"include-normalize", `
strict = true
include "./empty" {}`,
			func(t testing.TB, c *Config) {
				assert.True(t, c.Strict)
			}, ""},

		{"include-loop", `include "loop" {}`, nil, "config include loop: from=loop include=./loop"},

		{"include-required", `include "non-exist" {}`, nil, "config required name=non-exist path=etc/evtool/non-exist not found"},

		{"syntax", `input {`, nil, "config unmarshal source=test-inline"},
	}
	helpers.Shuffle(cases)
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			log := log2.NewTest(t, log2.LDebug)
			fs := NewFiles(fstest.MapFS{
				"etc/evtool/test-inline": {Data: []byte(c.input)},
				"etc/evtool/empty":       {},
				"etc/evtool/mqtt-qos-2":  {Data: []byte(`mqtt { qos = 2 }`)},
				"etc/evtool/loop":        {Data: []byte(`include "./loop" {}`)},
			}, "/")

			cfg, err := ReadConfig(log, fs, "etc/evtool/test-inline")
			if c.expectErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), c.expectErr)
				return
			}
			if c.check != nil {
				c.check(t, cfg)
			}
		})
	}
}

func TestReadConfigDefaultsOnly(t *testing.T) {
	t.Parallel()
	cfg, err := ReadConfig(log2.NewTest(t, log2.LDebug), NewFiles(fstest.MapFS{}, "."))
	require.NoError(t, err)
	assert.Equal(t, DefaultMqttTopic, cfg.Mqtt.Topic)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
}
