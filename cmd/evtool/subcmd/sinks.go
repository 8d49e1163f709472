package subcmd

import (
	"github.com/juju/errors"
	"github.com/temoto/inputlinux/config"
	"github.com/temoto/inputlinux/input"
	"github.com/temoto/inputlinux/log2"
)

// OpenSinks builds output from config: output.path always,
// spool.path when spool is true, mqtt.broker when set.
func OpenSinks(log *log2.Log, c *config.Config, spool bool) (input.MultiSink, error) {
	format, err := input.ParseFormat(c.Output.Format)
	if err != nil {
		return nil, errors.Annotate(err, "config output.format")
	}
	sinks := make(input.MultiSink, 0, 3)
	out, err := input.CreateFileSink(c.Output.Path, format)
	if err != nil {
		return nil, err
	}
	sinks = append(sinks, out)

	if spool && c.Spool.Path != "" {
		s, err := input.OpenSpoolSink(c.Spool.Path)
		if err != nil {
			_ = sinks.Close()
			return nil, err
		}
		log.Debugf("output spool path=%s", c.Spool.Path)
		sinks = append(sinks, s)
	}

	if c.Mqtt.Broker != "" {
		mlog := log.Named("mqtt").Clone(log2.LInfo)
		if c.Mqtt.LogDebug {
			mlog.SetLevel(log2.LDebug)
		}
		m, err := input.NewMqttSink(mlog, input.MqttOptions{
			Broker:   c.Mqtt.Broker,
			Topic:    c.Mqtt.Topic,
			ClientID: c.Mqtt.ClientID,
			Qos:      byte(c.Mqtt.Qos),
			Retain:   c.Mqtt.Retain,
			LogDebug: c.Mqtt.LogDebug,
		})
		if err != nil {
			_ = sinks.Close()
			return nil, err
		}
		sinks = append(sinks, m)
	}
	return sinks, nil
}
