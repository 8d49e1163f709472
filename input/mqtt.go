package input

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/juju/errors"
	"github.com/temoto/inputlinux/event"
	"github.com/temoto/inputlinux/log2"
)

const DefaultMqttTimeout = 10 * time.Second

type MqttOptions struct {
	Broker   string
	Topic    string
	ClientID string
	Qos      byte
	Retain   bool
	LogDebug bool
	Timeout  time.Duration
}

// subset of mqtt.Client, tests replace it
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

type client interface {
	publisher
	Connect() mqtt.Token
}

// MqttSink publishes each record as native bytes, one message per event.
type MqttSink struct {
	log     *log2.Log
	m       publisher
	topic   string
	qos     byte
	retain  bool
	timeout time.Duration
}

var _ Sink = new(MqttSink)

func NewMqttSink(log *log2.Log, opt MqttOptions) (*MqttSink, error) {
	if opt.Broker == "" {
		return nil, errors.NotValidf("mqtt broker=empty")
	}
	if opt.Qos > 2 {
		return nil, errors.NotValidf("mqtt qos=%d", opt.Qos)
	}
	mqtt.ERROR = log.Printer(log2.LError)
	mqtt.CRITICAL = log.Printer(log2.LError)
	mqtt.WARN = log.Printer(log2.LInfo)
	if opt.LogDebug {
		mqtt.DEBUG = log.Printer(log2.LDebug)
	}
	mopt := mqtt.NewClientOptions().
		AddBroker(opt.Broker).
		SetClientID(opt.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetOrderMatters(true).
		SetOnConnectHandler(func(mqtt.Client) { log.Infof("connect broker=%s", opt.Broker) }).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) { log.Errorf("disconnect err=%v", err) })
	return connectMqttSink(log, mqtt.NewClient(mopt), opt)
}

// connectMqttSink disconnects m when connect fails, so auto reconnect
// does not outlive the error.
func connectMqttSink(log *log2.Log, m client, opt MqttOptions) (*MqttSink, error) {
	self := newMqttSink(log, m, opt)
	if err := self.wait(m.Connect(), "connect"); err != nil {
		m.Disconnect(0)
		return nil, errors.Annotatef(err, "mqtt broker=%s", opt.Broker)
	}
	return self, nil
}

func newMqttSink(log *log2.Log, m publisher, opt MqttOptions) *MqttSink {
	if opt.Timeout == 0 {
		opt.Timeout = DefaultMqttTimeout
	}
	return &MqttSink{
		log:     log,
		m:       m,
		topic:   opt.Topic,
		qos:     opt.Qos,
		retain:  opt.Retain,
		timeout: opt.Timeout,
	}
}

func (self *MqttSink) Write(e event.Event) error {
	b := e.InputEvent().Bytes()
	err := self.wait(self.m.Publish(self.topic, self.qos, self.retain, b[:]), "publish")
	return errors.Annotatef(err, "mqtt topic=%s", self.topic)
}

func (self *MqttSink) Close() error {
	self.m.Disconnect(uint(self.timeout / time.Millisecond))
	return nil
}

func (self *MqttSink) wait(t mqtt.Token, op string) error {
	if !t.WaitTimeout(self.timeout) {
		return errors.Timeoutf("mqtt %s timeout=%v", op, self.timeout)
	}
	return t.Error()
}
