package monitoring

import (
	"encoding/json"
	"time"

	coremon "github.com/kilianp07/applog/core/monitoring"
	"github.com/kilianp07/applog/core/reportlog"
	"github.com/kilianp07/applog/infra/logger"
	"github.com/kilianp07/applog/infra/mqtt"
)

// MQTTReporter publishes reports as JSON to a broker topic.
type MQTTReporter struct {
	pub   mqtt.Publisher
	topic string
	log   logger.Logger
}

// NewMQTTReporter connects to the broker described by cfg.
func NewMQTTReporter(cfg mqtt.Config) (*MQTTReporter, error) {
	cli, err := mqtt.NewPahoClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewMQTTReporterWithPublisher(cli, cli.Topic()), nil
}

// NewMQTTReporterWithPublisher publishes through pub. An empty topic lets
// the publisher pick its default.
func NewMQTTReporterWithPublisher(pub mqtt.Publisher, topic string) *MQTTReporter {
	return &MQTTReporter{pub: pub, topic: topic, log: logger.New("mqtt-reporter")}
}

// Report publishes the report synchronously. Wrap it in an AsyncReporter to
// keep the caller off the network.
func (m *MQTTReporter) Report(r coremon.Report) {
	payload, err := json.Marshal(reportlog.FromReport(r))
	if err != nil {
		fail(m.log, "mqtt", err)
		return
	}
	if err := m.pub.Publish(m.topic, payload); err != nil {
		fail(m.log, "mqtt", err)
	}
}

func (m *MQTTReporter) Flush(time.Duration) bool { return true }

// Close disconnects from the broker.
func (m *MQTTReporter) Close() error {
	m.pub.Disconnect()
	return nil
}
