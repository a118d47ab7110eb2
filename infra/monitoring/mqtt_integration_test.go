package monitoring

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/applog/core/reportlog"
	"github.com/kilianp07/applog/infra/mqtt"
	"github.com/kilianp07/applog/test/util"
)

func TestMQTTReporter_Mosquitto(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	broker, cleanup, err := util.StartMosquitto(ctx)
	if err != nil {
		t.Skipf("mosquitto unavailable: %v", err)
	}
	defer cleanup()

	msgs, unsubscribe, err := util.Subscribe(broker, "applog/it")
	require.NoError(t, err)
	defer unsubscribe()

	rep, err := NewMQTTReporter(mqtt.Config{Broker: broker, ClientID: "reporter-it", Topic: "applog/it", QoS: 1})
	require.NoError(t, err)
	defer func() { _ = rep.Close() }()

	r := sampleReport()
	rep.Report(r)

	select {
	case payload := <-msgs:
		var e reportlog.Entry
		require.NoError(t, json.Unmarshal(payload, &e))
		assert.Equal(t, r.ID, e.ID)
		assert.Equal(t, r.Message, e.Message)
	case <-time.After(10 * time.Second):
		t.Fatal("report not received from broker")
	}
}
