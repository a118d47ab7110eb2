package metrics_test

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/applog/core/factory"
	metrics "github.com/kilianp07/applog/core/metrics"
	_ "github.com/kilianp07/applog/infra/metrics"
)

/*
TestNewRecorder validates NewRecorder behavior with zero, one, and multiple configs.
Cases:
  - no config -> NopRecorder
  - one nop config -> NopRecorder
  - two configs -> MultiRecorder with two recorders
  - unknown type -> error
*/
func TestNewRecorder(t *testing.T) {
	r, err := metrics.NewRecorder(nil)
	if err != nil {
		t.Fatalf("create default: %v", err)
	}
	if _, ok := r.(metrics.NopRecorder); !ok {
		t.Fatalf("expected NopRecorder, got %T", r)
	}

	r, err = metrics.NewRecorder([]factory.ModuleConfig{{Type: "nop"}})
	if err != nil {
		t.Fatalf("create nop: %v", err)
	}
	if _, ok := r.(metrics.NopRecorder); !ok {
		t.Fatalf("expected NopRecorder, got %T", r)
	}

	r, err = metrics.NewRecorder([]factory.ModuleConfig{{Type: "nop"}, {Type: "nop"}})
	if err != nil {
		t.Fatalf("create multi: %v", err)
	}
	m, ok := r.(*metrics.MultiRecorder)
	if !ok {
		t.Fatalf("expected MultiRecorder, got %T", r)
	}
	if len(m.Recorders) != 2 {
		t.Fatalf("expected 2 recorders, got %d", len(m.Recorders))
	}

	if _, err := metrics.NewRecorder([]factory.ModuleConfig{{Type: "missing"}}); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

// Test decoding from YAML with multiple sinks and from JSON with an invalid type.
func TestConfigDecode(t *testing.T) {
	data := `sinks:
  - type: nop
  - type: nop
`
	var cfg metrics.Config
	if err := yaml.Unmarshal([]byte(data), &cfg); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	if len(cfg.Sinks) != 2 {
		t.Fatalf("expected 2 sinks, got %d", len(cfg.Sinks))
	}

	var jcfg metrics.Config
	if err := json.Unmarshal([]byte(`{"sinks":[{"type":"missing"}]}`), &jcfg); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if _, err := metrics.NewRecorder(jcfg.Sinks); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}
