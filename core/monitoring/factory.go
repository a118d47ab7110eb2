package monitoring

import (
	"fmt"

	"github.com/kilianp07/applog/core/factory"
)

var reporterRegistry = factory.NewRegistry[Reporter]()

// RegisterReporter adds a reporter factory identified by name.
func RegisterReporter(name string, f factory.Factory[Reporter]) error {
	return reporterRegistry.Register(name, f)
}

// ReporterTypes lists the registered reporter names.
func ReporterTypes() []string { return reporterRegistry.Names() }

// NewReporter creates a Reporter from the provided configuration. No
// configuration yields a NopReporter; several yield a MultiReporter.
func NewReporter(cfgs []factory.ModuleConfig) (Reporter, error) {
	if len(cfgs) == 0 {
		return NopReporter{}, nil
	}
	if len(cfgs) == 1 {
		return reporterRegistry.Create(cfgs[0])
	}
	reps := make([]Reporter, 0, len(cfgs))
	for _, c := range cfgs {
		r, err := reporterRegistry.Create(c)
		if err != nil {
			_ = NewMultiReporter(reps...).Close()
			return nil, fmt.Errorf("reporter %s: %w", c.Type, err)
		}
		reps = append(reps, r)
	}
	return NewMultiReporter(reps...), nil
}
