package logger

import "github.com/kilianp07/applog/core/factory"

var outputRegistry = factory.NewRegistry[Output]()

// RegisterOutput adds an output factory identified by name.
func RegisterOutput(name string, f factory.Factory[Output]) error {
	return outputRegistry.Register(name, f)
}

// OutputTypes lists the registered output names.
func OutputTypes() []string { return outputRegistry.Names() }

// NewOutput creates an Output from the provided configuration. No
// configuration yields nil so that callers can pick their own default;
// several yield a MultiOutput.
func NewOutput(cfgs []factory.ModuleConfig) (Output, error) {
	switch len(cfgs) {
	case 0:
		return nil, nil
	case 1:
		return outputRegistry.Create(cfgs[0])
	}
	outs := make([]Output, len(cfgs))
	for i, c := range cfgs {
		o, err := outputRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		outs[i] = o
	}
	return NewMultiOutput(outs...), nil
}
