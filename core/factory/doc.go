// Package factory provides a small generic registry used to instantiate log
// outputs, reporters and metrics recorders from configuration. A module is
// described by a type string and a map of raw settings; its factory decodes the
// settings into a typed struct and returns the concrete implementation.
//
// Example usage:
//
//	reg := factory.NewRegistry[logger.Output]()
//	reg.Register("file", func(conf map[string]any) (logger.Output, error) {
//	    var c struct{ Path string `json:"path"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return NewFileOutput(c.Path)
//	})
//	out, err := reg.Create(factory.ModuleConfig{Type: "file", Conf: map[string]any{"path": "app.log"}})
package factory
