package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/kilianp07/applog/core/factory"
	corelogger "github.com/kilianp07/applog/core/logger"
)

// init registers the built-in outputs.
func init() {
	_ = corelogger.RegisterOutput("nop", func(map[string]any) (corelogger.Output, error) {
		return corelogger.NopOutput{}, nil
	})

	_ = corelogger.RegisterOutput("zerolog", func(conf map[string]any) (corelogger.Output, error) {
		var c struct {
			Pretty *bool  `json:"pretty"`
			Stream string `json:"stream"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		w, err := stream(c.Stream)
		if err != nil {
			return nil, err
		}
		pretty := devEnv()
		if c.Pretty != nil {
			pretty = *c.Pretty
		}
		return NewZerologOutput(w, pretty), nil
	})

	_ = corelogger.RegisterOutput("logrus", func(conf map[string]any) (corelogger.Output, error) {
		var c struct {
			Format string `json:"format"`
			Stream string `json:"stream"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		w, err := stream(c.Stream)
		if err != nil {
			return nil, err
		}
		return NewLogrusOutput(w, c.Format), nil
	})

	_ = corelogger.RegisterOutput("file", func(conf map[string]any) (corelogger.Output, error) {
		var c FileConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewFileOutput(c)
	})
}

// DefaultOutput is used when no output is configured: zerolog on stderr,
// pretty when APP_ENV=dev.
func DefaultOutput() corelogger.Output {
	return NewZerologOutput(os.Stderr, devEnv())
}

func stream(name string) (io.Writer, error) {
	switch name {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	}
	return nil, fmt.Errorf("unknown stream %q", name)
}
