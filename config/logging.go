package config

import (
	"fmt"

	"github.com/kilianp07/applog/core/factory"
	corelogger "github.com/kilianp07/applog/core/logger"
)

// Mode values accepted by logging.mode.
const (
	ModeAuto       = "auto"
	ModeVerbose    = "verbose"
	ModeRestricted = "restricted"
)

// LoggingConfig selects the process mode and the platform outputs.
type LoggingConfig struct {
	// Mode is "auto" (resolve from build info), "verbose" or "restricted".
	Mode string `json:"mode"`
	// BuildEnv names the environment variable consulted in auto mode after
	// the linker flag.
	BuildEnv string `json:"build_env"`
	// ConsoleForwarding also writes reported records to the outputs in
	// restricted mode.
	ConsoleForwarding bool `json:"console_forwarding"`
	// ChunkSize is the longest forwarded console line, in runes.
	ChunkSize int `json:"chunk_size"`
	// Outputs are the platform sinks; none means the default zerolog output.
	Outputs []factory.ModuleConfig `json:"outputs"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Mode == "" {
		c.Mode = ModeAuto
	}
	if c.BuildEnv == "" {
		c.BuildEnv = "APP_ENV"
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = corelogger.DefaultChunkSize
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	switch c.Mode {
	case ModeAuto, ModeVerbose, ModeRestricted:
	default:
		return fmt.Errorf("unknown mode %s", c.Mode)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive")
	}
	for i, o := range c.Outputs {
		if o.Type == "" {
			return fmt.Errorf("output %d has no type", i)
		}
	}
	return nil
}

// BuildInfo returns the source the facade resolves its mode from.
func (c LoggingConfig) BuildInfo() corelogger.BuildInfo {
	switch c.Mode {
	case ModeVerbose:
		return corelogger.StaticBuild(true)
	case ModeRestricted:
		return corelogger.StaticBuild(false)
	}
	env := c.BuildEnv
	if env == "" {
		env = "APP_ENV"
	}
	return corelogger.FirstOf(corelogger.LinkerBuild(), corelogger.EnvBuild(env))
}
