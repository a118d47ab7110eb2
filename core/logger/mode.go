package logger

import (
	"fmt"
	"strings"
	"sync"
)

// Mode is the process-wide operating posture.
type Mode int

const (
	// ModeVerbose enriches and forwards every record (development builds).
	ModeVerbose Mode = iota
	// ModeRestricted keeps Error and above and hands them to the reporter
	// (production builds).
	ModeRestricted
)

func (m Mode) String() string {
	if m == ModeRestricted {
		return "restricted"
	}
	return "verbose"
}

// ParseMode parses "verbose" or "restricted". "auto" and "" are rejected so
// that callers fall back to build-info resolution.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "debug", "dev":
		return ModeVerbose, nil
	case "restricted", "release", "prod":
		return ModeRestricted, nil
	}
	return ModeVerbose, fmt.Errorf("unknown mode %q", s)
}

// Resolver determines the Mode once and caches it.
type Resolver struct {
	src  BuildInfo
	once sync.Once
	mode Mode
}

// NewResolver returns a Resolver reading src. A nil src resolves to verbose.
func NewResolver(src BuildInfo) *Resolver {
	return &Resolver{src: src}
}

// Resolve returns the cached Mode, querying the build info on first use. Any
// failure, including a panic in the source, resolves to ModeVerbose.
func (r *Resolver) Resolve() Mode {
	r.once.Do(func() {
		r.mode = resolve(r.src)
	})
	return r.mode
}

func resolve(src BuildInfo) (m Mode) {
	m = ModeVerbose
	if src == nil {
		return m
	}
	defer func() {
		if recover() != nil {
			m = ModeVerbose
		}
	}()
	debug, err := src.IsDebug()
	if err != nil || debug {
		return ModeVerbose
	}
	return ModeRestricted
}
