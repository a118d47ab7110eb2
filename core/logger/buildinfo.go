package logger

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrBuildInfoUnset is returned when a source has no answer.
var ErrBuildInfoUnset = errors.New("build info unset")

// buildDebug is set at link time:
//
//	go build -ldflags "-X github.com/kilianp07/applog/core/logger.buildDebug=false"
var buildDebug string

// BuildInfo answers "is this a debug build".
type BuildInfo interface {
	IsDebug() (bool, error)
}

// BuildInfoFunc adapts a function to BuildInfo.
type BuildInfoFunc func() (bool, error)

func (f BuildInfoFunc) IsDebug() (bool, error) { return f() }

// StaticBuild always answers debug.
func StaticBuild(debug bool) BuildInfo {
	return BuildInfoFunc(func() (bool, error) { return debug, nil })
}

// LinkerBuild reads the value injected with -ldflags -X.
func LinkerBuild() BuildInfo {
	return BuildInfoFunc(func() (bool, error) {
		if buildDebug == "" {
			return false, fmt.Errorf("linker flag: %w", ErrBuildInfoUnset)
		}
		return strconv.ParseBool(buildDebug)
	})
}

// EnvBuild reads the environment variable key. "dev", "development" and
// "debug" mean debug; "prod", "production" and "release" mean release.
func EnvBuild(key string) BuildInfo {
	return BuildInfoFunc(func() (bool, error) {
		v, ok := os.LookupEnv(key)
		if !ok {
			return false, fmt.Errorf("%s: %w", key, ErrBuildInfoUnset)
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "dev", "development", "debug":
			return true, nil
		case "prod", "production", "release":
			return false, nil
		}
		return false, fmt.Errorf("%s: unrecognised value %q", key, v)
	})
}

// FirstOf asks each source in turn and returns the first answer given without
// error.
func FirstOf(srcs ...BuildInfo) BuildInfo {
	return BuildInfoFunc(func() (bool, error) {
		for _, s := range srcs {
			if s == nil {
				continue
			}
			if debug, err := s.IsDebug(); err == nil {
				return debug, nil
			}
		}
		return false, ErrBuildInfoUnset
	})
}

// DefaultBuildInfo is consulted when no source is configured: the linker
// flag first, then APP_ENV.
func DefaultBuildInfo() BuildInfo {
	return FirstOf(LinkerBuild(), EnvBuild("APP_ENV"))
}
