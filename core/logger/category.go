package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a semantic tag independent of severity. The zero value means
// "no category" and renders no prefix.
type Category int

const (
	NoCategory Category = iota
	Network
	Database
	UI
	Business
	Security
	Performance
	Default
)

// ErrUnknownCategory is returned by ParseCategory for unrecognised names.
var ErrUnknownCategory = errors.New("unknown category")

var categoryNames = [...]string{
	Network:     "NETWORK",
	Database:    "DATABASE",
	UI:          "UI",
	Business:    "BUSINESS",
	Security:    "SECURITY",
	Performance: "PERFORMANCE",
	Default:     "DEFAULT",
}

// Categories lists every defined category in declaration order.
func Categories() []Category {
	return []Category{Network, Database, UI, Business, Security, Performance, Default}
}

// String returns the category name, or "" for NoCategory and unknown values.
func (c Category) String() string {
	if c <= NoCategory || int(c) >= len(categoryNames) {
		return ""
	}
	return categoryNames[c]
}

// Prefix returns the display prefix, e.g. "[NETWORK] ".
func (c Category) Prefix() string {
	name := c.String()
	if name == "" {
		return ""
	}
	return "[" + name + "] "
}

// ParseCategory maps a name such as "network" to its Category. An empty string
// yields NoCategory.
func ParseCategory(s string) (Category, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || s == "NONE" {
		return NoCategory, nil
	}
	for _, c := range Categories() {
		if categoryNames[c] == s {
			return c, nil
		}
	}
	return NoCategory, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
