// Package opts resolves named compatibility modes and explicit option
// overrides into the option bundles used by the parse and dump paths.
//
// A Mode is a preset bundle of defaults. Resolution applies the mode's
// defaults first and then every explicitly-provided field; explicit values
// always win, regardless of the order they were supplied in relative to
// the mode.
package opts

import (
	"errors"
	"fmt"
)

type Mode int

const (
	// Strict accepts and produces spec JSON only.
	Strict Mode = iota
	// Compat matches the behavior of the common JSON-gem dialect and is
	// the default.
	Compat
	// Rails matches the web-framework dialect: symbolized keys on parse,
	// HTML-safe output on dump.
	Rails
	// Object enables custom object serialization.
	Object
	// Custom leaves every knob to explicit overrides.
	Custom
)

var ErrBadMode = errors.New("bad mode")

// Modes returns all modes.
func Modes() []Mode {
	return []Mode{Strict, Compat, Rails, Object, Custom}
}

func ParseMode(v string) (Mode, error) {
	m, ok := map[string]Mode{
		"strict": Strict,
		"compat": Compat,
		"rails":  Rails,
		"object": Object,
		"custom": Custom,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, v)
}

func (m Mode) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Strict:
		return []byte("strict"), nil
	case Compat:
		return []byte("compat"), nil
	case Rails:
		return []byte("rails"), nil
	case Object:
		return []byte("object"), nil
	case Custom:
		return []byte("custom"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a mode>", m)
	}
}

func (m *Mode) UnmarshalText(d []byte) error {
	pm, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}
