package config

import (
	"fmt"
	"strings"
)

// Policy decides what a session does with a coefficient that failed to read.
type Policy string

const (
	// PolicySubstitute uses [input].default and keeps going.
	PolicySubstitute Policy = "substitute"
	// PolicyAbort stops the session with an error.
	PolicyAbort Policy = "abort"
)

func ParsePolicy(value string) (Policy, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "substitute":
		return PolicySubstitute, nil
	case "abort":
		return PolicyAbort, nil
	default:
		return "", fmt.Errorf("invalid [input].policy %q (expected substitute|abort)", value)
	}
}

// Mode is a tri-state switch used for colour and the interactive form.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeOn   Mode = "on"
	ModeOff  Mode = "off"
)

// ParseMode reads an auto|on|off value; key names the setting in errors.
func ParseMode(key, value string) (Mode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return ModeAuto, nil
	case "on":
		return ModeOn, nil
	case "off":
		return ModeOff, nil
	default:
		return "", fmt.Errorf("invalid %s %q (expected auto|on|off)", key, value)
	}
}

// Resolve turns auto into on or off using isTTY.
func (m Mode) Resolve(isTTY bool) bool {
	switch m {
	case ModeOn:
		return true
	case ModeOff:
		return false
	default:
		return isTTY
	}
}

// InputPolicy returns the parsed [input].policy; Validate has checked it.
func (c Config) InputPolicy() Policy {
	p, _ := ParsePolicy(c.Input.Policy)
	return p
}

// ColorMode returns the parsed [output].color.
func (c Config) ColorMode() Mode {
	m, _ := ParseMode("[output].color", c.Output.Color)
	return m
}

// UIMode returns the parsed [ui].mode.
func (c Config) UIMode() Mode {
	m, _ := ParseMode("[ui].mode", c.UI.Mode)
	return m
}
