package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the value of an auto|on|off switch; --ui and --color share it.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func parseSwitch(flag, value string) (uiMode, error) {
	m := uiMode(strings.ToLower(strings.TrimSpace(value)))
	switch m {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return m, nil
	}
	return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

// resolve turns auto into "is f a terminal".
func (m uiMode) resolve(f *os.File) bool {
	if m == uiModeAuto {
		return isTerminal(f)
	}
	return m == uiModeOn
}

func readUIMode(value string) (uiMode, error) {
	return parseSwitch("ui", value)
}

// shouldUseTUI: the progress view draws on stdout.
func shouldUseTUI(mode uiMode) bool {
	return mode.resolve(os.Stdout)
}

// readColor resolves --color for f.
func readColor(value string, f *os.File) (bool, error) {
	m, err := parseSwitch("color", value)
	if err != nil {
		return false, err
	}
	return m.resolve(f), nil
}
