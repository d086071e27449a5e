package main

import (
	"io"
	"os"
	"strings"
)

// uiMode is the --ui setting of fmt.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch mode := uiMode(strings.TrimSpace(strings.ToLower(value))); mode {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return mode, nil
	default:
		return "", errInvalidFlag("ui", value, "auto|on|off")
	}
}

// useTUI decides whether the progress view replaces plain output. --quiet
// wins over --ui=on; auto needs out to be a terminal.
func useTUI(mode uiMode, quiet bool, out io.Writer) bool {
	if quiet {
		return false
	}
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	f, ok := out.(*os.File)
	return ok && isTerminal(f)
}
