package main

import (
	"fmt"

	"dscheirer.com/geardisplay/dotmatrix"
)

type display interface {
	OpenDisplay(settings configSettings) error
	DebugDump(on bool)
	Show(frame dotmatrix.Matrix) error
	ClearDisplay() error
	Close() error
}

func newDisplay(settings configSettings) (display, error) {
	switch kind := settings.GetString(sDisplay); kind {
	case sDisplayLog:
		return &logDisplay{}, nil
	case sDisplayTerm:
		return &termDisplay{}, nil
	default:
		return nil, fmt.Errorf("bad display type: '%s'", kind)
	}
}
