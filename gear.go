package main

import (
	"fmt"
	"strings"
)

type gearPosition int

const (
	gearPark gearPosition = iota
	gearReverse
	gearNeutral
	gearFirst
	gearSecond
	gearThird
	gearFourth
)

var gearNames = map[gearPosition]string{
	gearPark:    "park",
	gearReverse: "reverse",
	gearNeutral: "neutral",
	gearFirst:   "first",
	gearSecond:  "second",
	gearThird:   "third",
	gearFourth:  "fourth",
}

// char is the character shown on the display for the gear
func (g gearPosition) char() byte {
	switch g {
	case gearPark:
		return 'P'
	case gearReverse:
		return 'R'
	case gearNeutral:
		return 'N'
	case gearFirst:
		return '1'
	case gearSecond:
		return '2'
	case gearThird:
		return '3'
	case gearFourth:
		return '4'
	}
	return '?'
}

func (g gearPosition) String() string {
	if name, ok := gearNames[g]; ok {
		return name
	}
	return fmt.Sprintf("gear(%d)", int(g))
}

// parseGear accepts either the display character or the name, any case
func parseGear(s string) (gearPosition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for g, name := range gearNames {
		if s == name || (len(s) == 1 && s[0] == upperToLower(g.char())) {
			return g, nil
		}
	}
	return gearPark, fmt.Errorf("bad gear position: '%s'", s)
}

func upperToLower(char byte) byte {
	if char >= 'A' && char <= 'Z' {
		return char + 'a' - 'A'
	}
	return char
}
