package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"dscheirer.com/geardisplay/dotmatrix"
)

type displayEffect struct {
	id  int
	val interface{}
}

const (
	eGear = iota
	eText
	eScroll
	eInvert
	eDebug
	eClear
)

// default tick when the settings don't give a usable one
const dEffectSleep = 100 * time.Millisecond

type scrollDir int

const (
	scrollOff scrollDir = iota
	scrollLeft
	scrollRight
	scrollUp
	scrollDown
)

var scrollNames = []string{"off", "left", "right", "up", "down"}

func (d scrollDir) String() string {
	if d >= 0 && int(d) < len(scrollNames) {
		return scrollNames[d]
	}
	return fmt.Sprintf("scroll(%d)", int(d))
}

func parseScroll(s string) (scrollDir, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range scrollNames {
		if s == name {
			return scrollDir(i), nil
		}
	}
	return scrollOff, fmt.Errorf("bad scroll direction: '%s'", s)
}

// on/off style effects can also flip the current state
type onOff int

const (
	turnOff onOff = iota
	turnOn
	toggle
)

func parseOnOff(s string) (onOff, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return turnOn, nil
	case "off", "false", "0":
		return turnOff, nil
	case "toggle":
		return toggle, nil
	}
	return turnOff, fmt.Errorf("bad switch value: '%s'", s)
}

func (o onOff) apply(cur bool) bool {
	switch o {
	case turnOn:
		return true
	case toggle:
		return !cur
	}
	return false
}

// channel messaging functions
func gearEffect(g gearPosition) displayEffect {
	return displayEffect{id: eGear, val: g}
}

func textEffect(s string) displayEffect {
	return displayEffect{id: eText, val: s}
}

func scrollEffect(d scrollDir) displayEffect {
	return displayEffect{id: eScroll, val: d}
}

func invertEffect(o onOff) displayEffect {
	return displayEffect{id: eInvert, val: o}
}

func toggleDebugDump(o onOff) displayEffect {
	return displayEffect{id: eDebug, val: o}
}

func clearEffect() displayEffect {
	return displayEffect{id: eClear}
}

func toGear(val interface{}) (gearPosition, error) {
	switch v := val.(type) {
	case gearPosition:
		return v, nil
	default:
		return gearPark, fmt.Errorf("bad type: %T", v)
	}
}

func toString(val interface{}) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("bad type: %T", v)
	}
}

func toScroll(val interface{}) (scrollDir, error) {
	switch v := val.(type) {
	case scrollDir:
		return v, nil
	default:
		return scrollOff, fmt.Errorf("bad type: %T", v)
	}
}

func toOnOff(val interface{}) (onOff, error) {
	switch v := val.(type) {
	case onOff:
		return v, nil
	default:
		return turnOff, fmt.Errorf("bad type: %T", v)
	}
}

// what the display is supposed to be showing
type frameState struct {
	gear     gearPosition
	text     string // shown instead of the gear when set
	scroll   scrollDir
	inverted bool
	debug    bool
	cleared  bool
}

func initialState(settings configSettings) (frameState, error) {
	state := frameState{
		text:     settings.GetString(sText),
		inverted: settings.GetBool(sInvert),
		debug:    settings.GetBool(sDebug),
	}
	var err error
	if state.gear, err = parseGear(settings.GetString(sGear)); err != nil {
		return state, err
	}
	state.scroll, err = parseScroll(settings.GetString(sScroll))
	return state, err
}

func (state frameState) render(scale int) (dotmatrix.Matrix, error) {
	if state.cleared {
		return dotmatrix.Empty(), nil
	}
	if state.text != "" {
		return renderText(state.text, scale)
	}
	return renderGear(state.gear, scale)
}

// apply updates the state for e and reports whether the frame has to be
// drawn again from scratch
func (state *frameState) apply(e displayEffect) (bool, error) {
	switch e.id {
	case eGear:
		g, err := toGear(e.val)
		if err != nil {
			return false, err
		}
		state.gear, state.text, state.cleared = g, "", false
		return true, nil
	case eText:
		s, err := toString(e.val)
		if err != nil {
			return false, err
		}
		state.text, state.cleared = s, false
		return true, nil
	case eScroll:
		d, err := toScroll(e.val)
		if err != nil {
			return false, err
		}
		state.scroll = d
		return false, nil
	case eInvert:
		o, err := toOnOff(e.val)
		if err != nil {
			return false, err
		}
		state.inverted = o.apply(state.inverted)
		return false, nil
	case eDebug:
		o, err := toOnOff(e.val)
		if err != nil {
			return false, err
		}
		state.debug = o.apply(state.debug)
		return false, nil
	case eClear:
		state.cleared, state.scroll = true, scrollOff
		return true, nil
	}
	return false, fmt.Errorf("unknown effect: %d", e.id)
}

// scrollFrame moves the frame one step in direction d, wrapping around
func scrollFrame(m *dotmatrix.Matrix, d scrollDir) {
	switch d {
	case scrollLeft:
		m.RotateColumnsLeft(1)
	case scrollRight:
		m.RotateColumnsRight(1)
	case scrollUp:
		m.RotateRowsUp(1)
	case scrollDown:
		m.RotateRowsDown(1)
	}
}

func runEffects(rt runtimeConfig) {
	defer log.Printf("Exiting runEffects")

	scale := rt.settings.GetInt(sScale)
	tick := rt.settings.GetDuration(sTickTime)
	if tick <= 0 {
		tick = dEffectSleep
	}

	state, err := initialState(rt.settings)
	if err != nil {
		log.Printf("Error: %s", err.Error())
	}
	rt.display.DebugDump(state.debug)

	frame, err := state.render(scale)
	if err != nil {
		log.Printf("Error: %s", err.Error())
	}

	var last dotmatrix.Matrix
	first := true
	for {
		// read all incoming messages at once
		keepReading := true
		for keepReading {
			select {
			case <-rt.comms.quit:
				log.Printf("Got a quit signal in runEffects")
				return
			case e := <-rt.comms.effects:
				redraw, err := state.apply(e)
				if err != nil {
					log.Printf("Bad effect %d: %s", e.id, err.Error())
					continue
				}
				if e.id == eDebug {
					rt.display.DebugDump(state.debug)
				}
				if redraw {
					if frame, err = state.render(scale); err != nil {
						log.Printf("Error: %s", err.Error())
					}
				}
			default:
				keepReading = false
			}
		}

		// one scroll step per tick, none before the first frame is up
		if !first {
			scrollFrame(&frame, state.scroll)
		}

		out := frame
		if state.inverted {
			out = out.Not()
		}
		if first || out != last {
			if err := rt.display.Show(out); err != nil {
				log.Printf("Error: %s", err.Error())
			}
			last = out
		}
		rt.frames.publish(out, state)
		first = false

		select {
		case <-rt.comms.quit:
			log.Printf("Got a quit signal in runEffects")
			return
		case <-rt.clock.After(tick):
		}
	}
}
