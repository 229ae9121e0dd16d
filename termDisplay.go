package main

import (
	"log"

	"dscheirer.com/geardisplay/dotmatrix"
	"github.com/nsf/termbox-go"
)

// termDisplay draws frames in the terminal, one cell per pixel
type termDisplay struct {
	debugDump  bool
	open       bool
	curDisplay dotmatrix.Matrix
}

func (td *termDisplay) OpenDisplay(settings configSettings) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	td.debugDump = settings.GetBool(sDebug)
	td.open = true
	return termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (td *termDisplay) DebugDump(on bool) {
	td.debugDump = on
}

func (td *termDisplay) Show(frame dotmatrix.Matrix) error {
	if !td.open {
		return nil
	}
	w, h := termbox.Size()
	if w > dotmatrix.Columns {
		w = dotmatrix.Columns
	}
	if h > dotmatrix.Rows {
		h = dotmatrix.Rows
	}
	for y := 0; y < h; y++ {
		row, err := frame.Row(y)
		if err != nil {
			return err
		}
		for x := 0; x < w; x++ {
			on, err := row.Bit(x)
			if err != nil {
				return err
			}
			ch := ' '
			if on {
				ch = '█'
			}
			termbox.SetCell(x, y, ch, termbox.ColorWhite, termbox.ColorDefault)
		}
	}
	if td.debugDump && frame != td.curDisplay {
		log.Println("\n" + frame.Numbered())
	}
	td.curDisplay = frame
	return termbox.Flush()
}

func (td *termDisplay) ClearDisplay() error {
	return td.Show(dotmatrix.Empty())
}

func (td *termDisplay) Close() error {
	if td.open {
		termbox.Close()
		td.open = false
	}
	return nil
}

// keyEffect maps a key press to the effect it asks for
func keyEffect(ev termbox.Event) (displayEffect, bool) {
	if ev.Type != termbox.EventKey {
		return displayEffect{}, false
	}
	switch ev.Key {
	case termbox.KeyArrowLeft:
		return scrollEffect(scrollLeft), true
	case termbox.KeyArrowRight:
		return scrollEffect(scrollRight), true
	case termbox.KeyArrowUp:
		return scrollEffect(scrollUp), true
	case termbox.KeyArrowDown:
		return scrollEffect(scrollDown), true
	case termbox.KeySpace:
		return scrollEffect(scrollOff), true
	}
	switch ev.Ch {
	case 'i', 'I':
		return invertEffect(toggle), true
	case 'd', 'D':
		return toggleDebugDump(toggle), true
	case 'c', 'C':
		return clearEffect(), true
	}
	if ev.Ch > 0 && ev.Ch < 0x80 {
		if g, err := parseGear(string(ev.Ch)); err == nil {
			return gearEffect(g), true
		}
	}
	return displayEffect{}, false
}

// runKeyWatcher feeds key presses to the effects loop until ctrl-c, esc
// or 'q', then stops the runtime
func runKeyWatcher(rt runtimeConfig) {
	defer log.Printf("Exiting runKeyWatcher")
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt, termbox.EventError:
			return
		case termbox.EventKey:
			if ev.Key == termbox.KeyCtrlC || ev.Key == termbox.KeyEsc || ev.Ch == 'q' {
				rt.stop()
				return
			}
		}
		if e, ok := keyEffect(ev); ok {
			select {
			case rt.comms.effects <- e:
			case <-rt.comms.quit:
				return
			}
		}
	}
}
