package main

import (
	"log"
	"sync"

	"dscheirer.com/geardisplay/dotmatrix"
)

// logDisplay writes frames to the log instead of a screen, and remembers
// every frame it was shown
type logDisplay struct {
	mu         sync.Mutex
	debugDump  bool
	open       bool
	curDisplay dotmatrix.Matrix
	audit      []dotmatrix.Matrix
}

func (ld *logDisplay) OpenDisplay(settings configSettings) error {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.debugDump = settings.GetBool(sDebug)
	ld.curDisplay = dotmatrix.Empty()
	ld.audit = []dotmatrix.Matrix{}
	ld.open = true
	return nil
}

func (ld *logDisplay) DebugDump(on bool) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.debugDump = on
}

func (ld *logDisplay) Show(frame dotmatrix.Matrix) error {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	if frame == ld.curDisplay && len(ld.audit) > 0 {
		return nil
	}
	lit := 0
	for _, row := range frame.Rows() {
		lit += row.OnesCount()
	}
	log.Printf("frame %d: %d pixels lit", len(ld.audit), lit)
	if ld.debugDump {
		log.Println("\n" + frame.String())
	}
	ld.curDisplay = frame
	ld.audit = append(ld.audit, frame)
	return nil
}

func (ld *logDisplay) ClearDisplay() error {
	return ld.Show(dotmatrix.Empty())
}

func (ld *logDisplay) Close() error {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.open = false
	return nil
}

func (ld *logDisplay) current() dotmatrix.Matrix {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.curDisplay
}

func (ld *logDisplay) auditLen() int {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return len(ld.audit)
}
