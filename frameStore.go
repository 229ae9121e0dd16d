package main

import (
	"sync"

	"dscheirer.com/geardisplay/dotmatrix"
)

// frameStore holds the last frame the effects loop put up, for readers
// outside that goroutine
type frameStore struct {
	mu    sync.RWMutex
	frame dotmatrix.Matrix
	state frameState
	count int
}

func (fs *frameStore) publish(frame dotmatrix.Matrix, state frameState) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.frame = frame
	fs.state = state
	fs.count++
}

// snapshot returns copies, callers can keep them
func (fs *frameStore) snapshot() (dotmatrix.Matrix, frameState, int) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.frame, fs.state, fs.count
}
