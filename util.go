// utility functions
package main

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

type commChannels struct {
	quit     chan struct{}
	quitOnce *sync.Once
	effects  chan displayEffect
}

type runtimeConfig struct {
	comms    commChannels
	clock    clockwork.Clock
	display  display
	settings configSettings
	frames   *frameStore
}

func initCommChannels() commChannels {
	return commChannels{
		quit:     make(chan struct{}),
		quitOnce: &sync.Once{},
		effects:  make(chan displayEffect, 16),
	}
}

func initRuntime(clock clockwork.Clock, settings configSettings, d display) runtimeConfig {
	return runtimeConfig{
		comms:    initCommChannels(),
		clock:    clock,
		display:  d,
		settings: settings,
		frames:   &frameStore{},
	}
}

// stop tells every worker to quit, safe to call more than once
func (rt runtimeConfig) stop() {
	rt.comms.quitOnce.Do(func() {
		close(rt.comms.quit)
	})
}
