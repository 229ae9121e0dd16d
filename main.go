package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jonboulle/clockwork"
)

var wg sync.WaitGroup

// geardisplay -config={config file} [-gear=P] [-text=...]

func main() {
	configFile := flag.String("config", defConfigFile, "config file path")
	gear := flag.String("gear", "", "gear position to show at startup")
	text := flag.String("text", "", "text to show instead of the gear")
	flag.Parse()

	settings := initSettings(*configFile)
	if *gear != "" {
		settings.Set(sGear, *gear)
	}
	if *text != "" {
		settings.Set(sText, *text)
	}

	logger, err := setupLogging(settings, settings.GetBool(sLogStderr))
	if err != nil {
		log.Fatal(err.Error())
	}
	defer logger.Close()

	log.Println(">>> Settings <<<")
	settings.Dump()

	d, err := newDisplay(settings)
	if err != nil {
		log.Fatal(err.Error())
	}
	if err := d.OpenDisplay(settings); err != nil {
		log.Fatalf("Could not open display: %s", err.Error())
	}
	defer d.Close()

	rt := initRuntime(clockwork.NewRealClock(), settings, d)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case s := <-signals:
			log.Printf("Got signal %v, stopping", s)
			rt.stop()
		case <-rt.comms.quit:
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runEffects(rt)
	}()

	if settings.GetBool(sHTTPEnabled) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runHTTPService(rt)
		}()
	}

	// the terminal eats ctrl-c, so it has to watch for it itself
	if _, ok := d.(*termDisplay); ok {
		go runKeyWatcher(rt)
	}

	wg.Wait()
	shutdownDisplay(d)
}

// shutdownDisplay blanks the display on the way out
func shutdownDisplay(d display) error {
	err := d.ClearDisplay()
	if err != nil {
		log.Printf("Error: %s", err.Error())
	}
	return err
}
