package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging points the standard logger at a rotating log file, and
// optionally stderr as well. The caller closes the returned logger.
func setupLogging(settings configSettings, toStderr bool) (*lumberjack.Logger, error) {
	logFile := settings.GetString(sLogFile)
	if logFile == "" {
		return nil, errors.New("no log file configured")
	}

	logger := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    settings.GetInt(sLogMaxSize),
		MaxAge:     settings.GetInt(sLogMaxAge),
		MaxBackups: settings.GetInt(sLogBackups),
	}
	// lumberjack opens lazily, make sure we can write before we commit
	if _, err := logger.Write([]byte{}); err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", logFile)
	}

	var out io.Writer = logger
	if toStderr {
		out = io.MultiWriter(logger, os.Stderr)
	}
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return logger, nil
}
