package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger.
// Without a log file only warnings reach stderr, so the board is not disturbed
// while a game is running. The returned function closes the log file.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snek",
	})

	switch {
	case flagDebug:
		logger.SetLevel(log.DebugLevel)
	case flagLogFile != "":
		logger.SetLevel(log.InfoLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}

	return logger, closeFn, nil
}
