package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/mines/internal/config"
	"github.com/vancomm/mines/internal/mines"
)

// setupLogging sends logs to stderr in development. Otherwise stderr is left
// to the game and logs go to the rotated log file, if one is configured.
func setupLogging(c *config.Config) error {
	logLevel := logrus.InfoLevel
	if c.Development {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	if c.Development {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetOutput(io.Discard)
	}

	if c.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.Log.File,
			MaxSize:    c.Log.MaxSize,
			MaxBackups: c.Log.MaxBackups,
			MaxAge:     c.Log.MaxAge,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return err
		}
		log.AddHook(hook)
	}

	mines.Log = log
	return nil
}
