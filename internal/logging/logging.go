package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper/internal/config"
)

// New builds the application logger. Development logs are colored text at
// debug level, production logs are JSON at info level. When a log file is
// configured, entries are also written to it with size based rotation.
func New(c *config.Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level := logrus.InfoLevel
	if c.Development() {
		level = logrus.DebugLevel
	}
	if c.Log.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(c.Log.Level); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}
	log.SetLevel(level)

	if c.Development() {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if c.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.Log.File,
			MaxSize:    c.Log.MaxSize,
			MaxBackups: c.Log.MaxBackups,
			MaxAge:     c.Log.MaxAge,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to create log file hook: %w", err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
