package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper-engine/internal/config"
)

type Options struct {
	Level       string
	Development bool
	ForceColors bool

	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func OptionsFrom(cfg config.Config) Options {
	return Options{
		Level:       cfg.Log.Level,
		Development: cfg.Development(),
		File:        cfg.Log.File,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
	}
}

// level resolves the configured level. Development mode never logs below
// debug.
func (o Options) level() (logrus.Level, error) {
	level := logrus.InfoLevel
	if o.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(o.Level); err != nil {
			return level, err
		}
	}
	if o.Development && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	return level, nil
}

// Setup applies o to every logger, replacing hooks from an earlier call.
// When a log file is set, each logger gets a rotating file hook writing
// plain text at the same level.
func Setup(o Options, loggers ...*logrus.Logger) error {
	level, err := o.level()
	if err != nil {
		return fmt.Errorf("unable to parse log level: %w", err)
	}

	var hook logrus.Hook
	if o.File != "" {
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   o.File,
			MaxSize:    o.MaxSizeMB,
			MaxBackups: o.MaxBackups,
			MaxAge:     o.MaxAgeDays,
			Level:      level,
			Formatter:  &logrus.TextFormatter{DisableColors: true},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", o.File, err)
		}
	}

	for _, log := range loggers {
		log.SetLevel(level)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: o.ForceColors})
		log.ReplaceHooks(make(logrus.LevelHooks))
		if hook != nil {
			log.AddHook(hook)
		}
	}
	return nil
}
