package logger

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Options struct {
	Level   string
	Format  string // text|json
	Verbose bool
}

// Setup configures the standard logrus logger. Verbose forces debug level.
func Setup(opts Options) {
	log.SetOutput(os.Stderr)

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level := parseLevel(opts.Level)
	if opts.Verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}

func parseLevel(s string) log.Level {
	level, err := log.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
