package main

import (
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"mlserve/internal/config"
	"mlserve/internal/manager"
)

// newLogger builds the process logger. With a log file configured, output is
// rotated by lumberjack and the returned func closes the file.
func newLogger(cfg config.Config, stderr io.Writer) (zerolog.Logger, func()) {
	out := stderr
	closer := func() {}
	if cfg.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100, // MB
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = lj
		closer = func() { _ = lj.Close() }
	}
	return zerolog.New(out).Level(zerologLevel(cfg.LogLevel)).With().Timestamp().Str("service", "mlserve").Logger(), closer
}

func zerologLevel(s string) zerolog.Level {
	if s == "off" {
		return zerolog.Disabled
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

// logPublisher forwards manager lifecycle events to the logger.
type logPublisher struct{ log zerolog.Logger }

func (p logPublisher) Publish(e manager.Event) {
	z := p.log.Info()
	if e.Name == manager.EventModelLoadFailed {
		z = p.log.Error()
	}
	z.Str("event", e.Name).Str("model_path", e.ModelPath).Fields(e.Fields).Msg("model lifecycle")
}

var _ manager.EventPublisher = logPublisher{}
