// Package logging holds the process wide zerolog logger.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// L is the global logger. Packages log through it or through a component logger.
var L zerolog.Logger = NewConsoleLogger(os.Stdout)

func NewConsoleLogger(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

// SetLogLevel changes the level of L. Component loggers created afterwards inherit it.
func SetLogLevel(level zerolog.Level) {
	L = L.Level(level)
}

// SetOutput swaps the writer of L, keeping the current level.
func SetOutput(w io.Writer) {
	level := L.GetLevel()
	L = NewConsoleLogger(w).Level(level)
}

// Component returns a logger tagged with a component field.
func Component(name string) zerolog.Logger {
	return L.With().Str("component", name).Logger()
}
