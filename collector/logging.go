package collector

import (
	"io"

	"github.com/sirupsen/logrus"
)

// noopLogger returns a logrus.FieldLogger that discards everything, so
// Collector stays silent by default (spec.md §6: this is a library,
// not a framework — logging is opt-in via WithLogger).
func noopLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
