package core

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DiscardLogger returns a logger that drops every entry. It is the default
// for library packages so that embedding applications decide what is logged.
func DiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
