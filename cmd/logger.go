package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
)

// log is the package logger. Operational messages go to stderr so stdout
// stays reserved for remote command output.
var log = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}()
