// Package logrus adapts a *logrus.Entry to the cdkeygen progress/advisory
// sink.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/cdkeygen"
)

type LogrusLogger struct{ E *logrus.Entry }

var _ cdkeygen.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f cdkeygen.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f cdkeygen.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l LogrusLogger) Warn(msg string, f cdkeygen.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l LogrusLogger) Error(msg string, f cdkeygen.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
