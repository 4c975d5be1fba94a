// Package logging constructs the shared zap logger.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	instance *zap.SugaredLogger
	initErr  error
	once     sync.Once
)

// New returns the process-wide logger. Development mode switches to the
// human-readable console encoder; production mode logs JSON to stderr.
// A construction failure is remembered, so later calls report it instead
// of returning a nil logger with no error.
func New(development bool) (*zap.SugaredLogger, error) {
	once.Do(func() {
		var l *zap.Logger
		if development {
			l, initErr = zap.NewDevelopment()
		} else {
			l, initErr = zap.NewProduction()
		}
		if initErr != nil {
			return
		}
		instance = l.Sugar()
	})
	return instance, initErr
}
