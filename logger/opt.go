package logger

import (
	"log"

	"github.com/xy-planning-network/basecamp"
)

// A LoggerOptFn is a functional option configuring a CampLogger when constructing a new one.
type LoggerOptFn func(*CampLogger)

// WithEnv sets the environment CampLogger is operating in.
func WithEnv(env basecamp.Environment) LoggerOptFn {
	return func(l *CampLogger) {
		l.env = env
	}
}

// WithLevel sets the log level CampLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *CampLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger CampLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *CampLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *CampLogger) {
		l.skip = skip
	}
}
