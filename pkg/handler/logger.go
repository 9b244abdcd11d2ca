package handler

import "log"

type Logger interface {
	Debug(string, ...interface{})
}

type debugLogger struct{}
type nopLogger struct{}

// NewLogger keeps request logging out of the handlers unless the service
// was started with debugging on.
func NewLogger(debug bool) Logger {
	if debug {
		return debugLogger{}
	}

	return nopLogger{}
}

func (nopLogger) Debug(string, ...interface{}) {
}

func (debugLogger) Debug(msg string, args ...interface{}) {
	data := []interface{}{msg}
	data = append(data, args...)
	log.Println(data...)
}
