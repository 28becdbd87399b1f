package logging

import (
	"io"
	"log"
	"os"
)

const logFlags = log.Ldate | log.Ltime | log.Lshortfile | log.Lmsgprefix

func NewStdOutLogger(out io.Writer) *log.Logger {
	return log.New(out, "[INFO] ", logFlags)
}

func NewStdErrLogger(out io.Writer) *log.Logger {
	return log.New(out, "[ERROR] ", logFlags)
}

func NewLogger(out, err io.Writer) (*log.Logger, *log.Logger) {
	return NewStdOutLogger(out), NewStdErrLogger(err)
}

func NewDefaultLogger() (*log.Logger, *log.Logger) {
	return NewLogger(os.Stdout, os.Stderr)
}

// NewDiscardLogger returns a logger that drops everything written to it
func NewDiscardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
