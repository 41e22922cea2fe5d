//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Logger implements the command logging facility. It is safe for
// concurrent use.
type Logger struct {
	m       sync.Mutex
	out     io.Writer
	verbose bool
}

// NewLogger creates a new logger outputting to the argument io.Writer.
func NewLogger(out io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     out,
		verbose: verbose,
	}
}

func message(format string, a []interface{}) string {
	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	return msg
}

func (l *Logger) print(loc Point, prefix, msg string) {
	l.m.Lock()
	defer l.m.Unlock()

	if loc.Undefined() {
		fmt.Fprintf(l.out, "%s: %s%s", loc.Source, prefix, msg)
	} else {
		fmt.Fprintf(l.out, "%s: %s%s", loc, prefix, msg)
	}
}

// Errorf logs an error message and returns it as an error.
func (l *Logger) Errorf(loc Point, format string, a ...interface{}) error {
	msg := message(format, a)
	l.print(loc, "", msg)

	idx := strings.IndexRune(msg, '\n')
	if idx > 0 {
		msg = msg[:idx]
	}
	return errors.New(msg)
}

// Warningf logs a warning message.
func (l *Logger) Warningf(loc Point, format string, a ...interface{}) {
	l.print(loc, "warning: ", message(format, a))
}

// Debugf logs a message if the logger is verbose.
func (l *Logger) Debugf(format string, a ...interface{}) {
	if !l.verbose {
		return
	}
	msg := message(format, a)

	l.m.Lock()
	defer l.m.Unlock()
	fmt.Fprint(l.out, msg)
}
