/*
Package xlog provides a Logger interface and supporting functions to control
debug output of the qsf packages.

The log.Logger type of the standard library supports the Logger interface. If
the Logger is nil, the functions of this package don't do anything, so
configurations can carry a nil Logger by default without any formatting cost.
*/
package xlog

import "fmt"

// Logger is the interface required for debug output. The log.Logger type
// supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// prefixLogger puts a prefix in front of every message.
type prefixLogger struct {
	l      Logger
	prefix string
}

func (p prefixLogger) Output(calldepth int, s string) error {
	return p.l.Output(calldepth+1, p.prefix+s)
}

// WithPrefix returns a logger that adds prefix to each message. A nil logger
// stays nil.
func WithPrefix(l Logger, prefix string) Logger {
	if l == nil {
		return nil
	}
	return prefixLogger{l: l, prefix: prefix}
}

// Lines collects the messages in memory. It is useful in tests.
type Lines []string

// Output appends s to the lines.
func (ls *Lines) Output(calldepth int, s string) error {
	*ls = append(*ls, s)
	return nil
}
