// Package logflags selects which components of framewalk produce debug
// output and where that output goes.
//
// The frame walking engine itself never logs: only the layers that drive it
// (the tracer, the backtrace collector and the command line) do.
package logflags

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

var native = false
var walk = false
var config = false

var logOut io.WriteCloser

func makeLogger(flag bool, fields Fields) Logger {
	if lf := loggerFactory; lf != nil {
		return lf(flag, fields, logOut)
	}
	var out io.Writer
	if logOut != nil {
		out = logOut
	}
	return newLogrusLogger(flag, fields, out)
}

// Native returns true if the ptrace layer should log.
func Native() bool {
	return native
}

// NativeLogger returns a logger for the ptrace layer.
func NativeLogger() Logger {
	return makeLogger(native, Fields{"layer": "native"})
}

// Walk returns true if the backtrace collector should log every frame it
// walks.
func Walk() bool {
	return walk
}

// WalkLogger returns a logger for the backtrace collector.
func WalkLogger() Logger {
	return makeLogger(walk, Fields{"layer": "walk"})
}

// Config returns true if loading the configuration file should be logged.
func Config() bool {
	return config
}

// ConfigLogger returns a logger for the configuration loader.
func ConfigLogger() Logger {
	return makeLogger(config, Fields{"layer": "config"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets the logging flags based on the contents of logstr and
// redirects log output to logDest, a file name, when it is not empty.
func Setup(logFlag bool, logstr, logDest string) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if logDest != "" {
		f, err := os.Create(logDest)
		if err != nil {
			return fmt.Errorf("could not create log file: %w", err)
		}
		logOut = f
		log.SetOutput(f)
	}
	if !logFlag {
		log.SetOutput(io.Discard)
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "native"
	}
	for _, logcmd := range strings.Split(logstr, ",") {
		switch logcmd {
		case "native":
			native = true
		case "walk":
			walk = true
		case "config":
			config = true
		default:
			return fmt.Errorf("unknown log component %q", logcmd)
		}
	}
	return nil
}

// Close closes the log destination opened by Setup, if any.
func Close() {
	if logOut != nil {
		logOut.Close()
		logOut = nil
	}
}
