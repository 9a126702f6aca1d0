// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"

	"github.com/hydroxyde/hdrxd/chaincfg"
)

var logger = NewLogger()

func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&CustomTextFormatter{})
	return log
}

// GetLoggerEntry returns a logger tagged with the subsystem name.
func GetLoggerEntry(module string) *logrus.Entry {
	return logger.WithField("module", module)
}

type CustomTextFormatter struct{}

func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	b.WriteString(fmt.Sprintf("%s ", timestamp))
	b.WriteString(fmt.Sprintf("[%s] ", entry.Level.String()))
	moduleName, ok := entry.Data["module"].(string)
	if !ok {
		moduleName = "default"
	}
	b.WriteString(fmt.Sprintf("%s: ", moduleName))
	b.WriteString(entry.Message)
	b.WriteByte('\n')

	return b.Bytes(), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.
var (
	cmdLog = GetLoggerEntry("CMD")
	cfgLog = GetLoggerEntry("CFG")
)

// Initialize package-global logger variables.
func init() {
	chaincfg.UseLogger(cfgLog)
}

// initLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  Output keeps going to stdout.
func initLogRotator(logFile string) error {
	logDir, file := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	fileHook, err := rotatelogs.New(
		filepath.Join(logDir, file+".%Y%m%d%H%M.log"),
		rotatelogs.WithLinkName(filepath.Join(logDir, file+".log")),
		rotatelogs.WithMaxAge(30*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("failed to create log rotator: %w", err)
	}

	logger.SetOutput(io.MultiWriter(os.Stdout, fileHook))
	return nil
}

// setLogLevels sets the logging level of the backend.  Invalid levels are
// reported to the caller.
func setLogLevels(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	return nil
}

// validLogLevel returns whether logLevel is a level logrus understands.
func validLogLevel(logLevel string) bool {
	_, err := logrus.ParseLevel(logLevel)
	return err == nil
}

// pickNoun returns the singular or plural form of a noun depending
// on the count n.
func pickNoun(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
