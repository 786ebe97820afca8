// Copyright © 2016 Abcum Ltd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log wraps a single shared logrus instance used for optional
// diagnostic output from the geometry kernel. The library is silent
// unless a debug or trace level is enabled by the embedding program.
package log

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

var log *Logger

// Logger ...
type Logger struct {
	*logrus.Logger
}

func init() {
	log = &Logger{
		logrus.New(),
	}
	log.Logger.SetOutput(os.Stderr)
	log.Logger.SetLevel(WarnLevel)
	log.Logger.SetFormatter(&TextFormatter{
		TimestampFormat: time.RFC3339,
	})
}

// Instance returns the underlying logger instance
func Instance() *logrus.Logger {
	return log.Logger
}

// Hook adds a logging hook to the logger instance
func Hook(hook logrus.Hook) {
	log.AddHook(hook)
}

// IsDebug returns whether debug level logs are enabled
func IsDebug() bool {
	return log.IsLevelEnabled(DebugLevel)
}

// IsTrace returns whether trace level logs are enabled
func IsTrace() bool {
	return log.IsLevelEnabled(TraceLevel)
}

// SetLevel sets the logging level of the logger instance.
func SetLevel(v string) {
	switch v {
	case "trace":
		log.Logger.SetLevel(TraceLevel)
	case "debug":
		log.Logger.SetLevel(DebugLevel)
	case "info":
		log.Logger.SetLevel(InfoLevel)
	case "warn":
		log.Logger.SetLevel(WarnLevel)
	case "error":
		log.Logger.SetLevel(ErrorLevel)
	case "fatal":
		log.Logger.SetLevel(FatalLevel)
	case "panic":
		log.Logger.SetLevel(PanicLevel)
	}
}

// SetOutput sets the logging output of the logger instance.
func SetOutput(v string) {
	switch v {
	case "none":
		log.Logger.SetOutput(ioutil.Discard)
	case "stdout":
		log.Logger.SetOutput(os.Stdout)
	case "stderr":
		log.Logger.SetOutput(os.Stderr)
	}
}

// SetFormat sets the logging format of the logger instance.
func SetFormat(v string) {
	switch v {
	case "json":
		log.Logger.SetFormatter(&JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	case "text":
		log.Logger.SetFormatter(&TextFormatter{
			TimestampFormat: time.RFC3339,
		})
	}
}

// Debug logs a message at level Debug on the standard logger.
func Debug(v ...interface{}) {
	log.Debug(v...)
}

// Debugf logs a message at level Debug on the standard logger.
func Debugf(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

// Error logs a message at level Error on the standard logger.
func Error(v ...interface{}) {
	log.Error(v...)
}

// Errorf logs a message at level Error on the standard logger.
func Errorf(format string, v ...interface{}) {
	log.Errorf(format, v...)
}

// Info logs a message at level Info on the standard logger.
func Info(v ...interface{}) {
	log.Info(v...)
}

// Infof logs a message at level Info on the standard logger.
func Infof(format string, v ...interface{}) {
	log.Infof(format, v...)
}

// Warn logs a message at level Warn on the standard logger.
func Warn(v ...interface{}) {
	log.Warn(v...)
}

// Warnf logs a message at level Warn on the standard logger.
func Warnf(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

// WithPrefix prepares a log entry with a prefix.
func WithPrefix(value interface{}) *logrus.Entry {
	return log.WithField("prefix", value)
}

// WithField prepares a log entry with a single data field.
func WithField(key string, value interface{}) *logrus.Entry {
	return log.WithField(key, value)
}

// WithFields prepares a log entry with multiple data fields.
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return log.WithFields(fields)
}
