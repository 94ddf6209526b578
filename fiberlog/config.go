package fiberlog

import "github.com/sirupsen/logrus"

// Config controls which logger receives access log entries and which
// tags end up as fields on every entry.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault is used when New is called without a config. Every request
// already carries a request id, so the default set includes it.
var ConfigDefault Config = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}
