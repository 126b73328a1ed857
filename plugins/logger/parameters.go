package logger

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgLoggerLevel defines the config flag of the minimum enabled log level.
	CfgLoggerLevel = "logger.level"
	// CfgLoggerDisableCaller defines the config flag that stops annotating logs with the calling function.
	CfgLoggerDisableCaller = "logger.disableCaller"
	// CfgLoggerDisableStacktrace defines the config flag that disables stacktraces on error logs.
	CfgLoggerDisableStacktrace = "logger.disableStacktrace"
	// CfgLoggerEncoding defines the config flag of the logger encoding, "console" or "json".
	CfgLoggerEncoding = "logger.encoding"
	// CfgLoggerOutputPaths defines the config flag of the logger outputs.
	CfgLoggerOutputPaths = "logger.outputPaths"
)

func init() {
	flag.String(CfgLoggerLevel, "info", "log level")
	flag.Bool(CfgLoggerDisableCaller, true, "disable caller info in log")
	flag.Bool(CfgLoggerDisableStacktrace, false, "disable stack trace in log")
	flag.String(CfgLoggerEncoding, "console", "log encoding")
	flag.StringSlice(CfgLoggerOutputPaths, []string{"stdout"}, "log output paths")
}
