package logger

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the root logger of the node from the logger config values.
func NewLogger(config *viper.Viper) (*zap.SugaredLogger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(config.GetString(CfgLoggerLevel))); err != nil {
		return nil, errors.Errorf("invalid log level %q: %w", config.GetString(CfgLoggerLevel), err)
	}

	outputPaths := config.GetStringSlice(CfgLoggerOutputPaths)
	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}

	cfg := zap.Config{
		Level:             level,
		DisableCaller:     config.GetBool(CfgLoggerDisableCaller),
		DisableStacktrace: config.GetBool(CfgLoggerDisableStacktrace),
		Encoding:          config.GetString(CfgLoggerEncoding),
		EncoderConfig:     encoderConfig(),
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Errorf("failed to build logger: %w", err)
	}

	return logger.Sugar(), nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}
