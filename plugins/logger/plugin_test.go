package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(level, encoding string, outputPaths ...string) *viper.Viper {
	v := viper.New()
	v.Set(CfgLoggerLevel, level)
	v.Set(CfgLoggerEncoding, encoding)
	v.Set(CfgLoggerOutputPaths, outputPaths)

	return v
}

func TestNewLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "node.log")

	log, err := NewLogger(newConfig("warn", "json", logFile))
	require.NoError(t, err)

	log.Named("WebAPI").Infow("dropped", "key", "value")
	log.Named("WebAPI").Warnw("written", "key", "value")
	require.NoError(t, log.Sync())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "dropped")
	assert.Contains(t, string(content), `"msg":"written"`)
	assert.Contains(t, string(content), `"logger":"WebAPI"`)
	assert.Contains(t, string(content), `"level":"WARN"`)
}

func TestNewLoggerInvalidConfig(t *testing.T) {
	_, err := NewLogger(newConfig("loud", "json"))
	assert.Error(t, err)

	_, err = NewLogger(newConfig("info", "xml"))
	assert.Error(t, err)
}
