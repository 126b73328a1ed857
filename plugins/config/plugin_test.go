package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *flag.FlagSet {
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.String("webapi.bindAddress", "127.0.0.1:8080", "")
	flags.Int("webapi.cacheSize", 10000, "")
	flags.String("migration.networkPrefix", "iota", "")
	require.NoError(t, flags.Parse(args))

	return flags
}

func TestFetchConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{
		"webapi": {"bindAddress": "0.0.0.0:9090", "cacheSize": 5},
		"migration": {"networkPrefix": "atoi"}
	}`), 0o600))

	v := viper.New()
	require.NoError(t, Fetch(v, newFlagSet(t, "--migration.networkPrefix=iota"), dir, "config", false))

	assert.Equal(t, "0.0.0.0:9090", v.GetString("webapi.bindAddress"))
	assert.Equal(t, 5, v.GetInt("webapi.cacheSize"))
	// explicitly set flags win over the config file
	assert.Equal(t, "iota", v.GetString("migration.networkPrefix"))
}

func TestFetchDefaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, Fetch(v, newFlagSet(t), t.TempDir(), "config", true))

	assert.Equal(t, "127.0.0.1:8080", v.GetString("webapi.bindAddress"))
	assert.Equal(t, 10000, v.GetInt("webapi.cacheSize"))
}

func TestFetchEnvironment(t *testing.T) {
	t.Setenv("WEBAPI_BINDADDRESS", "localhost:1234")

	v := viper.New()
	require.NoError(t, Fetch(v, newFlagSet(t), t.TempDir(), "config", true))

	assert.Equal(t, "localhost:1234", v.GetString("webapi.bindAddress"))
}

func TestFetchMissingConfigFile(t *testing.T) {
	err := Fetch(viper.New(), newFlagSet(t), t.TempDir(), "config", false)
	assert.True(t, errors.Is(err, ErrConfigFileNotFound))
}

func TestFetchBrokenConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"webapi": `), 0o600))

	err := Fetch(viper.New(), newFlagSet(t), dir, "config", true)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigFileNotFound))
}
