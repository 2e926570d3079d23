package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommandRunsWithoutConfig(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	viper.Reset()
	cfgFile = ""
	cfgReadErr = nil

	rootCmd.SetArgs([]string{"version", "--short"})
	require.NoError(t, rootCmd.Execute())
}

func TestLoadConfigReportsMissingFile(t *testing.T) {
	viper.Reset()
	cfgFile = filepath.Join(t.TempDir(), "missing.toml")
	cfgReadErr = nil
	t.Cleanup(func() { cfgFile = ""; cfgReadErr = nil })

	initConfig()

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read config file")
}
