package cmd

import (
	"testing"

	"megabot/config"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	original := log.GetLevel()
	defer log.SetLevel(original)
	defer log.SetFormatter(&log.TextFormatter{})

	c := config.NewTestConfig()
	c.LogLevel = "WARN"
	c.Environment = "production"
	require.NoError(t, configureLogging(c))
	assert.Equal(t, log.WarnLevel, log.GetLevel())
	_, isJSON := log.StandardLogger().Formatter.(*log.JSONFormatter)
	assert.True(t, isJSON)

	c.LogLevel = "chatty"
	require.Error(t, configureLogging(c))
}

func TestCommandTree(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"run", "migrate", "adjust-balance", "backup"} {
		assert.True(t, names[want], want)
	}

	var migrateNames []string
	for _, sub := range migrateCmd.Commands() {
		migrateNames = append(migrateNames, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status"}, migrateNames)
}
