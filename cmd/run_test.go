package cmd

import (
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownStack_ReverseOrder(t *testing.T) {
	var closed []string
	record := func(name string) func() error {
		return func() error {
			closed = append(closed, name)
			return nil
		}
	}

	var stack shutdownStack
	stack.push("metrics", record("metrics"))
	stack.push("NATS connection", record("NATS connection"))
	stack.push("database pool", record("database pool"))
	stack.push("Discord connection", record("Discord connection"))
	stack.run()

	assert.Equal(t, []string{"Discord connection", "database pool", "NATS connection", "metrics"}, closed)
}

func TestShutdownStack_PartialStartup(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	var closed []string
	startup := func() (err error) {
		var stack shutdownStack
		defer stack.run()

		stack.push("metrics", func() error {
			closed = append(closed, "metrics")
			return nil
		})
		stack.push("NATS connection", func() error {
			closed = append(closed, "NATS connection")
			return errors.New("connection already closed")
		})
		stack.push("database pool", func() error {
			closed = append(closed, "database pool")
			return nil
		})

		// Fails before the Discord session is created
		return errors.New("failed to configure backups")
	}

	require.Error(t, startup())
	assert.Equal(t, []string{"database pool", "NATS connection", "metrics"}, closed)

	var shutdownErrors []*log.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Level == log.ErrorLevel {
			shutdownErrors = append(shutdownErrors, entry)
		}
	}
	require.Len(t, shutdownErrors, 1)
	assert.Equal(t, "NATS connection", shutdownErrors[0].Data["component"])
}

func TestShutdownStack_RunTwice(t *testing.T) {
	calls := 0
	var stack shutdownStack
	stack.push("database pool", func() error {
		calls++
		return nil
	})

	stack.run()
	stack.run()
	assert.Equal(t, 1, calls)
}
