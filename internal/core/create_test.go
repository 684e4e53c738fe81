package core_test

import (
	"os"
	"testing"

	"github.com/robgonnella/yunmon/internal/config"
	"github.com/robgonnella/yunmon/internal/core"
	"github.com/robgonnella/yunmon/internal/exception"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestCreateNewAppCore(t *testing.T) {
	testDBFile := "core.db"

	defer func() {
		os.RemoveAll(testDBFile)
	}()

	t.Run("creates core with history", func(st *testing.T) {
		viper.Set("database-file", testDBFile)
		defer viper.Set("database-file", "")

		conf := *config.Default()

		coreService, err := core.CreateNewAppCore(conf)

		assert.NoError(st, err)

		history, err := coreService.History()

		assert.NoError(st, err)

		records, err := history.GetAll()

		assert.NoError(st, err)
		assert.Empty(st, records)

		coreService.Stop()
	})

	t.Run("creates core without history", func(st *testing.T) {
		conf := *config.Default()
		conf.History.Disabled = true
		conf.Gateway.Transport = config.TransportWebsocket
		conf.Gateway.URL = "ws://127.0.0.1:1/netmon"

		coreService, err := core.CreateNewAppCore(conf)

		assert.NoError(st, err)

		_, err = coreService.History()

		assert.ErrorIs(st, err, exception.ErrHistoryDisabled)

		coreService.Stop()
	})

	t.Run("returns error when database path is missing", func(st *testing.T) {
		viper.Set("database-file", "")

		_, err := core.CreateNewAppCore(*config.Default())

		assert.Error(st, err)
	})

	t.Run("returns error for unsupported transport", func(st *testing.T) {
		conf := *config.Default()
		conf.Gateway.Transport = "carrier-pigeon"

		_, err := core.CreateNewAppCore(conf)

		assert.Error(st, err)
	})
}
