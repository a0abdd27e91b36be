// Package testlog hands out loggers that write through testing.T.
package testlog

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/nostressdev/sdp/internal/logging"
)

// Start configures the test logging profile and returns a logger bound to t.
func Start(t testing.TB) zerolog.Logger {
	t.Helper()
	logging.ConfigureTests()
	log := logging.New(logging.Config{
		Level:   zerolog.DebugLevel,
		NoColor: true,
		Output:  zerolog.NewTestWriter(t),
	})
	log.Debug().Str("test", t.Name()).Msg("start")
	return log
}
