package config

import (
	"go.uber.org/zap"
)

// Log is the process-wide logger. It is a no-op until InitLogger runs.
var Log = zap.NewNop()

// InitLogger builds a production JSON logger or a development console one.
func InitLogger() {
	var (
		l   *zap.Logger
		err error
	)
	if IsProduction() {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("❌ failed to build logger: " + err.Error())
	}
	Log = l
	zap.ReplaceGlobals(l)
}

// SyncLogger flushes buffered log entries.
func SyncLogger() {
	_ = Log.Sync()
}
