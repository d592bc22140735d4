package logger

import (
	"go-atm-sim/config"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// Init creates the shared logger. The level comes from the loaded config when
// present, otherwise info.
func Init() {
	Log = logrus.New()
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(config.AppConfig.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}
