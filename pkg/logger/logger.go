package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logg.SetLevel(level)
}

func L() *logrus.Logger {
	return logg
}

// LogError records a data-layer or handler failure with enough context
// to find it again. The caller still returns a generic message upstream.
func LogError(module, funcName string, err error, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["module"] = module
	fields["funcName"] = funcName
	logg.WithFields(fields).Error(err.Error())
}
