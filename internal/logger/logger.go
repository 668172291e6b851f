package logger

import (
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
)

// Setup initializes Logrus writing through a rotating file.
func Setup() {
	rotator := &lumberjack.Logger{
		Filename:   "./logs/yardkeeper.log",
		MaxSize:    10, // megabytes
		MaxBackups: 7,  // keep up to 7 old files
		MaxAge:     7,  // days
		Compress:   true,
	}

	logrus.SetOutput(rotator)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetLevel(logrus.InfoLevel)
}

// L returns the standard Logrus logger for service-level logging.
func L() *logrus.Logger {
	return logrus.StandardLogger()
}
