// Package logx provides the toolkit's structured logger. All packages log
// through these wrappers so host applications get a single, consistently
// prefixed stream on stderr.
package logx

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once      sync.Once
	singleton *log.Logger
)

func logger() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "scenekit",
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// SetDebug switches the logger to debug level (or back to info).
func SetDebug(on bool) {
	if on {
		logger().SetLevel(log.DebugLevel)
	} else {
		logger().SetLevel(log.InfoLevel)
	}
}

func Debugf(msg string, args ...any) { logger().Debugf(msg, args...) }
func Infof(msg string, args ...any)  { logger().Infof(msg, args...) }
func Warnf(msg string, args ...any)  { logger().Warnf(msg, args...) }
func Errorf(msg string, args ...any) { logger().Errorf(msg, args...) }
func Fatalf(msg string, args ...any) { logger().Fatalf(msg, args...) }
