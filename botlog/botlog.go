// Package botlog is a thin wrapper around github.com/op/go-logging,
// giving every package its own named logger instead of threading a
// *log.Logger through every constructor.
package botlog

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// Logger is go-logging's logger type, re-exported under this package;
// callers get one per module via Get.
type Logger = logging.Logger

// Get returns the named logger for module, creating it if necessary.
// Conventionally called once per package with its own name ("search",
// "driver", "cmd").
func Get(module string) *Logger {
	return logging.MustGetLogger(module)
}

// SetLevel adjusts the minimum level logged for module; an empty module
// name applies it to every module. Exposed
// so cmd/chessbot can wire a -verbose flag without reaching into
// go-logging directly.
func SetLevel(level string, module string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	logging.SetLevel(lvl, module)
	return nil
}
