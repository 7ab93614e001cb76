package mr

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogging points the package-global zerolog logger (used by
// the pool, Run, and reporter.go) at a console writer and sets
// its level.
func ConfigureLogging(level zerolog.Level) {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}
