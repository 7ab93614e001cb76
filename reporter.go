package mr

// Status and counter reporting for mapper/reducer callbacks, backed by
// the package's zerolog logger.

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Statusln reports a free-form status line. Arguments are passed to
// fmt.Sprintln.
func Statusln(a ...interface{}) {
	log.Info().Msg(fmt.Sprintln(a...))
}

// Statusf reports a formatted status line. Arguments are passed to
// fmt.Sprintf.
func Statusf(format string, a ...interface{}) {
	log.Info().Msg(fmt.Sprintf(format, a...))
}

// IncrCounter reports that a named counter within a group advanced by
// amount. Mapper/reducer bodies use this the way distwc.c's word count
// would report a running total, without owning their own logging setup.
func IncrCounter(group, counter string, amount int) {
	log.Info().Str("group", group).Str("counter", counter).Int("amount", amount).Msg("counter")
}
