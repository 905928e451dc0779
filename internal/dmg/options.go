package dmg

import (
	stdio "io"

	"github.com/retroenv/retrogolib/log"
)

// Opt configures a System before its components are wired together.
type Opt func(s *System)

// WithLogger routes the system's diagnostics to the given logger.
func WithLogger(logger *log.Logger) Opt {
	return func(s *System) {
		s.logger = logger
	}
}

// WithSerialWriter forwards every byte the running program stores to
// the serial data register. Test ROMs report their results through
// this channel.
func WithSerialWriter(w stdio.Writer) Opt {
	return func(s *System) {
		s.serial = w
	}
}
