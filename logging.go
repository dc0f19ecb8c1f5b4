package gmpcoro

import (
	"io"

	"github.com/rs/zerolog"
)

// defaultLogger returns a disabled zerolog.Logger: silent unless a caller
// opts in with WithLogger, the usual convention for a library that must
// not spam a host application's output by default.
func defaultLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}
