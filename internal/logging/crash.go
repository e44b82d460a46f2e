package logging

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace and re-panics.
// Call it with defer at the start of long-running entry points.
func RecoverPanic(logger *zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}

	if logger == nil || logger.GetLevel() == zerolog.Disabled {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
		panic(r)
	}

	logger.Error().
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("panic recovered")

	panic(r)
}
