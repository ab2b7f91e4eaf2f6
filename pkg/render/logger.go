package render

import (
	"fmt"
	"os"
)

// DefaultLogger writes pass-timing lines to stdout, the same cadence the
// batch CLI driver uses between refine calls.
type DefaultLogger struct{}

func (DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}
