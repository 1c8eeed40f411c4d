// tracefilter prints the TS engine lines and the CQM event 8/9 lines of a
// decoded trace log.
package main

import (
	"os"

	"github.com/tracesift/tracesift/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteFilter())
}
