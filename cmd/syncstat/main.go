// syncstat summarizes the host/device clock sync points in syncpoints.txt.
package main

import (
	"os"

	"github.com/tracesift/tracesift/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteSyncStat())
}
