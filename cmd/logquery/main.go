// Command logquery queries histograms and logs from a log service project.
package main

import (
	"os"

	"github.com/forestrie/go-logquery/cmd/logquery/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
