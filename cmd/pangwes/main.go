// Command pangwes is the batch distance-query driver: it wires the graph
// builders, the search-job scheduler, the parallel distance engines, and
// the outlier engine behind two subcommands, solve and outliers.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
