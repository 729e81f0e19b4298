// Command gridpath runs A* searches over occupancy grids.
package main

import (
	"os"

	"github.com/katalvlaran/gridpath/cmd/gridpath/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
