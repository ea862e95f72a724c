// Command inningsim estimates the mean, standard deviation and standard error
// of runs scored in a half-inning by Monte Carlo simulation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xtding233/inning-sim/internal/cmd/inningsim"
)

func main() {
	fs := flag.NewFlagSet("inningsim", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "simulate the number of runs scored in a 3-out inning")
		fmt.Fprintln(fs.Output(), "\nusage: inningsim -n <trials> [flags]")
		fs.PrintDefaults()
	}
	cfg, err := inningsim.ParseConfig(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := inningsim.Run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
