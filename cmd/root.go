// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"os"

	"github.com/cpmech/exdyn/fem"
	"github.com/cpmech/exdyn/inp"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel    string // log verbosity level
	verbose     bool   // show messages
	erasePrev   bool   // erase previous results
	saveSummary bool   // save summary
	alias       string // word appended to the simulation key
	nthreads    int    // number of workers; overrides the input file if positive
	dump        bool   // print the simulation data
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "exdyn",
	Short: "Explicit dynamic finite element solver",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
		io.Verbose = verbose
	},
}

// runCmd runs all stages of a simulation
var runCmd = &cobra.Command{
	Use:   "run <simulation.yaml>",
	Short: "Run a simulation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			io.PfWhite("\nexdyn -- explicit dynamics with the finite element method\n")
			io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n\n")
		}
		sim, err := inp.ReadSim(args[0], alias, erasePrev, saveSummary)
		if err != nil {
			logrus.Fatalf("cannot read simulation: %v", err)
		}
		if nthreads > 0 {
			sim.Data.Nthreads = nthreads
		}
		analysis, err := fem.NewMainFromSim(sim, saveSummary, verbose)
		if err != nil {
			logrus.Fatalf("cannot allocate solver: %v", err)
		}
		err = analysis.Run()
		if err != nil {
			logrus.Fatalf("Run failed: %v", err)
		}
		logrus.WithField("dirout", sim.DirOut).Info("Simulation complete.")
	},
}

// checkCmd sets all stages up without running them
var checkCmd = &cobra.Command{
	Use:   "check <simulation.yaml>",
	Short: "Check a simulation and print the number of equations of each stage",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sim, err := inp.ReadSim(args[0], alias, false, false)
		if err != nil {
			logrus.Fatalf("cannot read simulation: %v", err)
		}
		if dump {
			if err = sim.GetInfo(os.Stdout); err != nil {
				logrus.Fatalf("cannot print simulation: %v", err)
			}
		}
		neqs, err := CheckSim(sim)
		if err != nil {
			logrus.Fatalf("check failed: %v", err)
		}
		for stgidx, n := range neqs {
			io.Pf("stage %d: %v equations\n", stgidx, n)
		}
	},
}

// CheckSim sets up all stages of all domains and returns the number of equations
// [nstages][ndomains]; skipped stages have no entries
func CheckSim(sim *inp.Simulation) (neqs [][]int, err error) {
	doms := fem.NewDomains(sim, false)
	neqs = make([][]int, len(sim.Stages))
	for stgidx, stg := range sim.Stages {
		if stg.Skip {
			continue
		}
		for _, d := range doms {
			err = d.SetStage(stgidx)
			if err != nil {
				return nil, err
			}
			neqs[stgidx] = append(neqs[stgidx], d.Builder.GetEquationSystemSize())
		}
	}
	for _, d := range doms {
		d.Clean()
	}
	return
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&alias, "alias", "", "Word appended to the simulation key")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show messages")

	runCmd.Flags().BoolVar(&erasePrev, "erase", true, "Erase previous results")
	runCmd.Flags().BoolVar(&saveSummary, "summary", true, "Save summary of results")
	runCmd.Flags().IntVar(&nthreads, "nthreads", 0, "Number of workers; 0 uses the value of the input file")

	checkCmd.Flags().BoolVar(&dump, "dump", false, "Print the simulation data in YAML format")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
}
