package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"os-scheduler/internal/loader"
)

var (
	generateCount    int    // Number of processes
	generateSeed     int64  // Seed for random arrivals, bursts and priorities
	generatePriority bool   // Add a priority column
	generateOutput   string // Output CSV path; stdout when empty
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a random process set as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		if generateCount <= 0 {
			logrus.Fatalf("Invalid process count: %d", generateCount)
		}
		processes := loader.RandomProcesses(generateCount, generateSeed, generatePriority)

		var w io.Writer = os.Stdout
		if generateOutput != "" {
			f, err := os.Create(generateOutput)
			if err != nil {
				logrus.Fatalln(err)
			}
			defer f.Close()
			w = f
		}
		if err := loader.WriteProcessesCSV(w, processes); err != nil {
			logrus.Fatalln(err)
		}
		logrus.Infof("generated %d processes with seed %d", generateCount, generateSeed)
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateCount, "count", 5, "Number of processes")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 42, "Seed for random process generation")
	generateCmd.Flags().BoolVar(&generatePriority, "priority", false, "Include a priority column")
	generateCmd.Flags().StringVar(&generateOutput, "output", "", "Output CSV file (default stdout)")
	rootCmd.AddCommand(generateCmd)
}
