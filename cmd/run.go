package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"os-scheduler/internal/core"
	"os-scheduler/internal/loader"
	"os-scheduler/internal/playback"
	"os-scheduler/internal/report"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

const allAlgorithms = "all"

var (
	algorithmName     string // Algorithm id, or "all"
	inputPath         string // CSV, YAML or JSON process file
	timeQuantum       int    // Round robin quantum, overrides file and config
	levelsTimeQuantum []int  // MLFQ quanta, override file and config
	follow            bool   // Stream the schedule one time unit per interval
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a scheduling algorithm and print its Gantt chart and metrics",
	Run: func(cmd *cobra.Command, args []string) {
		request, err := loadScheduleInput(cmd)
		if err != nil {
			logrus.Fatalln(err)
		}

		if algorithmName == allAlgorithms {
			runAll(request)
			return
		}

		alg, err := schedulers.ParseAlgorithm(algorithmName)
		if err != nil {
			logrus.Fatalln(err)
		}
		schedule, err := simulate(alg, request)
		if err != nil {
			logrus.Fatalln(err)
		}

		if follow {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			err := playback.Play(ctx, playback.NewCursor(schedule), cfg.PlaybackInterval, func(f playback.Frame) {
				fmt.Printf("t=%-4d %s\n", f.Time, report.Label(f.Running))
			})
			if errors.Is(err, context.Canceled) {
				fmt.Println("Stopped.")
				return
			}
			if err != nil {
				logrus.Fatalln(err)
			}
			fmt.Println()
		}
		report.WriteSchedule(os.Stdout, schedulers.Details(alg).Title, schedule)
	},
}

func runAll(request requests.ScheduleRequests) {
	var rows []report.Comparison
	for _, alg := range schedulers.Algorithms() {
		schedule, err := simulate(alg, request)
		if err != nil {
			logrus.Warnf("skipping %s: %v", alg, err)
			continue
		}
		title := schedulers.Details(alg).Title
		report.WriteSchedule(os.Stdout, title, schedule)
		rows = append(rows, report.Comparison{Title: title, Schedule: schedule})
	}
	report.WriteComparison(os.Stdout, rows)
}

func simulate(alg schedulers.Algorithm, request requests.ScheduleRequests) (core.Schedule, error) {
	if err := schedulers.ValidateProcesses(alg, request.Processes); err != nil {
		return core.Schedule{}, err
	}
	return schedulers.Simulate(alg, request.Processes, request.Options(cfg))
}

// loadScheduleInput reads --input and applies the quantum flags on top of
// what the file sets.
func loadScheduleInput(cmd *cobra.Command) (requests.ScheduleRequests, error) {
	if inputPath == "" {
		return requests.ScheduleRequests{}, errors.New("no input file given, use --input")
	}
	request, err := loader.LoadScheduleFile(inputPath)
	if err != nil {
		return request, err
	}
	if cmd.Flags().Changed("quantum") {
		request.TimeQuantum = &timeQuantum
	}
	if cmd.Flags().Changed("levels") {
		request.LevelsTimeQuantum = levelsTimeQuantum
	}
	logrus.Infof("loaded %d processes from %s", len(request.Processes), inputPath)
	return request, nil
}

func addScheduleFlags(cmd *cobra.Command, algorithmUsage string) {
	cmd.Flags().StringVar(&algorithmName, "algorithm", "fcfs", algorithmUsage)
	cmd.Flags().StringVar(&inputPath, "input", "", "Process file (.csv rows id,burst,arrival[,priority], .yaml or .json)")
	cmd.Flags().IntVar(&timeQuantum, "quantum", 0, "Round robin time quantum (default from input file or config)")
	cmd.Flags().IntSliceVar(&levelsTimeQuantum, "levels", nil, "Comma-separated MLFQ level quanta (default from input file or config)")
}

func init() {
	addScheduleFlags(runCmd, `Algorithm (fcfs, sjf, ljf, srtf, hrrn, rr, priority, mlfq) or "all"`)
	runCmd.Flags().BoolVar(&follow, "follow", false, "Stream the schedule one time unit per playback interval before the report")
	rootCmd.AddCommand(runCmd)
}
