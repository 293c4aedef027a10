package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"os-scheduler/internal/bankers"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/ui"
)

var (
	playBanker   bool          // Animate the Banker's check instead of a schedule
	playInterval time.Duration // Overrides playback.interval from the config
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Animate a schedule or the Banker's safety check in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		interval := cfg.PlaybackInterval
		if playInterval > 0 {
			interval = playInterval
		}

		if playBanker {
			bankerInputPath = inputPath
			request, err := loadBankersInput()
			if err != nil {
				logrus.Fatalln(err)
			}
			result := bankers.Check(request.Processes, request.Available)
			if err := ui.RunBankers(request.Processes, request.Available, result, interval); err != nil {
				logrus.Fatalln(err)
			}
			return
		}

		request, err := loadScheduleInput(cmd)
		if err != nil {
			logrus.Fatalln(err)
		}
		alg, err := schedulers.ParseAlgorithm(algorithmName)
		if err != nil {
			logrus.Fatalln(err)
		}
		schedule, err := simulate(alg, request)
		if err != nil {
			logrus.Fatalln(err)
		}
		if err := ui.RunSchedule(schedulers.Details(alg).Title, schedule, interval); err != nil {
			logrus.Fatalln(err)
		}
	},
}

func init() {
	addScheduleFlags(playCmd, "Algorithm (fcfs, sjf, ljf, srtf, hrrn, rr, priority, mlfq)")
	playCmd.Flags().BoolVar(&playBanker, "banker", false, "Animate the Banker's safety check; --input then names a Banker's file")
	playCmd.Flags().DurationVar(&playInterval, "interval", 0, "Time per simulated unit (default from config)")
	rootCmd.AddCommand(playCmd)
}
