package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"os-scheduler/internal/bankers"
	"os-scheduler/internal/loader"
	"os-scheduler/internal/report"
	"os-scheduler/internal/requests"
)

var bankerInputPath string // YAML or JSON Banker's input; example data when empty

var bankerCmd = &cobra.Command{
	Use:   "banker",
	Short: "Run the Banker's algorithm safety check",
	Run: func(cmd *cobra.Command, args []string) {
		request, err := loadBankersInput()
		if err != nil {
			logrus.Fatalln(err)
		}
		result := bankers.Check(request.Processes, request.Available)
		report.WriteBankers(os.Stdout, request.Processes, request.Available, result)
	},
}

// loadBankersInput reads --input, or falls back to the textbook example, and
// validates the result.
func loadBankersInput() (requests.BankersRequest, error) {
	request := requests.BankersRequest{
		Processes: bankers.ExampleProcesses(),
		Available: bankers.ExampleAvailable,
	}
	if bankerInputPath != "" {
		loaded, err := loader.LoadBankersFile(bankerInputPath)
		if err != nil {
			return request, err
		}
		request = loaded
	} else {
		logrus.Infof("no input given, using the example state")
	}
	return request, bankers.Validate(request.Processes, request.Available)
}

func init() {
	bankerCmd.Flags().StringVar(&bankerInputPath, "input", "", "Banker's input file (.yaml or .json); example data when omitted")
	rootCmd.AddCommand(bankerCmd)
}
