package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mlopsdemo",
	Short: "Seller risk MLOps demo dashboard",
	Long: `mlopsdemo serves a simulated MLOps analytics dashboard for seller risk
and fraud detection.

Every number is generated in-process: live metric cards, a latency chart,
fraud events and a step-by-step deployment workflow simulator.`,
	SilenceUsage: true,
}

var (
	configFile string
	envFile    string
	logLevel   string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file (ignored when missing)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(flowsCmd)
	rootCmd.AddCommand(simulateCmd)
}
