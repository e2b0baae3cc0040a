package main

import "github.com/spf13/cobra"

var (
	settingsFile string
)

var rootCmd = &cobra.Command{
	Use:   "voltage-planner",
	Short: "voltage-planner computes feeder voltage-drop percentages for building circuits.",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVarP(&settingsFile, "settings", "s", "", "Path to the wire-catalog settings file")
}
