package main

import (
	"fmt"

	"github.com/elecreview/voltage-planner/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Printf("voltage-planner %s", info.GitVersion)
		if info.GitCommit != "" {
			fmt.Printf(" (%s)", info.GitCommit)
		}
		fmt.Println()
	},
}
