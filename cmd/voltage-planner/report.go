package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/elecreview/voltage-planner/internal/engine"
	"github.com/elecreview/voltage-planner/internal/model"
	"github.com/elecreview/voltage-planner/internal/panelxlsx"
	"github.com/elecreview/voltage-planner/internal/service/report"
	"github.com/elecreview/voltage-planner/internal/service/report/types"
	"github.com/elecreview/voltage-planner/internal/settings"
	"github.com/elecreview/voltage-planner/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"
)

var (
	circuitsFile string
	reportFormat string
	runName      string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute voltage drops for a circuits file and print the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.InitLog(zap.NewAtomicLevelAt(zap.WarnLevel))
		defer func() { _ = logger.Sync() }()
		undo := zap.ReplaceGlobals(logger)
		defer undo()

		projectSettings, err := settings.LoadOrDefault(settingsFile)
		if err != nil {
			return err
		}

		circuits, err := loadCircuits(circuitsFile)
		if err != nil {
			return err
		}

		eng := engine.New(projectSettings)
		calcs := eng.CalculateAll(model.FromAPIList(circuits))

		generator := report.NewGenerator()
		rendered, err := generator.Generate(runName, calcs, types.ReportFormat(api.StringToReportFormat(reportFormat)))
		if err != nil {
			return err
		}

		fmt.Print(rendered)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&circuitsFile, "circuits", "c", "", "Path to the circuits file (YAML, JSON, or XLSX panel schedule)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "Report format: text or csv")
	reportCmd.Flags().StringVarP(&runName, "name", "n", "", "Report title")
	_ = reportCmd.MarkFlagRequired("circuits")
}

func loadCircuits(path string) ([]api.Circuit, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return panelxlsx.Parse(content)
	}

	var circuits []api.Circuit
	if err := yaml.Unmarshal(content, &circuits); err != nil {
		return nil, fmt.Errorf("parsing circuits file: %w", err)
	}
	return circuits, nil
}
