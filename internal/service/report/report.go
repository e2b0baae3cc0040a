// Package report projects calculation records into textual renderings. The
// projections are pure: formatting changes nothing about the records.
package report

import (
	"fmt"
	"time"

	"github.com/elecreview/voltage-planner/internal/engine"
	"github.com/elecreview/voltage-planner/internal/service/report/csv"
	"github.com/elecreview/voltage-planner/internal/service/report/text"
	"github.com/elecreview/voltage-planner/internal/service/report/types"
)

type Generator struct {
	renderers map[types.ReportFormat]types.Renderer
}

func NewGenerator() *Generator {
	g := &Generator{renderers: make(map[types.ReportFormat]types.Renderer)}
	for _, r := range []types.Renderer{text.NewRenderer(), csv.NewRenderer()} {
		g.renderers[r.SupportedFormat()] = r
	}
	return g
}

func (g *Generator) Generate(runName string, records []engine.Calculation, format types.ReportFormat) (string, error) {
	renderer, ok := g.renderers[format]
	if !ok {
		return "", fmt.Errorf("unsupported report format: %s", format)
	}

	now := time.Now()
	data := &types.ReportData{
		RunName:       runName,
		Generated:     now.Format("2006-01-02"),
		GeneratedTime: now.Format("15:04:05"),
		Records:       records,
	}

	return renderer.Render(data)
}
