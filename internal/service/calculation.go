package service

import (
	"context"
	"time"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/elecreview/voltage-planner/internal/engine"
	"github.com/elecreview/voltage-planner/internal/model"
	"github.com/elecreview/voltage-planner/internal/service/mappers"
	"github.com/elecreview/voltage-planner/internal/service/report"
	"github.com/elecreview/voltage-planner/internal/service/report/types"
	"github.com/elecreview/voltage-planner/internal/store"
	storemodel "github.com/elecreview/voltage-planner/internal/store/model"
	"github.com/elecreview/voltage-planner/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CalculationService runs the voltage-drop engine over submitted circuits
// and keeps a history of runs.
type CalculationService struct {
	store     store.Store
	settings  *api.Settings
	generator *report.Generator
}

func NewCalculationService(store store.Store, settings *api.Settings) *CalculationService {
	return &CalculationService{
		store:     store,
		settings:  settings,
		generator: report.NewGenerator(),
	}
}

// RunCalculation computes the voltage drop for every submitted circuit and
// persists the run. Request-level settings override the server settings
// for that run only.
func (s *CalculationService) RunCalculation(ctx context.Context, request api.CalculationRunRequest, trigger string) (*api.CalculationRun, error) {
	settings := s.settings
	if request.Settings != nil {
		settings = request.Settings
	}

	eng := engine.New(settings)
	calcs := eng.CalculateAll(model.FromAPIList(request.Circuits))

	incomputable := 0
	for _, c := range calcs {
		if !c.Computable() {
			incomputable++
		}
	}

	records := mappers.CalculationListToAPI(calcs)
	run := storemodel.CalculationRun{
		ID:           uuid.New(),
		CreatedAt:    time.Now(),
		Name:         request.Name,
		Circuits:     len(records),
		Incomputable: incomputable,
		Records:      storemodel.MakeJSONField(records),
	}

	created, err := s.store.Run().Create(ctx, run)
	if err != nil {
		return nil, err
	}

	metrics.IncreaseCalculationsTotalMetric(trigger)
	metrics.AddCircuitsCalculatedMetric(len(records), incomputable)
	zap.S().Named("calculation").Infof("run %s completed: %d circuits, %d incomputable",
		created.ID, len(records), incomputable)

	return mappers.RunToAPI(created), nil
}

func (s *CalculationService) GetRun(ctx context.Context, id uuid.UUID) (*api.CalculationRun, error) {
	run, err := s.store.Run().Get(ctx, id)
	if err != nil {
		if err == store.ErrRecordNotFound {
			return nil, NewErrRunNotFound(id)
		}
		return nil, err
	}
	return mappers.RunToAPI(run), nil
}

func (s *CalculationService) ListRuns(ctx context.Context) (api.CalculationRunList, error) {
	runs, err := s.store.Run().List(ctx)
	if err != nil {
		return nil, err
	}
	return mappers.RunListToAPI(runs), nil
}

func (s *CalculationService) DeleteRun(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Run().Delete(ctx, id); err != nil {
		if err == store.ErrRecordNotFound {
			return NewErrRunNotFound(id)
		}
		return err
	}
	return nil
}

// Report renders a persisted run in the requested format.
func (s *CalculationService) Report(ctx context.Context, id uuid.UUID, format types.ReportFormat) (string, error) {
	run, err := s.store.Run().Get(ctx, id)
	if err != nil {
		if err == store.ErrRecordNotFound {
			return "", NewErrRunNotFound(id)
		}
		return "", err
	}

	var records []api.CalculationRecord
	if run.Records != nil {
		records = run.Records.Data
	}

	return s.generator.Generate(run.Name, mappers.CalculationListFromAPI(records), format)
}
