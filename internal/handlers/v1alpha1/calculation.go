package v1alpha1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/elecreview/voltage-planner/internal/handlers/validator"
	"github.com/elecreview/voltage-planner/internal/panelxlsx"
	"github.com/elecreview/voltage-planner/internal/service"
	"github.com/elecreview/voltage-planner/internal/service/report/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxUploadSize bounds panel-schedule uploads to 16 MiB.
const maxUploadSize = 16 << 20

type CalculationHandler struct {
	calcSrv   *service.CalculationService
	validator *validator.Validator
}

func NewCalculationHandler(calcSrv *service.CalculationService) *CalculationHandler {
	v := validator.NewValidator()
	v.Register(validator.NewCalculationValidationRules()...)

	return &CalculationHandler{
		calcSrv:   calcSrv,
		validator: v,
	}
}

func (h *CalculationHandler) RegisterRoutes(router chi.Router) {
	router.Route("/api/v1alpha1/calculations", func(r chi.Router) {
		r.Post("/", h.CreateCalculation)
		r.Post("/upload", h.UploadPanelSchedule)
		r.Get("/", h.ListRuns)
		r.Get("/{id}", h.GetRun)
		r.Delete("/{id}", h.DeleteRun)
		r.Get("/{id}/report", h.GetReport)
	})
}

// (POST /api/v1alpha1/calculations)
func (h *CalculationHandler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var request api.CalculationRunRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(request); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	run, err := h.calcSrv.RunCalculation(r.Context(), request, "api")
	if err != nil {
		zap.S().Named("handler").Errorf("calculation run failed: %v", err)
		renderError(w, r, http.StatusInternalServerError, "calculation failed")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, run)
}

// (POST /api/v1alpha1/calculations/upload)
func (h *CalculationHandler) UploadPanelSchedule(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "reading upload")
		return
	}

	circuits, err := panelxlsx.Parse(content)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, service.NewErrPanelScheduleCorrupted(err.Error()).Error())
		return
	}
	if len(circuits) == 0 {
		renderError(w, r, http.StatusBadRequest, "panel schedule contains no circuits")
		return
	}

	request := api.CalculationRunRequest{
		Name:     r.FormValue("name"),
		Circuits: circuits,
	}
	if request.Name != "" {
		if err := h.validator.Struct(request); err != nil {
			renderError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	run, err := h.calcSrv.RunCalculation(r.Context(), request, "upload")
	if err != nil {
		zap.S().Named("handler").Errorf("calculation run failed: %v", err)
		renderError(w, r, http.StatusInternalServerError, "calculation failed")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, run)
}

// (GET /api/v1alpha1/calculations)
func (h *CalculationHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.calcSrv.ListRuns(r.Context())
	if err != nil {
		zap.S().Named("handler").Errorf("listing runs failed: %v", err)
		renderError(w, r, http.StatusInternalServerError, "listing runs failed")
		return
	}
	render.JSON(w, r, runs)
}

// (GET /api/v1alpha1/calculations/{id})
func (h *CalculationHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRunID(w, r)
	if !ok {
		return
	}

	run, err := h.calcSrv.GetRun(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	render.JSON(w, r, run)
}

// (DELETE /api/v1alpha1/calculations/{id})
func (h *CalculationHandler) DeleteRun(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRunID(w, r)
	if !ok {
		return
	}

	if err := h.calcSrv.DeleteRun(r.Context(), id); err != nil {
		renderServiceError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

// (GET /api/v1alpha1/calculations/{id}/report)
func (h *CalculationHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRunID(w, r)
	if !ok {
		return
	}

	format := api.StringToReportFormat(r.URL.Query().Get("format"))

	rendered, err := h.calcSrv.Report(r.Context(), id, types.ReportFormat(format))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	contentType := "text/plain; charset=utf-8"
	if format == api.ReportFormatCSV {
		contentType = "text/csv; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write([]byte(rendered))
}

func parseRunID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid run id")
		return uuid.Nil, false
	}
	return id, true
}

func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *service.ErrResourceNotFound
	var corrupted *service.ErrFileCorrupted
	switch {
	case errors.As(err, &notFound):
		renderError(w, r, http.StatusNotFound, err.Error())
	case errors.As(err, &corrupted):
		renderError(w, r, http.StatusBadRequest, err.Error())
	default:
		zap.S().Named("handler").Errorf("internal error: %v", err)
		renderError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, api.Error{Message: message})
}
