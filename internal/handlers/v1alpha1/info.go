package v1alpha1

import (
	"net/http"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/elecreview/voltage-planner/pkg/version"
	"github.com/go-chi/render"
)

// (GET /api/v1alpha1/info)
func (h *CalculationHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()

	render.JSON(w, r, api.Info{
		VersionName: versionInfo.GitVersion,
		GitCommit:   versionInfo.GitCommit,
	})
}

// (GET /health)
func (h *CalculationHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, api.Health{Status: "ok"})
}
