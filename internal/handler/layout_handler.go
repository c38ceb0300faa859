package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/onamkulam/interiors/internal/scroll"
)

// LayoutHandler exposes the scroll narrative layout so the front end and
// the server agree on section positions.
type LayoutHandler struct{}

func NewLayoutHandler() *LayoutHandler {
	return &LayoutHandler{}
}

type frameResponse struct {
	Plan  scroll.Plan  `json:"plan"`
	Frame scroll.Frame `json:"frame"`
}

// Plan handles GET /api/layout?viewport=<height>.
func (h *LayoutHandler) Plan(w http.ResponseWriter, r *http.Request) {
	viewport, err := floatParam(r, "viewport")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scroll.Compute(viewport))
}

// Frame handles GET /api/layout/frame?viewport=<height>&scrollY=<offset>.
func (h *LayoutHandler) Frame(w http.ResponseWriter, r *http.Request) {
	viewport, err := floatParam(r, "viewport")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	scrollY, err := floatParam(r, "scrollY")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan := scroll.Compute(viewport)
	writeJSON(w, http.StatusOK, frameResponse{
		Plan: plan,
		Frame: scroll.Frame{
			ScrollY:  math.Max(scrollY, 0),
			Sections: scroll.ComputeFrame(scrollY, plan),
			Active:   scroll.Resolve(scrollY, plan),
		},
	})
}

func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}
