package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/couchcryptid/crisis-coordination-service/internal/dashboard"
	"github.com/couchcryptid/crisis-coordination-service/internal/domain"
	"github.com/couchcryptid/crisis-coordination-service/internal/session"
)

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	id := s.svc.CreateSession()
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

func (s *Server) handleRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"regions": s.svc.Regions()})
}

type selectRegionRequest struct {
	Region string `json:"region"`
}

func (s *Server) handleSelectRegion(w http.ResponseWriter, r *http.Request, st *session.State) {
	var req selectRegionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Region == "" {
		writeError(w, http.StatusUnprocessableEntity, "region is required")
		return
	}

	ds := s.svc.SelectRegion(st, req.Region)
	writeJSON(w, http.StatusOK, datasetSummary(ds))
}

func (s *Server) handleRefresh(w http.ResponseWriter, _ *http.Request, st *session.State) {
	ds, err := s.svc.Refresh(st)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, datasetSummary(ds))
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request, st *session.State) {
	filter, ok := tierFilter(w, r)
	if !ok {
		return
	}
	view, err := s.svc.Table(st, filter)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request, st *session.State) {
	filter, ok := tierFilter(w, r)
	if !ok {
		return
	}

	caps := dashboard.Capacities{
		Food:    intQuery(r, "food_capacity", s.defaultCaps.Food),
		Shelter: intQuery(r, "shelter_capacity", s.defaultCaps.Shelter),
		Medical: intQuery(r, "medical_capacity", s.defaultCaps.Medical),
	}

	view, err := s.svc.Resources(st, filter, caps)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request, st *session.State) {
	filter, ok := tierFilter(w, r)
	if !ok {
		return
	}
	view, err := s.svc.Chart(st, filter)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request, st *session.State) {
	filter, ok := tierFilter(w, r)
	if !ok {
		return
	}
	view, err := s.svc.Map(st, filter)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request, st *session.State) {
	filter, ok := tierFilter(w, r)
	if !ok {
		return
	}
	view, err := s.svc.Heatmap(st, filter)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type submitRequest struct {
	District string `json:"district"`
	AidType  string `json:"aid_type"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request, st *session.State) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	idx, err := s.svc.Submit(st, req.District, req.AidType)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"index":  idx,
		"status": domain.StatusPending,
	})
}

func (s *Server) handleListRequests(w http.ResponseWriter, _ *http.Request, st *session.State) {
	writeJSON(w, http.StatusOK, map[string]any{"requests": st.Requests()})
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request, st *session.State) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request index")
		return
	}

	changed, err := s.svc.Approve(st, index)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"index":   index,
		"status":  domain.StatusApproved,
		"changed": changed,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request, st *session.State) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.svc.Login(st, req.Username, req.Password); err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"logged_in": true, "username": req.Username})
}

// tierFilter parses the tier query parameter, writing a 422 on bad input.
func tierFilter(w http.ResponseWriter, r *http.Request) (domain.TierFilter, bool) {
	filter, err := domain.ParseTierFilter(r.URL.Query().Get("tier"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return "", false
	}
	return filter, true
}

func intQuery(r *http.Request, key string, fallback int) int {
	if s := r.URL.Query().Get(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func datasetSummary(ds domain.RegionDataset) map[string]any {
	return map[string]any{
		"region":       ds.Region,
		"districts":    len(ds.Records),
		"generated_at": ds.GeneratedAt,
	}
}

// writeWorkflowError maps workflow rejections to HTTP statuses. Every
// one of them is a recoverable, user-visible condition.
func writeWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotLoggedIn):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, session.ErrNoSuchRequest):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrEmptyAidType),
		errors.Is(err, session.ErrUnknownDistrict),
		errors.Is(err, session.ErrNoRegionSelected),
		errors.Is(err, session.ErrMissingCreds):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
