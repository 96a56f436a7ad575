package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dan9191/serenity-service/internal/config"
	"github.com/Dan9191/serenity-service/internal/export"
	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/score"
	"github.com/Dan9191/serenity-service/internal/service"
	"github.com/gorilla/mux"
)

type Handler struct {
	svc *service.Service
	cfg *config.Config
}

func NewHandler(svc *service.Service, cfg *config.Config) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

// Register mounts every route on the router
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/", h.Home).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/projection", h.Projection).Methods(http.MethodPost)
	api.HandleFunc("/score", h.Score).Methods(http.MethodPost)
	api.HandleFunc("/report", h.Report).Methods(http.MethodPost)
}

// Home answers with a welcome message
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Serenity service: POST a budget to /api/projection, /api/score or /api/report.",
	})
}

// Health is the liveness probe
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Projection computes the balance curve, KPIs and score of a budget
func (h *Handler) Projection(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeProjection(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Project(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute projection")
		return
	}

	if wantsXML(r) {
		body, err := export.ProjectionXML(res)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to render projection")
			return
		}
		writeXML(w, body)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Score rates five declared monthly figures
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	var in models.QuickInput
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.QuickScore(in)
	if errors.Is(err, score.ErrIncomeRequired) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute score")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Report returns the payload consumed by the document renderer
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeProjection(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rep, err := h.svc.Report(req, h.cfg.ReportDisclaimer)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	if wantsXML(r) {
		body, err := export.ReportXML(rep)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to render report")
			return
		}
		writeXML(w, body)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// decodeProjection reads a projection request, filling the configured
// currency and horizon when the body leaves them out.
func (h *Handler) decodeProjection(w http.ResponseWriter, r *http.Request) (models.ProjectionRequest, error) {
	req := models.ProjectionRequest{HorizonDays: h.cfg.DefaultHorizonDays}
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	if req.Currency == "" {
		req.Currency = h.cfg.DefaultCurrency
	}
	return req, nil
}

func wantsXML(r *http.Request) bool {
	return r.URL.Query().Get("format") == "xml"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeXML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
