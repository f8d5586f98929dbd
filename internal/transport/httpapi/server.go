// Package httpapi exposes the dataset and knowledge stores as a small
// read-only JSON API.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AaronRai123/REASON/internal/bootstrap/logging"
	"github.com/AaronRai123/REASON/internal/errs"
	"github.com/AaronRai123/REASON/internal/ports"
)

const defaultLiteratureResults = 10

type Handler struct {
	datasets  ports.DatasetStore
	knowledge ports.KnowledgeStore
	useCache  bool
}

func NewHandler(datasets ports.DatasetStore, knowledge ports.KnowledgeStore, useCache bool) *Handler {
	return &Handler{
		datasets:  datasets,
		knowledge: knowledge,
		useCache:  useCache,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Route("/v1", func(r chi.Router) {
		r.Get("/diseases/{name}", h.getDisease)
		r.Get("/pathways/{id}", h.getPathway)
		r.Get("/drugs/{id}", h.getDrug)
		r.Get("/literature", h.searchLiterature)
		r.Get("/validation/{disease}", h.getValidationData)
		r.Get("/datasets/{dataType}", h.getDataset)
		r.Get("/datasets/{dataType}/{name}", h.getDataset)
	})

	return r
}

func (h *Handler) getDisease(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "disease name is required")
		return
	}

	doc, err := h.knowledge.Disease(r.Context(), name)
	if err != nil {
		writeFailure(w, r, "disease lookup failed", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) getPathway(w http.ResponseWriter, r *http.Request) {
	doc, err := h.knowledge.Pathway(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeFailure(w, r, "pathway lookup failed", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) getDrug(w http.ResponseWriter, r *http.Request) {
	doc, err := h.knowledge.Drug(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeFailure(w, r, "drug lookup failed", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) searchLiterature(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	maxResults := defaultLiteratureResults
	if raw := r.URL.Query().Get("max"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "max must be a non-negative integer")
			return
		}
		maxResults = parsed
	}

	pubs, err := h.knowledge.SearchLiterature(r.Context(), query, maxResults)
	if err != nil {
		writeFailure(w, r, "literature search failed", err)
		return
	}
	writeJSON(w, http.StatusOK, pubs)
}

func (h *Handler) getValidationData(w http.ResponseWriter, r *http.Request) {
	doc := h.knowledge.ValidationData(r.Context(), pathParam(r, "disease"))
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) getDataset(w http.ResponseWriter, r *http.Request) {
	dataType := pathParam(r, "dataType")
	name := pathParam(r, "name")

	doc, err := h.datasets.Load(r.Context(), dataType, name, h.useCache)
	if err != nil {
		writeFailure(w, r, "dataset load failed", err)
		return
	}
	if doc.IsError() {
		// Degraded document: the backing file exists but cannot be read.
		writeJSON(w, http.StatusBadGateway, doc)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeFailure(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logging.Error(r.Context(), msg, slog.Any("err", errs.Loggable(err)))
	writeError(w, http.StatusBadRequest, err.Error())
}
