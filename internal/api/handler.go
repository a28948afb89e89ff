package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/yegors/co-atis/internal/atis"
	"github.com/yegors/co-atis/internal/datis"
	"github.com/yegors/co-atis/pkg/logger"
)

// Error kinds reported in ErrorResponse
const (
	KindUpstreamFetch    = "upstream_fetch"
	KindEmptyPayload     = "empty_payload"
	KindMalformedPayload = "malformed_payload"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Handler serves the normalized ATIS record for one configured airport
type Handler struct {
	icao      string
	fetcher   datis.Fetcher
	assembler *atis.Assembler
	logger    *logger.Logger
}

// NewHandler creates a handler for the given airport
func NewHandler(icao string, fetcher datis.Fetcher, assembler *atis.Assembler, logger *logger.Logger) *Handler {
	return &Handler{
		icao:      icao,
		fetcher:   fetcher,
		assembler: assembler,
		logger:    logger.Named("api-handler"),
	}
}

// GetATIS fetches the current broadcast and returns the normalized record
func (h *Handler) GetATIS(w http.ResponseWriter, r *http.Request) {
	log := h.logger.WithRequestID(middleware.GetReqID(r.Context()))

	records, err := h.fetcher.Fetch(r.Context(), h.icao)
	if err != nil {
		log.Error("Upstream fetch failed", logger.String("icao", h.icao), logger.Error(err))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: err.Error(), Kind: KindUpstreamFetch})
		return
	}

	record, err := h.assembler.Assemble(records)
	if err != nil {
		kind := KindMalformedPayload
		if errors.Is(err, atis.ErrEmptyPayload) {
			kind = KindEmptyPayload
		}
		log.Error("Failed to assemble ATIS record",
			logger.String("icao", h.icao),
			logger.String("kind", kind),
			logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Kind: kind})
		return
	}

	if len(record.Unavailable) > 0 {
		log.Warn("Serving partial ATIS record", logger.Strings("unavailable", record.Unavailable))
	}

	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"failed to encode response","kind":"internal"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
