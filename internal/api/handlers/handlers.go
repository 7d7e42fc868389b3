// Package handlers implements the HTTP endpoints of the parse API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/finsift/smsparser/internal/api/middleware"
	"github.com/finsift/smsparser/internal/model"
	"github.com/finsift/smsparser/internal/parse"
)

// Handler holds the dependencies for all endpoints.
type Handler struct {
	engine *parse.Engine
	log    zerolog.Logger
}

// New creates a handler over the given engine.
func New(engine *parse.Engine, log zerolog.Logger) *Handler {
	return &Handler{engine: engine, log: log}
}

// Routes registers all endpoints on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/parse", h.Parse)
	mux.HandleFunc("POST /api/parse/batch", h.ParseBatch)
	mux.HandleFunc("GET /api/senders", h.Senders)
	mux.HandleFunc("GET /health", h.Health)
	return mux
}

// ParseRequest is one raw message.
type ParseRequest struct {
	Body      string `json:"body"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

func (r *ParseRequest) source() model.Source {
	return model.Source{Body: r.Body, Sender: r.Sender, Timestamp: r.Timestamp}
}

// ParseResult mirrors one engine outcome.
type ParseResult struct {
	Status        parse.Status               `json:"status"`
	BankName      string                     `json:"bank_name,omitempty"`
	Transaction   *model.Record              `json:"transaction,omitempty"`
	Mandate       *model.MandateRecord       `json:"mandate,omitempty"`
	BalanceUpdate *model.BalanceUpdateRecord `json:"balance_update,omitempty"`
}

func toResult(out parse.Outcome) ParseResult {
	res := ParseResult{Status: out.Status, BankName: out.BankName}
	if out.Transaction != nil {
		rec := out.Transaction.ToRecord()
		res.Transaction = &rec
	}
	if out.Mandate != nil {
		rec := out.Mandate.ToRecord()
		res.Mandate = &rec
	}
	if out.BalanceUpdate != nil {
		rec := out.BalanceUpdate.ToRecord()
		res.BalanceUpdate = &rec
	}
	return res
}

// Parse handles POST /api/parse. A sender no parser accepts is 404; a body
// that is not a transaction is 422; mandate notices and parsed transactions
// are 200 with the detail in the payload.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Body == "" || req.Sender == "" {
		middleware.WriteError(w, http.StatusBadRequest, "body and sender are required")
		return
	}

	out := h.engine.Process(req.source())
	switch out.Status {
	case parse.StatusNoParser:
		middleware.WriteError(w, http.StatusNotFound, "no parser for sender")
	case parse.StatusNotTransaction:
		middleware.WriteError(w, http.StatusUnprocessableEntity, "message is not a transaction")
	default:
		middleware.WriteJSON(w, http.StatusOK, toResult(out))
	}
}

// BatchRequest is a list of raw messages.
type BatchRequest struct {
	Messages []ParseRequest `json:"messages"`
}

// BatchResponse carries one result per input message, in order. Unlike the
// single endpoint, failures are reported in-band so one bad message does not
// fail the batch.
type BatchResponse struct {
	Results []ParseResult `json:"results"`
	Parsed  int           `json:"parsed"`
	Total   int           `json:"total"`
}

// ParseBatch handles POST /api/parse/batch.
func (h *Handler) ParseBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Messages) == 0 {
		middleware.WriteError(w, http.StatusBadRequest, "messages must not be empty")
		return
	}

	resp := BatchResponse{
		Results: make([]ParseResult, 0, len(req.Messages)),
		Total:   len(req.Messages),
	}
	for _, msg := range req.Messages {
		out := h.engine.Process(msg.source())
		if out.Status == parse.StatusParsed {
			resp.Parsed++
		}
		resp.Results = append(resp.Results, toResult(out))
	}

	middleware.WriteJSON(w, http.StatusOK, resp)
}

// SendersResponse lists the supported institutions in dispatch order.
type SendersResponse struct {
	Banks []string `json:"banks"`
}

// Senders handles GET /api/senders.
func (h *Handler) Senders(w http.ResponseWriter, _ *http.Request) {
	resp := SendersResponse{}
	for _, p := range h.engine.Registry().Parsers() {
		resp.Banks = append(resp.Banks, p.BankName())
	}
	middleware.WriteJSON(w, http.StatusOK, resp)
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
