package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"crivo/internal/bureau"
	"crivo/internal/document"
	"crivo/internal/platform/middleware"
	"crivo/internal/report"
	dErrors "crivo/pkg/domain-errors"
)

// TokenProvider obtains a fresh bearer token for one request.
type TokenProvider interface {
	Fetch(ctx context.Context) (string, error)
}

// Queryer performs one authenticated bureau lookup.
type Queryer interface {
	Query(ctx context.Context, token string, endpoint bureau.Endpoint, subjectDocument string) (map[string]any, error)
}

// Handler is the thin HTTP layer: validate input, fetch a token, query the
// bureau, normalize, serialize. Business logic lives in internal/report.
type Handler struct {
	logger *slog.Logger
	tokens TokenProvider
	bureau Queryer
}

func New(tokens TokenProvider, queryer Queryer, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, tokens: tokens, bureau: queryer}
}

// Register wires the public endpoints onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/health", h.handleHealth)
	r.Get("/ping", h.handlePing)
	r.Post("/consulta/score", h.handleScore)
	r.Post("/consulta/completa", h.handleFullReport)
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "API de consulta de crédito no ar"})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "pong"})
}

type consultaRequest struct {
	Documento string `json:"documento"`
}

// handleScore serves the lighter credit-scores lookup and returns one record
// per report entry.
func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.subjectDocument(r)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.tokens.Fetch(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "token acquisition failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		writeError(w, dErrors.New(dErrors.CodeInternal, "Falha ao obter token de acesso"))
		return
	}

	payload, err := h.bureau.Query(ctx, token, bureau.EndpointScores, doc.digits)
	if err != nil {
		h.logger.ErrorContext(ctx, "bureau query failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		writeError(w, dErrors.New(dErrors.CodeInternal, "Falha na consulta ao bureau"))
		return
	}

	writeJSON(w, http.StatusOK, report.ScoreRecords(payload))
}

// handleFullReport serves the full credit-scores-reports lookup, dispatching
// to the individual or corporate normalizer by classified document kind.
func (h *Handler) handleFullReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.subjectDocument(r)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.tokens.Fetch(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "token acquisition failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		writeError(w, dErrors.New(dErrors.CodeInternal, "Falha ao obter token de acesso"))
		return
	}

	payload, err := h.bureau.Query(ctx, token, bureau.EndpointReports, doc.digits)
	if err != nil {
		h.logger.ErrorContext(ctx, "bureau query failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		writeError(w, dErrors.New(dErrors.CodeInternal, "Falha na consulta ao bureau"))
		return
	}

	rep := report.FirstReport(payload)

	var result any
	switch doc.kind {
	case document.KindIndividual:
		result = report.Individual(rep)
	case document.KindCorporate:
		result = report.Corporate(rep)
	default:
		// Unreachable after classification, kept as a guard for new kinds.
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "Tipo de documento não suportado"))
		return
	}

	writePrettyJSON(w, http.StatusOK, result)
}

type subject struct {
	digits string
	kind   document.Kind
}

// subjectDocument decodes and classifies the request body's documento field.
func (h *Handler) subjectDocument(r *http.Request) (subject, error) {
	var req consultaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return subject{}, dErrors.New(dErrors.CodeBadRequest, "Corpo da requisição inválido")
	}
	if !govalidator.StringLength(req.Documento, "1", "32") {
		return subject{}, dErrors.New(dErrors.CodeBadRequest, "Documento inválido")
	}

	valid, digits, kind := document.Classify(req.Documento)
	if !valid {
		h.logger.WarnContext(r.Context(), "invalid document rejected",
			"digits_len", len(digits),
			"request_id", middleware.GetRequestID(r.Context()),
		)
		return subject{}, dErrors.New(dErrors.CodeBadRequest, "Documento inválido")
	}
	return subject{digits: digits, kind: kind}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writePrettyJSON serializes the full report indented, matching the format
// integrators already parse.
func writePrettyJSON(w http.ResponseWriter, status int, v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		writeError(w, dErrors.Wrap(dErrors.CodeInternal, "Falha ao serializar resposta", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

// writeError centralizes domain error translation to HTTP responses so every
// endpoint returns the same JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(dErrors.StatusOf(err))
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": dErrors.MessageOf(err),
	})
}
