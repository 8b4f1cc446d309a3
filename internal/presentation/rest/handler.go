package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/application/dto"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/application/usecase"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/model"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/iso20022"
)

const (
	idempotencyKeyHeader   = "Idempotency-Key"
	idempotentReplayHeader = "X-Idempotent-Replay"
)

// documentKinds maps the path segment of the per-payment document endpoints.
var documentKinds = map[string]iso20022.MessageType{
	"pain001": iso20022.Pain001,
	"pain002": iso20022.Pain002,
	"pacs008": iso20022.Pacs008,
	"pacs002": iso20022.Pacs002,
	"camt054": iso20022.Camt054,
}

// PaymentHandler serves the payment initiation API.
type PaymentHandler struct {
	createPayment   *usecase.CreatePayment
	getPayment      *usecase.GetPayment
	renderMessage   *usecase.RenderMessage
	renderStatement *usecase.RenderStatement
	rejectPayment   *usecase.RejectPayment
	resetState      *usecase.ResetState
	logger          *slog.Logger
}

func NewPaymentHandler(
	createPayment *usecase.CreatePayment,
	getPayment *usecase.GetPayment,
	renderMessage *usecase.RenderMessage,
	renderStatement *usecase.RenderStatement,
	rejectPayment *usecase.RejectPayment,
	resetState *usecase.ResetState,
	logger *slog.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		createPayment:   createPayment,
		getPayment:      getPayment,
		renderMessage:   renderMessage,
		renderStatement: renderStatement,
		rejectPayment:   rejectPayment,
		resetState:      resetState,
		logger:          logger,
	}
}

// RegisterRoutes registers the API routes on the given ServeMux.
func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", health)

	mux.HandleFunc("POST /payments", h.CreatePayment)
	mux.HandleFunc("GET /payments/{id}", h.GetPayment)
	mux.HandleFunc("GET /payments/{id}/{kind}", h.GetDocument)
	mux.HandleFunc("GET /statements/camt053", h.GetStatement)

	// Test support
	mux.HandleFunc("POST /__reset", h.Reset)
	mux.HandleFunc("POST /__payments/{id}/reject", h.RejectPayment)
}

// NewServer builds the full HTTP handler: routes, metrics endpoint, request logging and
// tracing. metricsHandler may be nil.
func NewServer(h *PaymentHandler, metricsHandler http.Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	var handler http.Handler = mux
	handler = LoggingMiddleware(logger)(handler)
	handler = otelhttp.NewHandler(handler, "paymock")
	return handler
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreatePayment handles POST /payments. Replays answer 201 like the original creation
// and are marked with the replay header.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	resp, err := h.createPayment.Execute(r.Context(), decodeCreatePayment(r))
	if err != nil {
		h.logUnexpected(r, err)
		writeDomainError(w, err)
		return
	}
	if resp.Replayed {
		w.Header().Set(idempotentReplayHeader, "true")
	}
	writeJSON(w, http.StatusCreated, resp.Payment)
}

// GetPayment handles GET /payments/{id}.
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.getPayment.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		h.logUnexpected(r, err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

// GetDocument handles GET /payments/{id}/{kind}.
func (h *PaymentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	kind, ok := documentKinds[r.PathValue("kind")]
	if !ok {
		writeNotFoundText(w)
		return
	}
	doc, err := h.renderMessage.Execute(r.Context(), r.PathValue("id"), kind)
	if err != nil {
		if !errors.Is(err, model.ErrPaymentNotFound) {
			h.logger.ErrorContext(r.Context(), "render failed", "kind", kind.String(), "error", err)
			writeError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeNotFoundText(w)
		return
	}
	writeDocument(w, doc.ContentType, doc.Body)
}

// GetStatement handles GET /statements/camt053.
func (h *PaymentHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	doc, err := h.renderStatement.Execute(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "statement failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeDocument(w, doc.ContentType, doc.Body)
}

// Reset handles POST /__reset.
func (h *PaymentHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.resetState.Execute(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "reset failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RejectPayment handles POST /__payments/{id}/reject with an optional {"reason": "..."} body.
func (h *PaymentHandler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	fields := readObject(r)
	_, err := h.rejectPayment.Execute(r.Context(), dto.RejectPaymentRequest{
		PaymentID: r.PathValue("id"),
		Reason:    stringField(fields, "reason"),
	})
	if err != nil {
		h.logUnexpected(r, err)
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// logUnexpected logs errors that are not part of the normal request contract.
func (h *PaymentHandler) logUnexpected(r *http.Request, err error) {
	var verr *model.ValidationError
	if errors.Is(err, model.ErrMissingIdempotencyKey) || errors.Is(err, model.ErrPaymentNotFound) ||
		errors.Is(err, model.ErrInvalidTransition) || errors.As(err, &verr) {
		return
	}
	h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
}
