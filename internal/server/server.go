package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rpgo/indo-german-tax/internal/calculation"
	"github.com/rpgo/indo-german-tax/internal/config"
	"github.com/rpgo/indo-german-tax/internal/domain"
	"github.com/rpgo/indo-german-tax/internal/output"
)

type handler struct {
	engine       *calculation.CalculationEngine
	parser       *config.InputParser
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewHandler constructs the chi router serving the estimation API. The engine
// is shared by all requests.
func NewHandler(engine *calculation.CalculationEngine, logger *zap.Logger, cfg Config) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 60
	}
	timeout := 30 * time.Second
	if cfg.RequestTimeout > 0 {
		timeout = cfg.RequestTimeout
	}

	h := &handler{
		engine:       engine,
		parser:       config.NewInputParser(),
		logger:       logger,
		maxBodyBytes: cfg.MaxBodyBytes,
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		httprate.Limit(cfg.RateLimit, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				h.respondError(w, http.StatusTooManyRequests, "rate limit exceeded", "server.rateLimit")
			}),
		),
	)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/years", h.handleYears)
		r.Post("/report", h.handleReport)
		r.Get("/social-security", h.handleSocialSecurity)
		r.Get("/tax", h.handleTax)
		r.Get("/soli", h.handleSoli)
	})
	return r
}

// NewServer wraps the handler into an http.Server configured from cfg.
func NewServer(engine *calculation.CalculationEngine, logger *zap.Logger, cfg Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      NewHandler(engine, logger, cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

type reportResponse struct {
	Report       *domain.TaxReport          `json:"report"`
	Instructions []domain.FilingInstruction `json:"instructions"`
	Duration     string                     `json:"duration"`
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleReport"
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodyBytes), op)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return
	}

	var input *domain.FilingInput
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		input, err = h.parser.Parse(body)
	} else {
		input, err = h.parser.ParseJSON(body)
	}
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	if err := h.parser.ValidateInput(input); err != nil {
		var ve *config.ValidationError
		if errors.As(err, &ve) {
			h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": ve.Error(), "fields": ve.Fields})
			return
		}
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	filing := *input
	if estimate, _ := strconv.ParseBool(r.URL.Query().Get("estimate")); estimate {
		filing, err = h.engine.FillEstimatedContributions(filing)
		if err != nil {
			h.respondCalcError(w, err, op)
			return
		}
	}

	report, err := h.engine.GenerateFullReport(filing)
	if err != nil {
		h.respondCalcError(w, err, op)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" || output.NormalizeFormatName(format) == "json" {
		h.writeJSON(w, http.StatusOK, reportResponse{
			Report:       report,
			Instructions: calculation.FilingInstructions(report),
			Duration:     time.Since(start).String(),
		})
		return
	}

	data, err := output.RenderReport(report, format)
	if err != nil {
		if errors.Is(err, output.ErrUnsupportedFormat) {
			h.respondError(w, http.StatusBadRequest, err.Error(), op)
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error(), op)
		return
	}
	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write report", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) handleYears(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"years":  h.engine.Table.Years(),
		"latest": h.engine.Table.LatestYear(),
	})
}

func (h *handler) handleSocialSecurity(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSocialSecurity"
	q := queryParams{values: r.URL.Query()}
	gross := q.decimalParam("gross")
	year := q.intParam("year")
	kids := q.intParam("children")
	if q.err != nil {
		h.respondError(w, http.StatusBadRequest, q.err.Error(), op)
		return
	}

	c, err := h.engine.SocialSecurity.Estimate(gross, h.engine.ResolveYear(year), kids)
	if err != nil {
		h.respondCalcError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"contributions": c,
		"total":         c.Total(),
	})
}

func (h *handler) handleTax(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleTax"
	q := queryParams{values: r.URL.Query()}
	income := q.decimalParam("income")
	year := h.engine.ResolveYear(q.intParam("year"))
	married := q.boolParam("married")
	if q.err != nil {
		h.respondError(w, http.StatusBadRequest, q.err.Error(), op)
		return
	}

	tax, err := h.engine.IncomeTax.CalculateTax(income, year, married)
	if err != nil {
		h.respondCalcError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"year":           year,
		"taxable_income": income,
		"married":        married,
		"tax":            tax.Round(2),
	})
}

func (h *handler) handleSoli(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSoli"
	q := queryParams{values: r.URL.Query()}
	liability := q.decimalParam("liability")
	year := h.engine.ResolveYear(q.intParam("year"))
	married := q.boolParam("married")
	if q.err != nil {
		h.respondError(w, http.StatusBadRequest, q.err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"year":      year,
		"liability": liability,
		"married":   married,
		"threshold": h.engine.Soli.Threshold(year, married),
		"soli":      h.engine.Soli.CalculateSoli(liability, year, married).Round(2),
	})
}

// queryParams collects the first parse error so handlers check once.
type queryParams struct {
	values map[string][]string
	err    error
}

func (q *queryParams) get(name string) string {
	if v := q.values[name]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func (q *queryParams) decimalParam(name string) decimal.Decimal {
	raw := q.get(name)
	if raw == "" || q.err != nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		q.err = fmt.Errorf("invalid %s %q", name, raw)
		return decimal.Zero
	}
	if d.IsNegative() {
		q.err = fmt.Errorf("%s must not be negative", name)
	}
	return d
}

func (q *queryParams) intParam(name string) int {
	raw := q.get(name)
	if raw == "" || q.err != nil {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		q.err = fmt.Errorf("invalid %s %q", name, raw)
		return 0
	}
	return n
}

func (q *queryParams) boolParam(name string) bool {
	raw := q.get(name)
	if raw == "" || q.err != nil {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.err = fmt.Errorf("invalid %s %q", name, raw)
	}
	return b
}

func contentType(format string) string {
	switch output.NormalizeFormatName(format) {
	case "html":
		return "text/html; charset=utf-8"
	case "csv":
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func (h *handler) respondCalcError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, calculation.ErrUnsupportedYear) {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error(), op)
		return
	}
	h.respondError(w, http.StatusInternalServerError, err.Error(), op)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
