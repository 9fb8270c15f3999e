package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/premium-estimator/internal/config"
	"github.com/iwvelando/premium-estimator/internal/metrics"
	"github.com/iwvelando/premium-estimator/internal/quote"
	"github.com/iwvelando/premium-estimator/pkg/constants"
	"github.com/iwvelando/premium-estimator/pkg/output"
	"github.com/iwvelando/premium-estimator/pkg/premium"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and estimate API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Rating options and defaults for building the form
	mux.HandleFunc("/api/options", h.instrument("options", h.handleOptions))

	// Single estimate, recomputed by the UI on every input change
	mux.HandleFunc("/api/estimate", h.instrument("estimate", h.handleEstimate))

	// Coverage tables for one level
	mux.HandleFunc("/api/coverage/", h.instrument("coverage", h.handleCoverage))

	// Batch pricing of an uploaded quote file
	mux.HandleFunc("/api/quotes", h.instrument("quotes", h.handleQuotes))

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.instrument("version", h.handleVersion))

	mux.Handle("/metrics", promhttp.Handler())

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type homeValueBounds struct {
	Min  int64 `json:"min"`
	Max  int64 `json:"max"`
	Step int64 `json:"step"`
}

type optionsResponse struct {
	States         []string            `json:"states"`
	HomeTypes      []option            `json:"homeTypes"`
	CoverageLevels []option            `json:"coverageLevels"`
	Deductibles    []option            `json:"deductibles"`
	Defaults       premium.RatingInput `json:"defaults"`
	HomeValue      homeValueBounds     `json:"homeValue"`
	Disclaimer     string              `json:"disclaimer"`
}

type estimateResponse struct {
	output.JSONQuote
	Disclaimer string `json:"disclaimer"`
}

type coverageResponse struct {
	Level   premium.CoverageLevel     `json:"level"`
	Label   string                    `json:"label"`
	Details []premium.CoverageFeature `json:"details"`
	Summary []string                  `json:"summary"`
}

type quotesResponse struct {
	Quotes   []output.JSONQuote `json:"quotes"`
	CSV      string             `json:"csv"`
	Warnings []string           `json:"warnings,omitempty"`
	Duration string             `json:"duration"`
}

func (h *handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	resp := optionsResponse{
		Defaults: premium.DefaultInput(),
		HomeValue: homeValueBounds{
			Min:  constants.MinHomeValue,
			Max:  constants.MaxHomeValue,
			Step: constants.HomeValueStep,
		},
		Disclaimer: premium.Disclaimer,
	}
	for _, state := range premium.States() {
		resp.States = append(resp.States, string(state))
	}
	for _, homeType := range premium.HomeTypes() {
		resp.HomeTypes = append(resp.HomeTypes, option{Value: string(homeType), Label: homeType.Label()})
	}
	for _, level := range premium.CoverageLevels() {
		resp.CoverageLevels = append(resp.CoverageLevels, option{Value: string(level), Label: level.Label()})
	}
	for _, deductible := range premium.Deductibles() {
		resp.Deductibles = append(resp.Deductibles, option{Value: fmt.Sprint(int(deductible)), Label: deductible.Label()})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEstimate"

	var fields map[string]string
	switch r.Method {
	case http.MethodGet:
		fields = fieldsFromQuery(r.URL.Query())
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode estimate request: %v", err), op)
			return
		}
		fields = fieldsFromJSON(payload)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	input, err := parseInput(fields)
	if err != nil {
		h.respondInputError(w, err, op)
		return
	}

	result, err := quote.PriceInput(h.logger, "", input)
	if err != nil {
		h.respondInputError(w, err, op)
		return
	}

	metrics.ObserveEstimate(string(input.CoverageLevel), string(input.HomeType), result.Quote.Result.Annual)

	h.writeJSON(w, http.StatusOK, estimateResponse{
		JSONQuote:  output.NewJSONQuote(result.Name, result.Quote),
		Disclaimer: premium.Disclaimer,
	})
}

func (h *handler) handleCoverage(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCoverage"

	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/coverage/"), "/")
	level, err := premium.ParseCoverageLevel(raw)
	if err != nil {
		h.respondInputError(w, err, op)
		return
	}

	details, err := premium.CoverageDetails(level)
	if err != nil {
		h.respondInputError(w, err, op)
		return
	}
	summary, err := premium.CoverageSummary(level)
	if err != nil {
		h.respondInputError(w, err, op)
		return
	}

	h.writeJSON(w, http.StatusOK, coverageResponse{
		Level:   level,
		Label:   level.Label(),
		Details: details,
		Summary: summary,
	})
}

func (h *handler) handleQuotes(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleQuotes"

	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	if err := r.ParseMultipartForm(h.maxRequestSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxRequestSize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to read quote file: %v", err), op)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(&buf)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()
	results, err := quote.GetQuotes(h.logger, *cfg)
	if err != nil {
		h.respondInputError(w, err, op)
		return
	}

	quotes := make([]output.JSONQuote, 0, len(results))
	for _, result := range results {
		quotes = append(quotes, output.NewJSONQuote(result.Name, result.Quote))
		metrics.ObserveEstimate(string(result.Quote.Input.CoverageLevel), string(result.Quote.Input.HomeType), result.Quote.Result.Annual)
	}

	elapsed := time.Since(start)
	h.logger.Info("quotes priced",
		zap.String("op", op),
		zap.Int("quotes", len(quotes)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, quotesResponse{
		Quotes:   quotes,
		CSV:      output.CsvString(results),
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// respondInputError maps validation failures to a field-level 400 and
// anything else to a 500.
func (h *handler) respondInputError(w http.ResponseWriter, err error, op string) {
	var vErr *premium.ValidationError
	if !errors.As(err, &vErr) {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	metrics.ObserveValidationError(vErr.Field)
	h.logger.Debug("rejected estimate input",
		zap.String("op", op),
		zap.String("field", vErr.Field),
		zap.String("value", vErr.Value),
	)

	h.writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": err.Error(),
		"field": vErr.Field,
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
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

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (h *handler) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		metrics.ObserveRequest(endpoint, rec.status, start)
	}
}
