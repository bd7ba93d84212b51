package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/unit-economics/internal/config"
	"github.com/iwvelando/unit-economics/internal/economics"
	"github.com/iwvelando/unit-economics/internal/store"
	"github.com/iwvelando/unit-economics/pkg/constants"
	"github.com/iwvelando/unit-economics/pkg/output"
	"github.com/iwvelando/unit-economics/pkg/validation"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// Options configures the HTTP handler.
type Options struct {
	Logger            *zap.Logger
	Store             store.Store // nil disables the snapshot endpoints
	Model             economics.Model
	MaxUploadSize     int64
	RequestsPerSecond float64
	Burst             int
	Version           string
}

type handler struct {
	logger        *zap.Logger
	engine        *economics.Engine
	store         store.Store
	limiter       *rate.Limiter
	maxUploadSize int64
	version       string

	mu    sync.RWMutex
	model economics.Model
}

// NewHandler constructs the HTTP handler serving the editor API over a single
// in-memory workspace model.
func NewHandler(opts Options) http.Handler {
	h := newHandler(opts)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.rateLimit)

	r.Get("/api/version", h.handleVersion)
	r.Get("/api/model", h.handleGetModel)
	r.Put("/api/model", h.handlePutModel)
	r.Get("/api/report", h.handleReport)
	r.Post("/api/compute", h.handleCompute)
	r.Get("/api/export.csv", h.handleExportCSV)
	r.Get("/api/export.yaml", h.handleExportYAML)
	r.Post("/api/snapshot/save", h.handleSnapshotSave)
	r.Post("/api/snapshot/load", h.handleSnapshotLoad)

	return r
}

func newHandler(opts Options) *handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxUploadSize := opts.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = constants.DefaultRequestsPerSecond
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = constants.DefaultRequestBurst
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	return &handler{
		logger:        logger,
		engine:        economics.NewEngine(logger),
		store:         opts.Store,
		limiter:       rate.NewLimiter(rate.Limit(rps), burst),
		maxUploadSize: maxUploadSize,
		version:       version,
		model:         opts.Model.Clone(),
	}
}

type reportResponse struct {
	Model    economics.Model       `json:"model"`
	Report   economics.Report      `json:"report"`
	Lines    []economics.Line      `json:"lines"`
	Mix      []output.ChannelShare `json:"mix"`
	Warnings []string              `json:"warnings,omitempty"`
	Duration string                `json:"duration"`
}

func (h *handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			h.respondErrorWithOp(w, http.StatusTooManyRequests, "rate limit exceeded", "server.rateLimit")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleGetModel(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.snapshot())
}

func (h *handler) handlePutModel(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	m, err := h.decodeModel(w, r)
	if err != nil {
		h.respondDecodeError(w, err, "server.handlePutModel")
		return
	}

	h.mu.Lock()
	h.model = m.Clone()
	h.mu.Unlock()

	h.logger.Info("workspace model replaced",
		zap.String("op", "server.handlePutModel"),
	)
	h.writeJSON(w, http.StatusOK, h.buildResponse(m, start))
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.buildResponse(h.snapshot(), time.Now()))
}

func (h *handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	m, err := h.decodeModel(w, r)
	if err != nil {
		h.respondDecodeError(w, err, "server.handleCompute")
		return
	}
	h.writeJSON(w, http.StatusOK, h.buildResponse(m, start))
}

func (h *handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	report := h.engine.Evaluate(h.snapshot())
	csv, err := output.CsvString(report.Statement)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to build CSV: %v", err), "server.handleExportCSV")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.CsvFileName))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, csv); err != nil {
		h.logger.Error("failed to write CSV response",
			zap.String("op", "server.handleExportCSV"),
			zap.Error(err),
		)
	}
}

func (h *handler) handleExportYAML(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(h.snapshot()); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode configuration: %v", err), "server.handleExportYAML")
		return
	}
	if err := encoder.Close(); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode configuration: %v", err), "server.handleExportYAML")
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", constants.DefaultConfigFile))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *handler) handleSnapshotSave(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.respondErrorWithOp(w, http.StatusServiceUnavailable, "no snapshot store configured", "server.handleSnapshotSave")
		return
	}

	if err := h.store.Save(r.Context(), h.snapshot()); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to save snapshot: %v", err), "server.handleSnapshotSave")
		return
	}

	h.logger.Info("snapshot saved",
		zap.String("op", "server.handleSnapshotSave"),
	)
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *handler) handleSnapshotLoad(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.store == nil {
		h.respondErrorWithOp(w, http.StatusServiceUnavailable, "no snapshot store configured", "server.handleSnapshotLoad")
		return
	}

	m, err := h.store.Load(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNoSnapshot) {
			status = http.StatusNotFound
		}
		h.respondErrorWithOp(w, status, fmt.Sprintf("failed to load snapshot: %v", err), "server.handleSnapshotLoad")
		return
	}

	h.mu.Lock()
	h.model = m.Clone()
	h.mu.Unlock()

	h.logger.Info("snapshot loaded into workspace",
		zap.String("op", "server.handleSnapshotLoad"),
	)
	h.writeJSON(w, http.StatusOK, h.buildResponse(m, start))
}

// snapshot returns a copy of the workspace model.
func (h *handler) snapshot() economics.Model {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.model.Clone()
}

func (h *handler) buildResponse(m economics.Model, start time.Time) reportResponse {
	report := h.engine.Evaluate(m)
	return reportResponse{
		Model:    m,
		Report:   report,
		Lines:    report.Statement.Lines(),
		Mix:      output.ChannelMix(report.Statement),
		Warnings: config.ModelWarnings(m),
		Duration: time.Since(start).String(),
	}
}

var errPayloadTooLarge = errors.New("payload too large")

// decodeModel reads an editor payload. Numeric fields may arrive as numbers or
// strings; anything that does not parse as a number becomes zero.
func (h *handler) decodeModel(w http.ResponseWriter, r *http.Request) (economics.Model, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	var payload map[string]interface{}
	if err := decoder.Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return economics.Model{}, errPayloadTooLarge
		}
		return economics.Model{}, fmt.Errorf("failed to decode model: %w", err)
	}
	if payload == nil {
		return economics.Model{}, errors.New("invalid model payload: expected object")
	}

	m, err := DecodeEditorModel(payload)
	if err != nil {
		return economics.Model{}, err
	}
	return m, nil
}

// DecodeEditorModel converts a loosely typed editor payload into a model.
func DecodeEditorModel(payload map[string]interface{}) (economics.Model, error) {
	var m economics.Model
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: validation.DecodeHook(),
		Result:     &m,
	})
	if err != nil {
		return economics.Model{}, fmt.Errorf("failed to build model decoder: %w", err)
	}
	if err := decoder.Decode(payload); err != nil {
		return economics.Model{}, fmt.Errorf("failed to parse model: %w", err)
	}
	if !hasKey(payload, "customPackages", "salesPlan", "buckets") {
		m.Custom.SalesPlan.Buckets = economics.DefaultSalesPlan().Buckets
	}
	m.ApplyDefaults()
	return m, nil
}

// hasKey reports whether the nested key path is present in the payload,
// matching names case-insensitively as the decoder does.
func hasKey(payload map[string]interface{}, path ...string) bool {
	current := payload
	for i, name := range path {
		var value interface{}
		found := false
		for key, v := range current {
			if strings.EqualFold(key, name) {
				value, found = v, true
				break
			}
		}
		if !found {
			return false
		}
		if i == len(path)-1 {
			return true
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return false
		}
		current = next
	}
	return false
}

func (h *handler) respondDecodeError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, errPayloadTooLarge) {
		h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("payload exceeds limit of %d bytes", h.maxUploadSize), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
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
