package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/fittracker/fittracker/pkg/workout"
)

// Error codes returned in the "code" field of 422 responses.
const (
	CodeUnknownWorkoutType    = "unknown_workout_type"
	CodeInvalidParameterCount = "invalid_parameter_count"
	CodeInvalidParameter      = "invalid_parameter"
	CodeInvalidDuration       = "invalid_duration"
	CodeUnimplemented         = "unimplemented"
	CodeInternal              = "internal"
)

// DefaultMaxBodyBytes caps request bodies when Options.MaxBodyBytes is zero.
const DefaultMaxBodyBytes = 64 << 10

// Publisher receives every successfully computed summary.
type Publisher interface {
	Publish(SummaryResponse)
}

// Recorder counts calculation outcomes.
type Recorder interface {
	ObserveSummary(kind string)
	ObserveError(code string)
}

// Options configures a Handler. All fields are optional.
type Options struct {
	Publisher    Publisher
	Recorder     Recorder
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// Handler is the HTTP handler for all /api/v1/* endpoints.
type Handler struct {
	pub     Publisher
	rec     Recorder
	maxBody int64
	logger  *slog.Logger
	mux     *http.ServeMux
}

// New creates a Handler and registers all routes.
func New(opts Options) *Handler {
	h := &Handler{
		pub:     opts.Publisher,
		rec:     opts.Recorder,
		maxBody: opts.MaxBodyBytes,
		logger:  opts.Logger,
		mux:     http.NewServeMux(),
	}
	if h.maxBody <= 0 {
		h.maxBody = DefaultMaxBodyBytes
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}

	h.mux.HandleFunc("/api/v1/summary", h.summary)
	h.mux.HandleFunc("/api/v1/workout-types", h.workoutTypes)
	h.mux.HandleFunc("/api/v1/health", h.health)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// --- route handlers ---------------------------------------------------------

// summary handles POST /api/v1/summary.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req SummaryRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		jsonErr(w, http.StatusBadRequest, "malformed request body: "+err.Error())
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		jsonErr(w, http.StatusBadRequest, "malformed request body: trailing data after JSON object")
		return
	}

	calc, err := workout.Create(req.Type, req.Data)
	if err != nil {
		h.reject(w, req.Type, err)
		return
	}
	s, err := workout.Summarize(calc)
	if err != nil {
		h.reject(w, req.Type, err)
		return
	}

	resp := NewSummaryResponse(s)
	if h.rec != nil {
		h.rec.ObserveSummary(resp.Kind)
	}
	if h.pub != nil {
		h.pub.Publish(resp)
	}
	jsonResp(w, http.StatusOK, resp)
}

// workoutTypes handles GET /api/v1/workout-types.
func (h *Handler) workoutTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	all := workout.Types()
	out := make([]WorkoutTypeResponse, 0, len(all))
	for _, t := range all {
		out = append(out, WorkoutTypeResponse{Code: t.Code, Kind: string(t.Kind), Params: t.Params})
	}
	jsonResp(w, http.StatusOK, out)
}

// health handles GET /api/v1/health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// --- helpers ----------------------------------------------------------------

func (h *Handler) reject(w http.ResponseWriter, typ string, err error) {
	code := errorCode(err)
	if h.rec != nil {
		h.rec.ObserveError(code)
	}
	status := http.StatusUnprocessableEntity
	if code == CodeInternal {
		status = http.StatusInternalServerError
	}
	h.logger.Debug("api: summary rejected", "type", typ, "code", code, "err", err)
	jsonResp(w, status, errorResponse{Error: err.Error(), Code: code})
}

// errorCode maps a calculator error to its API code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, workout.ErrUnknownWorkoutType):
		return CodeUnknownWorkoutType
	case errors.Is(err, workout.ErrInvalidParameterCount):
		return CodeInvalidParameterCount
	case errors.Is(err, workout.ErrInvalidDuration):
		return CodeInvalidDuration
	case errors.Is(err, workout.ErrInvalidParameter):
		return CodeInvalidParameter
	case errors.Is(err, workout.ErrUnimplemented):
		return CodeUnimplemented
	default:
		return CodeInternal
	}
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
