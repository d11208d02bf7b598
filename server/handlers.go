// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/fraction"
	"github.com/katalvlaran/cofactor/input"
	"github.com/katalvlaran/cofactor/matrix"
	"github.com/katalvlaran/cofactor/render"
	"github.com/katalvlaran/cofactor/tracer"
)

// maxBody bounds request bodies; a 12×12 matrix fits comfortably.
const maxBody = 64 << 10

type matrixRequest struct {
	Matrix   [][]*float64 `json:"matrix" validate:"required,min=1,dive,required"`
	Steps    bool         `json:"steps"`
	Strategy string       `json:"strategy" validate:"omitempty,oneof=recursive iterative"`
}

type fractionRequest struct {
	Value *float64 `json:"value" validate:"required"`
}

type stepResponse struct {
	Seq     int         `json:"seq"`
	Kind    string      `json:"kind"`
	Step    int         `json:"step"`
	Depth   int         `json:"depth"`
	Title   string      `json:"title,omitempty"`
	Message string      `json:"message,omitempty"`
	Matrix  [][]float64 `json:"matrix,omitempty"`
	Value   *float64    `json:"value,omitempty"`
}

type inverseResponse struct {
	Determinant float64        `json:"determinant"`
	Inverse     [][]float64    `json:"inverse"`
	Fractions   [][]string     `json:"fractions"`
	Residual    float64        `json:"residual"`
	Steps       []stepResponse `json:"steps,omitempty"`
}

type determinantResponse struct {
	Determinant float64        `json:"determinant"`
	Fraction    string         `json:"fraction"`
	Steps       []stepResponse `json:"steps,omitempty"`
}

type fractionResponse struct {
	Value       float64 `json:"value"`
	Numerator   int64   `json:"numerator"`
	Denominator int64   `json:"denominator"`
	Text        string  `json:"text"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) inverse(w http.ResponseWriter, r *http.Request) {
	var req matrixRequest
	if !decode(w, r, &req) {
		return
	}
	m, ok := s.matrixOf(w, "inverse", &req)
	if !ok {
		return
	}

	rec := tracer.NewRecorder()
	sol, err := adjugate.Solve(m, s.engineOptions(r, &req, rec)...)
	if err != nil {
		s.fail(w, "inverse", err)
		return
	}
	res, err := adjugate.Residual(m, sol.Inverse)
	if err != nil {
		s.fail(w, "inverse", err)
		return
	}
	computations.WithLabelValues("inverse", "ok").Inc()

	resp := inverseResponse{
		Determinant: sol.Determinant,
		Inverse:     sol.Inverse.ToRows(),
		Fractions:   render.Cells(sol.Inverse),
		Residual:    res,
	}
	if req.Steps {
		resp.Steps = stepsOf(rec.Events())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) determinant(w http.ResponseWriter, r *http.Request) {
	var req matrixRequest
	if !decode(w, r, &req) {
		return
	}
	m, ok := s.matrixOf(w, "determinant", &req)
	if !ok {
		return
	}

	rec := tracer.NewRecorder()
	det, err := adjugate.Determinant(m, s.engineOptions(r, &req, rec)...)
	if err != nil {
		s.fail(w, "determinant", err)
		return
	}
	computations.WithLabelValues("determinant", "ok").Inc()

	resp := determinantResponse{Determinant: det, Fraction: fraction.Format(det)}
	if req.Steps {
		resp.Steps = stepsOf(rec.Events())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) fraction(w http.ResponseWriter, r *http.Request) {
	var req fractionRequest
	if !decode(w, r, &req) {
		return
	}
	fr, err := fraction.Approximate(*req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fractionResponse{
		Value:       *req.Value,
		Numerator:   fr.Num,
		Denominator: fr.Den,
		Text:        fr.String(),
	})
}

// matrixOf converts the request cells, writing the error response itself.
func (s *Server) matrixOf(w http.ResponseWriter, op string, req *matrixRequest) (*matrix.Dense, bool) {
	m, err := input.FromCells(req.Matrix, s.inputOptions()...)
	if err != nil {
		s.fail(w, op, err)
		return nil, false
	}
	matrixOrder.Observe(float64(m.Rows()))

	return m, true
}

// engineOptions builds one request's engine: order bound, strategy, and a
// recorder plus a debug-level log sink for the trace.
func (s *Server) engineOptions(r *http.Request, req *matrixRequest, rec *tracer.Recorder) []adjugate.Option {
	strategy := s.strategy
	if req.Strategy != "" {
		strategy, _ = adjugate.ParseStrategy(req.Strategy) // validated by decode
	}
	log := s.log.With(zap.String("request_id", RequestIDFromContext(r.Context())))

	return []adjugate.Option{
		adjugate.WithMaxOrder(s.cfg.MaxOrder),
		adjugate.WithStrategy(strategy),
		adjugate.WithTracer(tracer.Multi{rec, tracer.NewLogger(log, zapcore.DebugLevel)}),
	}
}

// fail maps engine and input errors to HTTP statuses.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	var ie *adjugate.InverseError
	switch {
	case errors.As(err, &ie) && ie.HasDet:
		computations.WithLabelValues(op, "singular").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":       err.Error(),
			"determinant": ie.Determinant,
		})
	case errors.Is(err, adjugate.ErrTooLarge):
		computations.WithLabelValues(op, "rejected").Inc()
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, adjugate.ErrNonSquare),
		errors.Is(err, adjugate.ErrInvalidInput),
		errors.Is(err, input.ErrEmpty):
		computations.WithLabelValues(op, "rejected").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		computations.WithLabelValues(op, "error").Inc()
		s.log.Error("computation failed", zap.String("op", op), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decode reads and validates a JSON body, writing 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func stepsOf(events []adjugate.TraceEvent) []stepResponse {
	out := make([]stepResponse, len(events))
	for i, ev := range events {
		sr := stepResponse{
			Seq:     ev.Seq,
			Kind:    ev.Kind.String(),
			Step:    int(ev.Step),
			Depth:   ev.Depth,
			Title:   ev.Title,
			Message: ev.Message,
		}
		if ev.Matrix != nil {
			sr.Matrix = ev.Matrix.ToRows()
		}
		if ev.Kind == adjugate.KindResult {
			v := ev.Value
			sr.Value = &v
		}
		out[i] = sr
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
