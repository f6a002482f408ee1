package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/katalvlaran/algotrace/closestpair"
	"github.com/katalvlaran/algotrace/converters"
	"github.com/katalvlaran/algotrace/input"
	"github.com/katalvlaran/algotrace/internal/cache"
	"github.com/katalvlaran/algotrace/internal/metrics"
	"github.com/katalvlaran/algotrace/karatsuba"
)

// uploadField is the multipart field carrying an uploaded file.
const uploadField = "file"

type karatsubaRequest struct {
	X json.RawMessage `json:"x"`
	Y json.RawMessage `json:"y"`
}

type karatsubaStats struct {
	TotalCalls int `json:"totalCalls"`
	Leaves     int `json:"leaves"`
	MaxDepth   int `json:"maxDepth"`
}

type karatsubaResponse struct {
	Result          string             `json:"result"`
	Tree            converters.TreeDoc `json:"tree"`
	CallCount       int                `json:"callCount"`
	ComputationTime float64            `json:"computationTime"`
	Stats           karatsubaStats     `json:"stats"`
}

type closestPairRequest struct {
	Points json.RawMessage `json:"points"`
}

type closestPairAnalysis struct {
	ExecutionTime float64 `json:"executionTime"`
	NumStates     int     `json:"numStates"`
	NumPoints     int     `json:"numPoints"`
}

type closestPairResponse struct {
	ClosestPair [2]closestpair.Point `json:"closestPair"`
	Distance    float64              `json:"distance"`
	States      []closestpair.State  `json:"states"`
	Comparisons int                  `json:"comparisons"`
	Analysis    closestPairAnalysis  `json:"analysis"`
}

// Karatsuba handles POST /karatsuba. x and y may be JSON strings or
// numbers; both are normalized to digit strings.
func (s *Server) Karatsuba(w http.ResponseWriter, r *http.Request) {
	var req karatsubaRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.fail(w, r, metrics.Karatsuba, err)
		return
	}
	x, err := rawOperand("x", req.X)
	if err != nil {
		s.fail(w, r, metrics.Karatsuba, err)
		return
	}
	y, err := rawOperand("y", req.Y)
	if err != nil {
		s.fail(w, r, metrics.Karatsuba, err)
		return
	}
	ops, err := input.NormalizeOperands(x, y)
	if err != nil {
		s.fail(w, r, metrics.Karatsuba, err)
		return
	}

	s.serveKaratsuba(w, r, ops)
}

// ClosestPair handles POST /closest-pair with {"points": [[x, y], ...]}.
func (s *Server) ClosestPair(w http.ResponseWriter, r *http.Request) {
	var req closestPairRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.fail(w, r, metrics.ClosestPair, err)
		return
	}
	if len(req.Points) == 0 {
		s.fail(w, r, metrics.ClosestPair, fmt.Errorf("%w: missing points", ErrBadRequest))
		return
	}
	pts, err := input.ParsePoints(bytes.NewReader(req.Points))
	if err != nil {
		s.fail(w, r, metrics.ClosestPair, err)
		return
	}

	s.serveClosestPair(w, r, pts)
}

// ImportMultiplication handles an operand file upload.
func (s *Server) ImportMultiplication(w http.ResponseWriter, r *http.Request) {
	file, name, err := s.formFile(w, r)
	if err != nil {
		s.fail(w, r, metrics.Karatsuba, err)
		return
	}
	defer file.Close()

	ops, err := input.ParseMultiplicationFile(name, file)
	if err != nil {
		s.fail(w, r, metrics.Karatsuba, err)
		return
	}

	s.serveKaratsuba(w, r, ops)
}

// ImportPoints handles a point-set file upload.
func (s *Server) ImportPoints(w http.ResponseWriter, r *http.Request) {
	file, _, err := s.formFile(w, r)
	if err != nil {
		s.fail(w, r, metrics.ClosestPair, err)
		return
	}
	defer file.Close()

	pts, err := input.ParsePoints(file)
	if err != nil {
		s.fail(w, r, metrics.ClosestPair, err)
		return
	}

	s.serveClosestPair(w, r, pts)
}

func (s *Server) serveKaratsuba(w http.ResponseWriter, r *http.Request, ops input.Operands) {
	if n := max(len(ops.X), len(ops.Y)); n > s.limits.MaxDigits {
		s.fail(w, r, metrics.Karatsuba, fmt.Errorf("%w: %d digits, limit %d", ErrTooLarge, n, s.limits.MaxDigits))
		return
	}

	key := cache.Key(metrics.Karatsuba, strconv.Itoa(karatsuba.DefaultLeafDigits), ops.X, ops.Y)
	if s.fromCache(w, r, metrics.Karatsuba, key) {
		return
	}

	start := time.Now()
	res, err := karatsuba.Trace(ops.X, ops.Y)
	elapsed := time.Since(start)
	if err != nil {
		s.fail(w, r, metrics.Karatsuba, err)
		return
	}
	s.metrics.ObserveKaratsuba(elapsed, res.CallCount)

	tree, err := converters.NewTreeDoc(res)
	if err != nil {
		s.fail(w, r, metrics.Karatsuba, err)
		return
	}
	s.respond(w, r, metrics.Karatsuba, key, karatsubaResponse{
		Result:          res.Product,
		Tree:            tree,
		CallCount:       res.CallCount,
		ComputationTime: elapsed.Seconds(),
		Stats: karatsubaStats{
			TotalCalls: res.CallCount,
			Leaves:     len(res.Tree.Leaves()),
			MaxDepth:   res.Tree.MaxDepth(),
		},
	})
}

func (s *Server) serveClosestPair(w http.ResponseWriter, r *http.Request, pts []closestpair.Point) {
	if len(pts) > s.limits.MaxPoints {
		s.fail(w, r, metrics.ClosestPair, fmt.Errorf("%w: %d points, limit %d", ErrTooLarge, len(pts), s.limits.MaxPoints))
		return
	}

	key := cache.Key(metrics.ClosestPair, pointParts(pts)...)
	if s.fromCache(w, r, metrics.ClosestPair, key) {
		return
	}

	start := time.Now()
	res, err := closestpair.Trace(pts)
	elapsed := time.Since(start)
	if err != nil {
		s.fail(w, r, metrics.ClosestPair, err)
		return
	}
	s.metrics.ObserveClosestPair(elapsed, res.Comparisons)

	s.respond(w, r, metrics.ClosestPair, key, closestPairResponse{
		ClosestPair: res.BestPair,
		Distance:    res.BestDistance,
		States:      res.States,
		Comparisons: res.Comparisons,
		Analysis: closestPairAnalysis{
			ExecutionTime: elapsed.Seconds(),
			NumStates:     len(res.States),
			NumPoints:     len(pts),
		},
	})
}

// fromCache writes a cached body for key and reports whether it did.
// Backend failures are logged and treated as misses.
func (s *Server) fromCache(w http.ResponseWriter, r *http.Request, algorithm, key string) bool {
	body, ok, err := s.cache.Get(r.Context(), key)
	if err != nil {
		s.log.Warn("cache get failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	s.metrics.CacheHit(algorithm)
	w.Header().Set("X-Cache", "hit")
	writeRaw(w, http.StatusOK, body)

	return true
}

// respond encodes v, stores it under key and writes it.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, algorithm, key string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.fail(w, r, algorithm, err)
		return
	}
	if err := s.cache.Set(r.Context(), key, body); err != nil {
		s.log.Warn("cache set failed", "key", key, "error", err)
	}
	w.Header().Set("X-Cache", "miss")
	writeRaw(w, http.StatusOK, body)
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if err := s.checkLength(r); err != nil {
		return err
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.limits.MaxUploadBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	return nil
}

// formFile returns the uploaded file and its client-side name.
func (s *Server) formFile(w http.ResponseWriter, r *http.Request) (multipart.File, string, error) {
	if err := s.checkLength(r); err != nil {
		return nil, "", err
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.limits.MaxUploadBytes)
	file, hdr, err := r.FormFile(uploadField)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("%w: %q upload: %v", ErrBadRequest, uploadField, err)
	}

	return file, hdr.Filename, nil
}

// checkLength rejects bodies whose declared length is over the limit;
// MaxBytesReader catches the undeclared ones while reading.
func (s *Server) checkLength(r *http.Request) error {
	if r.ContentLength > s.limits.MaxUploadBytes {
		return fmt.Errorf("%w: body of %d bytes, limit %d", ErrTooLarge, r.ContentLength, s.limits.MaxUploadBytes)
	}

	return nil
}

// rawOperand accepts a JSON string or a bare JSON number.
func rawOperand(name string, raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("%w: missing %q", ErrBadRequest, name)
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrBadRequest, name, err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("%w: %q must be a string or a number", ErrBadRequest, name)
	}

	return n.String(), nil
}

// pointParts serializes coordinates exactly and in input order, which
// decides tie-breaking in the sweep.
func pointParts(pts []closestpair.Point) []string {
	parts := make([]string, 0, 2*len(pts))
	for _, p := range pts {
		parts = append(parts,
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64))
	}

	return parts
}
