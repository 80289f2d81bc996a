// Package respond renders RFC 9457 problem details for responses produced
// outside huma operations: unmatched routes, unsupported methods and panics.
package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/template-api/internal/platform/logging"
)

const (
	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"

	msgNotFound          = "resource not found"
	msgInternalServerErr = "internal server error"

	errorModelSchemaPath = "/schemas/ErrorModel.json"
)

// problem mirrors huma.ErrorModel with the $schema link huma adds to its own error bodies.
type problem struct {
	Schema string `json:"$schema,omitempty"`
	Title  string `json:"title,omitempty"`
	Status int    `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// NotFoundHandler answers unmatched routes with a 404 problem.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, http.StatusNotFound, msgNotFound, nil)
	}
}

// MethodNotAllowedHandler answers a matched path with an unsupported method
// with a 405 problem and an Allow header listing the methods that do match.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		detail := fmt.Sprintf("method %s not allowed", r.Method)
		writeProblem(w, r, http.StatusMethodNotAllowed, detail, nil)
	}
}

// Recoverer converts panics into 500 problems. http.ErrAbortHandler is re-panicked
// so net/http can abort the connection, and nothing is written once the handler
// has already started the response.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				if errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				err = fmt.Errorf("%w\n%s", err, debug.Stack())
				if rw.wroteHeader {
					applog.FromContext(r.Context()).Error("panic after response started", zap.Error(err))
					return
				}
				writeProblem(w, r, http.StatusInternalServerError, msgInternalServerErr, err)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// responseWriter records whether the response has been started.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, detail string, err error) {
	schema := schemaURL(r)
	body := problem{
		Schema: schema,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
	logProblem(r, status, detail, err)

	h := w.Header()
	ensureVary(h, "Origin", "Accept")
	h.Set("Link", "<"+schema+">; rel=\"describedBy\"")

	var (
		payload     []byte
		contentType string
		encErr      error
	)
	if selectFormat(r.Header.Get("Accept")) {
		contentType = contentTypeProblemCBOR
		payload, encErr = cbor.Marshal(body)
	} else {
		contentType = contentTypeProblemJSON
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		encErr = enc.Encode(body)
		payload = bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	}
	if encErr != nil {
		applog.FromContext(r.Context()).Error("failed to encode problem", zap.Error(encErr))
		w.WriteHeader(status)
		return
	}
	h.Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, werr := w.Write(payload); werr != nil {
		applog.FromContext(r.Context()).Error("failed to write problem", zap.Error(werr))
	}
}

func logProblem(r *http.Request, status int, detail string, err error) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	logger := applog.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logger.Error(detail, fields...)
		return
	}
	logger.Warn(detail, fields...)
}

func schemaURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host + errorModelSchemaPath
}

// ensureVary adds each value to Vary unless it is already listed.
func ensureVary(h http.Header, values ...string) {
	seen := make(map[string]struct{})
	for _, existing := range h.Values("Vary") {
		for part := range strings.SplitSeq(existing, ",") {
			seen[strings.ToLower(strings.TrimSpace(part))] = struct{}{}
		}
	}
	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		h.Add("Vary", v)
	}
}

// allowedMethods probes chi's route tree for the methods that match the request path.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}
	routePath := rctx.RoutePath
	if routePath == "" {
		routePath = r.URL.RawPath
		if routePath == "" {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	candidates := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(candidates))
	for _, method := range candidates {
		if rctx.Routes.Match(chi.NewRouteContext(), method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. Missing, malformed or
// out-of-range q values count as 1.0; when q repeats the last one wins.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		params := strings.Split(part, ";")
		mt := strings.ToLower(strings.TrimSpace(params[0]))
		typ, subtype, ok := strings.Cut(mt, "/")
		if !ok {
			subtype = "*"
		}
		mr := mediaRange{typ: typ, subtype: subtype, q: 1.0}
		for _, p := range params[1:] {
			k, v, found := strings.Cut(strings.TrimSpace(p), "=")
			if !found || strings.ToLower(strings.TrimSpace(k)) != "q" {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || q < 0 || q > 1 {
				q = 1.0
			}
			mr.q = q
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// qualityFor returns the q value of the most specific range matching application/<suffix>
// or application/problem+<suffix>, or 0 when nothing matches.
func qualityFor(ranges []mediaRange, suffix string) float64 {
	best, bestRank := 0.0, -1
	for _, mr := range ranges {
		rank := -1
		switch {
		case mr.typ == "application" && (mr.subtype == suffix || mr.subtype == "problem+"+suffix):
			rank = 3
		case mr.typ == "application" && mr.subtype == "*+"+suffix:
			rank = 2
		case mr.typ == "application" && mr.subtype == "*":
			rank = 1
		case mr.typ == "*":
			rank = 0
		}
		if rank > bestRank {
			best, bestRank = mr.q, rank
		}
	}
	return best
}

// selectFormat reports whether CBOR should be used. JSON wins ties and is the default.
func selectFormat(accept string) bool {
	if strings.TrimSpace(accept) == "" {
		return false
	}
	ranges := parseAccept(accept)
	cborQ := qualityFor(ranges, "cbor")
	return cborQ > 0 && cborQ > qualityFor(ranges, "json")
}
