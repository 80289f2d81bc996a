package logging

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger stores a logger tagged with the request ID, plus Cloud Trace
// fields when the request carries a traceparent and a project is configured.
// Install it after the request ID middleware.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := loggerWithTrace(
				Logger(),
				r.Header.Get(traceparentHeader),
				resolveProjectID(),
				chimiddleware.GetReqID(r.Context()),
			)
			next.ServeHTTP(w, r.WithContext(WithLogger(r.Context(), l)))
		})
	}
}

// AccessLogger writes one "request completed" entry per request with a Cloud
// Logging httpRequest object and the matched chi route pattern. Severity follows
// the status class: 5xx ERROR, 4xx WARNING, otherwise INFO.
func AccessLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			entry := httpRequest{
				method:    r.Method,
				url:       r.URL.RequestURI(),
				status:    ww.Status(),
				size:      ww.BytesWritten(),
				userAgent: r.UserAgent(),
				remoteIP:  remoteIP(r.RemoteAddr),
				protocol:  r.Proto,
				latency:   time.Since(start),
			}
			if entry.status == 0 {
				entry.status = http.StatusOK
			}
			fields := []zap.Field{zap.Object("httpRequest", entry)}
			if route := routePattern(r); route != "" {
				fields = append(fields, zap.String("route", route))
			}
			FromContext(r.Context()).Log(statusLevel(entry.status), "request completed", fields...)
		})
	}
}

// httpRequest marshals as Cloud Logging's HttpRequest: int64 sizes are strings
// and latency is a seconds duration such as "0.001200s".
type httpRequest struct {
	method    string
	url       string
	status    int
	size      int
	userAgent string
	remoteIP  string
	protocol  string
	latency   time.Duration
}

func (h httpRequest) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("requestMethod", h.method)
	enc.AddString("requestUrl", h.url)
	enc.AddInt("status", h.status)
	enc.AddString("responseSize", strconv.Itoa(h.size))
	if h.userAgent != "" {
		enc.AddString("userAgent", h.userAgent)
	}
	if h.remoteIP != "" {
		enc.AddString("remoteIp", h.remoteIP)
	}
	enc.AddString("protocol", h.protocol)
	enc.AddString("latency", strconv.FormatFloat(h.latency.Seconds(), 'f', 6, 64)+"s")
	return nil
}

func statusLevel(status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// routePattern is read after the handler ran, once chi has resolved the route.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}

// remoteIP drops the port net/http leaves on RemoteAddr; chi's RealIP already
// stores a bare address.
func remoteIP(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
