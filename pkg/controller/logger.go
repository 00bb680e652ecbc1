package controller

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"campaigner/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestIDHeader carries the request id in and out of the service.
const RequestIDHeader = "X-Request-Id"

// statusRecorder captures the status code and body size written downstream.
type statusRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n

	return n, err //nolint: wrapcheck
}

// ClientIP returns the originating client address of r. The first
// X-Forwarded-For hop and X-Real-IP are trusted only when they parse as an
// IP; otherwise the connection's remote address is used.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if addr, err := netip.ParseAddr(strings.TrimSpace(first)); err == nil {
			return addr.String()
		}
	}
	if addr, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return addr.String()
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// accessEntry collects fields that inner handlers contribute to the access
// log line. The v1 API may run behind http.TimeoutHandler, so writes can
// race with the final log call.
type accessEntry struct {
	mu     sync.Mutex
	fields []zapcore.Field
}

type requestIDKey struct{}

type accessKey struct{}

// RequestID returns the id WithLogger assigned to the request carried by ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// AnnotateAccess adds fields to the access log line of the request carried
// by ctx. Outside WithLogger it does nothing.
func AnnotateAccess(ctx context.Context, fields ...zapcore.Field) {
	entry, _ := ctx.Value(accessKey{}).(*accessEntry)
	if entry == nil {
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.fields = append(entry.fields, fields...)
}

// WithLogger assigns every request an id, scopes the context logger to it
// and writes one access log line when the handler returns. Server errors are
// logged at error level and client errors at warn. It must run inside a chi
// router so the matched route pattern can be logged instead of the raw URL.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		entry := &accessEntry{}
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		ctx = context.WithValue(ctx, accessKey{}, entry)
		ctx = logger.WithFields(ctx, zap.String("requestID", requestID))

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		fields := []zapcore.Field{
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIP", ClientIP(r)),
			zap.String("userAgent", r.UserAgent()),
		}
		entry.mu.Lock()
		fields = append(fields, entry.fields...)
		entry.mu.Unlock()

		switch {
		case rec.status >= http.StatusInternalServerError:
			logger.Error(ctx, "access", fields...)
		case rec.status >= http.StatusBadRequest:
			logger.Warn(ctx, "access", fields...)
		default:
			logger.Info(ctx, "access", fields...)
		}
	})
}
