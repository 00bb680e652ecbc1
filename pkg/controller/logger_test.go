package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campaigner/pkg/controller"
	"campaigner/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "10.0.0.1:1", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": "9.8.7.6"}, "10.0.0.1:1", "9.8.7.6"},
		{"garbage forwarded for", map[string]string{"X-Forwarded-For": "<script>", "X-Real-IP": "9.8.7.6"}, "10.0.0.1:1", "9.8.7.6"},
		{"garbage headers", map[string]string{"X-Forwarded-For": "x", "X-Real-IP": "y"}, "10.0.0.1:1", "10.0.0.1"},
		{"ipv6 remote", nil, "[::1]:8080", "::1"},
		{"invalid remote", nil, "not-an-addr", "not-an-addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, controller.ClientIP(req))
		})
	}
}

func observedRouter(t *testing.T, h http.HandlerFunc) (http.Handler, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zap.DebugLevel)
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(logger.WithLogger(r.Context(), zap.New(core))))
		})
	})
	r.Use(controller.WithLogger)
	r.Get("/campaigns/{id}", h)

	return r, logs
}

func TestWithLogger_AccessLine(t *testing.T) {
	var seenID string
	router, logs := observedRouter(t, func(w http.ResponseWriter, r *http.Request) {
		seenID = controller.RequestID(r.Context())
		controller.AnnotateAccess(r.Context(), zap.String("userID", "u-1"))
		logger.Info(r.Context(), "handled")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodGet, "/campaigns/42?token=secret", nil)
	req.Header.Set(controller.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get(controller.RequestIDHeader))
	require.Equal(t, "abc-123", seenID)

	// handler lines carry the request id too
	handled := logs.FilterMessage("handled").All()
	require.Len(t, handled, 1)
	require.Equal(t, "abc-123", handled[0].ContextMap()["requestID"])

	access := logs.FilterMessage("access").All()
	require.Len(t, access, 1)
	require.Equal(t, zapcore.InfoLevel, access[0].Level)
	fields := access[0].ContextMap()
	require.Equal(t, "/campaigns/{id}", fields["route"])
	require.EqualValues(t, http.StatusCreated, fields["status"])
	require.EqualValues(t, 5, fields["bytes"])
	require.Equal(t, "u-1", fields["userID"])
	require.Equal(t, "abc-123", fields["requestID"])
}

func TestWithLogger_GeneratesRequestID(t *testing.T) {
	router, logs := observedRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, header := range []string{"", strings.Repeat("x", 65)} {
		req := httptest.NewRequest(http.MethodGet, "/campaigns/1", nil)
		req.Header.Set(controller.RequestIDHeader, header)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		got := rec.Header().Get(controller.RequestIDHeader)
		require.Len(t, got, 36)
		require.NotEqual(t, header, got)
	}
	require.Equal(t, 2, logs.FilterMessage("access").Len())
}

func TestWithLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusNotFound, zapcore.WarnLevel},
		{http.StatusServiceUnavailable, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			router, logs := observedRouter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/campaigns/1", nil))

			access := logs.FilterMessage("access").All()
			require.Len(t, access, 1)
			require.Equal(t, tt.level, access[0].Level)
		})
	}
}

func TestAnnotateAccess_OutsideMiddleware(t *testing.T) {
	require.NotPanics(t, func() {
		controller.AnnotateAccess(context.Background(), zap.String("userID", "u-1"))
	})
	require.Empty(t, controller.RequestID(context.Background()))
}
