package middlewares

import (
	"carehub-service/internal/app/config"
	"carehub-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares()

	t.Run("generates request id when absent", func(t *testing.T) {
		var seenRequestID string
		var seenIsClient bool
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			seenIsClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/red-flag-types", nil)
		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.True(t, strings.HasPrefix(seenRequestID, constvars.REQUEST_ID_PREFIX))
		assert.False(t, seenIsClient)
		assert.Equal(t, seenRequestID, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("keeps client provided request id", func(t *testing.T) {
		var seenRequestID string
		var seenIsClient bool
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			seenIsClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/red-flag-types", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-req-42")
		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, "client-req-42", seenRequestID)
		assert.True(t, seenIsClient)
	})
}

func TestUserContextMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares()

	t.Run("stores forwarded user id", func(t *testing.T) {
		var seenUserID string
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenUserID, _ = r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("POST", "/api/v1/care-wizard", nil)
		req.Header.Set(constvars.HeaderXUserID, "coordinator-7")
		rr := httptest.NewRecorder()
		middlewares.UserContextMiddleware(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, "coordinator-7", seenUserID)
	})

	t.Run("leaves context untouched without header", func(t *testing.T) {
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Nil(t, r.Context().Value(constvars.CONTEXT_USER_ID_KEY))
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("POST", "/api/v1/care-wizard", nil)
		rr := httptest.NewRecorder()
		middlewares.UserContextMiddleware(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	middlewares := newTestMiddlewares()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest("GET", "/api/v1/red-flag-types", nil)
	rr := httptest.NewRecorder()
	middlewares.ErrorHandler(panicking).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "false")
}
