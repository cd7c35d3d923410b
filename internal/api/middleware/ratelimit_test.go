package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit_MemoryStore(t *testing.T) {
	store, err := NewRateLimitStore(nil)
	require.NoError(t, err)

	mw, err := RateLimit("2-M", false, store, nopLogger{})
	require.NoError(t, err)

	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/guest", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRateLimit_InvalidRate(t *testing.T) {
	store, err := NewRateLimitStore(nil)
	require.NoError(t, err)

	_, err = RateLimit("lots", false, store, nopLogger{})
	assert.Error(t, err)
}

func TestRateLimit_ForwardHeader(t *testing.T) {
	send := func(h http.Handler, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/guest", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}
	newHandler := func(trust bool) http.Handler {
		store, err := NewRateLimitStore(nil)
		require.NoError(t, err)
		mw, err := RateLimit("1-M", trust, store, nopLogger{})
		require.NoError(t, err)
		return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	}

	t.Run("ignored by default", func(t *testing.T) {
		h := newHandler(false)
		assert.Equal(t, http.StatusOK, send(h, "1.1.1.1"))
		assert.Equal(t, http.StatusTooManyRequests, send(h, "2.2.2.2"))
	})

	t.Run("trusted behind proxy", func(t *testing.T) {
		h := newHandler(true)
		assert.Equal(t, http.StatusOK, send(h, "1.1.1.1"))
		assert.Equal(t, http.StatusOK, send(h, "2.2.2.2"))
		assert.Equal(t, http.StatusTooManyRequests, send(h, "1.1.1.1"))
	})
}
