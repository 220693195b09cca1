package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	newRequest := func(userID string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
		if userID != "" {
			req.Header.Set("X-User-ID", userID)
		}
		return req
	}

	t.Run("valid user ID reaches the handler", func(t *testing.T) {
		var gotUserID int64
		handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			require.True(t, ok)
			gotUserID = userID
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, newRequest("42"))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, int64(42), gotUserID)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, newRequest(""))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
	})

	t.Run("non-numeric user ID is rejected", func(t *testing.T) {
		handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, newRequest("admin"))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("non-positive user ID is rejected", func(t *testing.T) {
		handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, newRequest("0"))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestGetUserIDWithoutAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetUserID(req.Context())

	assert.False(t, ok)
}
