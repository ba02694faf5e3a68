package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithStatus(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
		{http.StatusGatewayTimeout, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := mapHTTPError(responseWithStatus(t, tt.status, "details"))
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "details")
		})
	}
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, mapHTTPError(responseWithStatus(t, http.StatusOK, "")))
	assert.NoError(t, mapHTTPError(responseWithStatus(t, http.StatusNoContent, "")))
}

func TestMapHTTPError_UnknownStatusUsesStatusText(t *testing.T) {
	err := mapHTTPError(responseWithStatus(t, http.StatusTeapot, ""))

	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}
