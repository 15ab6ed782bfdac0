package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDoJSON_DecodesProblemBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"title":"Conflict","status":409,"detail":"Usuário já está na fila","code":"ALREADY_IN_QUEUE"}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodPost, "/x", BearerHeaders("tok"), nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusConflict, httpErr.StatusCode)
	require.Equal(t, "ALREADY_IN_QUEUE", httpErr.Code)
	require.Equal(t, "Usuário já está na fila", httpErr.Message)
}

func TestDoJSON_PlainTextError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "x", nil, nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, "forbidden", httpErr.Message)
	require.Empty(t, httpErr.Code)
}

func TestDoJSON_TransportErrorIsWrapped(t *testing.T) {
	c, err := NewWithBaseURL("http://127.0.0.1:1", 200*time.Millisecond)
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "/health", nil, nil, nil)
	require.ErrorIs(t, err, ErrTransport)
}

func TestDoJSON_RelativePathRequiresBaseURL(t *testing.T) {
	c := New(0)
	err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	require.Error(t, err)
}

func TestBearerHeaders_EmptyToken(t *testing.T) {
	require.Nil(t, BearerHeaders("  "))
}
