package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	body, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Contains(t, body, "hello")
}

func TestClientFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	_, err := c.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestClientFetchEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	_, err := c.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestClientFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(time.Second)
	_, err := c.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}
