package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteStrategy_Available(t *testing.T) {
	s := NewRemoteStrategy("http://render.internal", 0)
	assert.Equal(t, "remote", s.Name())
	assert.True(t, s.Available(&Job{HTML: "<html></html>"}))
	assert.False(t, s.Available(&Job{Document: sampleDocument()}))

	disabled := NewRemoteStrategy("", 0)
	assert.False(t, disabled.Available(&Job{HTML: "<html></html>"}))
}

func TestRemoteStrategy_Export(t *testing.T) {
	var got remoteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/export-pdf", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdfBytes)
	}))
	defer srv.Close()

	s := NewRemoteStrategy(srv.URL, time.Second)
	out, err := s.Export(context.Background(), &Job{HTML: "<html>x</html>", Filename: "Alex_Resume.pdf"})
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, out)
	assert.Equal(t, "<html>x</html>", got.HTML)
	assert.Equal(t, "Alex_Resume.pdf", got.Filename)
}

func TestRemoteStrategy_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewRemoteStrategy(srv.URL, time.Second)
	_, err := s.Export(context.Background(), &Job{HTML: "<html></html>"})
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeRemoteFailed))
}

func TestRemoteStrategy_ConnectionRefused(t *testing.T) {
	// a server that is already closed refuses the connection
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := NewRemoteStrategy(url, time.Second)
	_, err := s.Export(context.Background(), &Job{HTML: "<html></html>"})
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeRemoteFailed))
}
