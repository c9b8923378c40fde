package gateway

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeConfigResolvesBaseURL(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		io.WriteString(w, `{"apiBaseUrl":"https://api.example.com/"}`)
	}))
	defer srv.Close()

	rc := NewRuntimeConfig(srv.URL, time.Second, testLogger())
	assert.Equal(t, "https://api.example.com", rc.BaseURL())

	// Cached for the process lifetime: a second read does not refetch.
	assert.Equal(t, "https://api.example.com", rc.BaseURL())
	assert.Equal(t, int32(1), hits.Load())
}

func TestRuntimeConfigAbsenceIsNonFatal(t *testing.T) {
	rc := NewRuntimeConfig("", time.Second, testLogger())
	assert.Equal(t, "", rc.BaseURL())
}

func TestRuntimeConfigMalformedIsNonFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `not json at all`)
	}))
	defer srv.Close()

	rc := NewRuntimeConfig(srv.URL, time.Second, testLogger())
	assert.Equal(t, "", rc.BaseURL())
}

func TestRuntimeConfigMissingDocumentIsNonFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	rc := NewRuntimeConfig(srv.URL, time.Second, testLogger())
	assert.Equal(t, "", rc.BaseURL())
}

func TestRuntimeConfigUnreachableIsNonFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	rc := NewRuntimeConfig(url, 200*time.Millisecond, testLogger())
	assert.Equal(t, "", rc.BaseURL())
}
