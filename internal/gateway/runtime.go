package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// runtimeDoc is the shape of the optional runtime configuration document.
type runtimeDoc struct {
	APIBaseURL string `json:"apiBaseUrl"`
}

// RuntimeConfig resolves the backend base URL from an out-of-band JSON
// document when none is compiled into the configuration. The document is
// fetched at most once per process and the result cached; a missing or
// malformed document is non-fatal and leaves the base URL empty.
type RuntimeConfig struct {
	url     string
	timeout time.Duration
	log     *logrus.Logger

	once    sync.Once
	baseURL string
}

// NewRuntimeConfig creates a resolver for the document at url. An empty url
// resolves to an empty base URL without fetching anything.
func NewRuntimeConfig(url string, timeout time.Duration, log *logrus.Logger) *RuntimeConfig {
	return &RuntimeConfig{url: url, timeout: timeout, log: log}
}

// BaseURL returns the resolved base URL, fetching the document on first use.
func (r *RuntimeConfig) BaseURL() string {
	r.once.Do(r.fetch)
	return r.baseURL
}

func (r *RuntimeConfig) fetch() {
	if r.url == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		r.log.WithField("url", r.url).Debug("runtime config: bad url")
		return
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		r.log.WithField("url", r.url).Debug("runtime config unreachable")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.WithField("status", resp.StatusCode).Debug("runtime config: unexpected status")
		return
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}

	var doc runtimeDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.log.Debug("runtime config: malformed document")
		return
	}
	r.baseURL = strings.TrimRight(strings.TrimSpace(doc.APIBaseURL), "/")
}
