// Package gateway is the HTTP+JSON client for the backend service. It is the
// only component that touches the network.
//
// Every call carries its own cancellation context bound to a fixed timeout.
// Failures are classified into the shared error taxonomy (network, timeout,
// auth rejection, server error) so callers can choose a fallback with
// errors.Is; the gateway itself never falls back.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

// BulkData is the payload of a bulk fetch. The staff endpoint omits stores.
type BulkData struct {
	Items       []types.Item       `json:"items"`
	Staff       []types.Staff      `json:"staff"`
	AccessCodes []types.AccessCode `json:"accessCodes"`
	Stores      []types.Store      `json:"stores,omitempty"`
}

// StaffProvision is the backend's response to staff+code creation: the
// server-assigned staff identifier and the issued access code.
type StaffProvision struct {
	StaffID    string `json:"staffId"`
	AccessCode string `json:"accessCode"`
}

// Client talks to the backend service.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	log     *logrus.Logger
}

// New creates a gateway client. An empty baseURL issues same-origin
// (relative) requests, which only makes sense behind a proxying transport;
// normal callers resolve a base URL first.
func New(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
		log:     log,
	}
}

// Login authenticates a credential for the given role and returns the
// identity the backend minted.
func (c *Client) Login(ctx context.Context, role, credential string) (types.Identity, error) {
	var identity types.Identity
	body := map[string]string{"role": role, "credential": credential}
	if err := c.do(ctx, http.MethodPost, "/login", body, &identity); err != nil {
		return types.Identity{}, err
	}
	return identity, nil
}

// FetchAll retrieves the full dataset across every store. Admin only; the
// backend enforces the scoping, not the client.
func (c *Client) FetchAll(ctx context.Context) (BulkData, error) {
	var data BulkData
	err := c.do(ctx, http.MethodGet, "/data/all", nil, &data)
	return data, err
}

// FetchStore retrieves the dataset scoped to one store.
func (c *Client) FetchStore(ctx context.Context, storeCode string) (BulkData, error) {
	var data BulkData
	params := url.Values{"storeCode": {storeCode}}
	err := c.do(ctx, http.MethodGet, "/data/store?"+params.Encode(), nil, &data)
	return data, err
}

// itemPayload is an item mutation body: the item fields plus the raw
// credential, re-sent on every mutation since no session token exists.
type itemPayload struct {
	types.Item
	Credential string `json:"credential"`
}

// AddItem creates an item and returns the server's canonical record, which
// carries the server-assigned identifier.
func (c *Client) AddItem(ctx context.Context, item types.Item, credential string) (types.Item, error) {
	var created types.Item
	err := c.do(ctx, http.MethodPost, "/items/add", itemPayload{Item: item, Credential: credential}, &created)
	return created, err
}

// UpdateItem replaces an item and returns the server's canonical record.
func (c *Client) UpdateItem(ctx context.Context, item types.Item, credential string) (types.Item, error) {
	var updated types.Item
	path := "/items/" + url.PathEscape(item.ItemID)
	err := c.do(ctx, http.MethodPut, path, itemPayload{Item: item, Credential: credential}, &updated)
	return updated, err
}

// DeleteItem deletes an item by identifier.
func (c *Client) DeleteItem(ctx context.Context, itemID, credential string) error {
	path := "/items/" + url.PathEscape(itemID) + "/delete"
	return c.do(ctx, http.MethodPost, path, map[string]string{"credential": credential}, nil)
}

// AddStaff asks the backend to create a staff member and issue an access
// code for them.
func (c *Client) AddStaff(ctx context.Context, storeCode, staffID, credential string) (StaffProvision, error) {
	var provision StaffProvision
	body := map[string]string{"storeCode": storeCode, "staffId": staffID, "credential": credential}
	err := c.do(ctx, http.MethodPost, "/admin/staff", body, &provision)
	return provision, err
}

// DeleteAccessCode revokes an access code. The backend cascades the staff
// record's removal.
func (c *Client) DeleteAccessCode(ctx context.Context, code, credential string) error {
	path := "/admin/codes/" + url.PathEscape(code) + "/delete"
	return c.do(ctx, http.MethodPost, path, map[string]string{"credential": credential}, nil)
}

// do performs one request/response cycle: marshal, send under the fixed
// deadline, classify failures, decode JSON.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(callCtx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		kind := classifyTransport(err)
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debug(kind.Error())
		return kind
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", types.ErrNetworkUnreachable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s", types.ErrAuthRejected, serverMessage(raw, resp.StatusCode))
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return fmt.Errorf("%w: unexpected content type %q", types.ErrServerError, contentType)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", types.ErrServerError, serverMessage(raw, resp.StatusCode))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: decode response: %v", types.ErrServerError, err)
		}
	}
	return nil
}

// classifyTransport maps a transport-level failure to the error taxonomy.
// Exceeding the fixed deadline is a timeout; everything else means the
// backend is unreachable.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", types.ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", types.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", types.ErrNetworkUnreachable, err)
}

// serverMessage extracts the backend's error field from a failure body,
// falling back to the HTTP status.
func serverMessage(raw []byte, status int) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return fmt.Sprintf("HTTP %d", status)
}
